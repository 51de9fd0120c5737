// Package prompt reads operator input for the interactive flow, masking
// password entry when stdin is a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter collects one line of operator input per call. Password reads are
// masked when the underlying input supports it.
type Prompter interface {
	Input(label string) (string, error)
	Password(label string) (string, error)
}

// Terminal prompts on Writer and reads from Reader. When Reader is an
// os.File backed by a TTY, Password uses masked input.
type Terminal struct {
	Reader io.Reader
	Writer io.Writer

	buf *bufio.Reader
}

func NewTerminal() *Terminal {
	return &Terminal{Reader: os.Stdin, Writer: os.Stdout}
}

func (t *Terminal) reader() *bufio.Reader {
	if t.buf == nil {
		t.buf = bufio.NewReader(t.Reader)
	}
	return t.buf
}

func (t *Terminal) Input(label string) (string, error) {
	_, _ = fmt.Fprint(t.Writer, label)
	line, err := t.reader().ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) Password(label string) (string, error) {
	if f, ok := t.Reader.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(t.Writer, label)
		raw, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(t.Writer)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return t.Input(label)
}

// Script replays predefined answers in order. Intended for tests and
// non-interactive runs.
type Script struct {
	Answers []string

	next int
}

func (s *Script) Input(string) (string, error) {
	if s.next >= len(s.Answers) {
		return "", io.EOF
	}
	answer := s.Answers[s.next]
	s.next++
	return answer, nil
}

func (s *Script) Password(label string) (string, error) {
	return s.Input(label)
}
