package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalInput(t *testing.T) {
	var out bytes.Buffer
	term := &Terminal{
		Reader: strings.NewReader("alice\nalice@example.com\n"),
		Writer: &out,
	}

	first, err := term.Input("Enter username: ")
	require.NoError(t, err)
	assert.Equal(t, "alice", first)

	second, err := term.Input("Enter email: ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", second)

	assert.Equal(t, "Enter username: Enter email: ", out.String())
}

func TestTerminalInputTrimsCarriageReturn(t *testing.T) {
	term := &Terminal{
		Reader: strings.NewReader("alice\r\n"),
		Writer: io.Discard,
	}
	value, err := term.Input("> ")
	require.NoError(t, err)
	assert.Equal(t, "alice", value)
}

func TestTerminalInputLastLineWithoutNewline(t *testing.T) {
	term := &Terminal{
		Reader: strings.NewReader("n3wpass"),
		Writer: io.Discard,
	}
	value, err := term.Input("> ")
	require.NoError(t, err)
	assert.Equal(t, "n3wpass", value)
}

func TestTerminalInputEOF(t *testing.T) {
	term := &Terminal{
		Reader: strings.NewReader(""),
		Writer: io.Discard,
	}
	_, err := term.Input("> ")
	require.ErrorIs(t, err, io.EOF)
}

func TestTerminalPasswordFallsBackToPlainRead(t *testing.T) {
	// A strings.Reader is not a TTY, so Password degrades to a plain read.
	term := &Terminal{
		Reader: strings.NewReader("s3cret\n"),
		Writer: io.Discard,
	}
	value, err := term.Password("Enter password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", value)
}

func TestScriptReplaysAnswersInOrder(t *testing.T) {
	script := &Script{Answers: []string{"one", "two"}}

	first, err := script.Input("a: ")
	require.NoError(t, err)
	assert.Equal(t, "one", first)

	second, err := script.Password("b: ")
	require.NoError(t, err)
	assert.Equal(t, "two", second)

	_, err = script.Input("c: ")
	require.ErrorIs(t, err, io.EOF)
}
