// Package cmd implements the cobra command tree for the authprobe CLI,
// including the interactive flow, one-shot auth API steps, token inspection,
// configuration, and shell completion.
package cmd
