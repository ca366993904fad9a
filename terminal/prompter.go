// Package terminal reads input from the user at a terminal.
package terminal

import (
	"fmt"
	"io"
	"strings"
)

// A Prompter prompts the user for input.
type Prompter struct {
	r io.Reader
	w io.Writer
}

// NewPrompter creates a new Prompter.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: r, w: w}
}

// Prompt shows the prompt p and reads the answer to the end of the stream, so
// a topic may span several lines. The answer is returned without surrounding
// whitespace; an answer of only whitespace is returned as "".
func (tp *Prompter) Prompt(p string) (string, error) {
	fmt.Fprintf(tp.w, "%s\n> ", p)
	b, err := io.ReadAll(tp.r)
	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
