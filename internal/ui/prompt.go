package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks yes/no questions over a stream pair. A single buffered
// reader is shared across questions so piped input is not lost between
// prompts.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a prompter bound to the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// NewStdio returns a prompter bound to stdin and stdout.
func NewStdio() *Prompter {
	return New(os.Stdin, os.Stdout)
}

// AskYesNo asks a yes/no question. Empty input, EOF, and anything that is
// not an explicit yes count as no.
func (p *Prompter) AskYesNo(prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}
