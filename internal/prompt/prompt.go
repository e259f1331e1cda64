// Package prompt implements the interactive hex code prompt.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// quitCommand ends the prompt loop.
const quitCommand = "quit"

// Prompt reads hex codes line by line. The prompt text is only printed when
// the input is an interactive terminal.
type Prompt struct {
	scanner *bufio.Scanner
	output  io.Writer
	text    string
	echo    bool
}

// New returns a prompt that reads from input and writes the prompt text to output.
func New(input io.Reader, output io.Writer, text string) *Prompt {
	return &Prompt{
		scanner: bufio.NewScanner(input),
		output:  output,
		text:    text,
		echo:    isTerminal(input),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Next returns the next non empty line with surrounding whitespace removed.
// It returns io.EOF when the input is exhausted or the quit command was entered.
func (p *Prompt) Next() (string, error) {
	for {
		if p.echo {
			if _, err := fmt.Fprint(p.output, p.text); err != nil {
				return "", fmt.Errorf("writing prompt: %w", err)
			}
		}

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", fmt.Errorf("reading input: %w", err)
			}
			return "", io.EOF
		}

		line := strings.TrimSpace(p.scanner.Text())
		switch {
		case line == "":
			continue
		case strings.EqualFold(line, quitCommand):
			return "", io.EOF
		default:
			return line, nil
		}
	}
}
