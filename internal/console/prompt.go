package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads operator input line by line. Rejected values print the
// reason and re-prompt; only a closed input stream ends the loop.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) ReadLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// prompt keeps asking until parse accepts the raw line.
func prompt[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		raw, err := p.ReadLine(label)
		if err != nil {
			return zero, err
		}
		value, err := parse(raw)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input: %v\n", err)
			continue
		}
		return value, nil
	}
}
