package util
import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on out and reads one line answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{bufio.NewReader(in), out}
}

// Ask prints prompt and returns the next line without its line ending.
// io.EOF is returned only when nothing was typed before the input ended.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Println writes a line to the prompter's output.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
