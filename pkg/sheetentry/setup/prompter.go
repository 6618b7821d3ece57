package setup

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
)

// Prompter is the console the setup wizard talks through.
type Prompter interface {
	// Ask shows a prompt and returns the trimmed answer. It returns
	// ErrAborted once input is exhausted.
	Ask(prompt string) (string, error)
	// Say prints one line of output.
	Say(format string, args ...any)
}

// Console is a Prompter over a reader and a writer, usually stdin and stdout.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a Console.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", models.ErrAborted, err)
		}
		return "", models.ErrAborted
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// confirm asks a yes/no question; only "y" and "yes" count as yes.
func confirm(p Prompter, prompt string) (bool, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// banner prints a section title between rules.
func banner(p Prompter, title string) {
	rule := strings.Repeat("=", 60)
	p.Say("")
	p.Say(rule)
	p.Say(title)
	p.Say(rule)
}
