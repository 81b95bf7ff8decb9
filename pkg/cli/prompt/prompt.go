package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/term"
)

// Validator returns a message describing why input is rejected, or "" to accept it
type Validator func(input string) string

// Prompter asks for missing configuration values line by line
type Prompter struct {
	in         *bufio.Reader
	out        io.Writer
	readSecret func() (string, error)
}

func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
	p.readSecret = p.readLine
	return p
}

// NewTerminal reads from stdin and writes prompts to stderr. Secrets are read without echo.
func NewTerminal() *Prompter {
	p := New(os.Stdin, os.Stderr)
	fd := int(os.Stdin.Fd())
	p.readSecret = func() (string, error) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read secret from terminal")
		}
		return strings.TrimSpace(string(b)), nil
	}
	return p
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (x *Prompter) readLine() (string, error) {
	line, err := x.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", goerr.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(line), nil
}

// Input asks until validate accepts the answer. An empty answer takes defaultValue.
func (x *Prompter) Input(message, defaultValue string, validate Validator) (string, error) {
	return x.ask(message, defaultValue, validate, x.readLine)
}

// Secret is Input without echo and without default
func (x *Prompter) Secret(message string, validate Validator) (string, error) {
	return x.ask(message, "", validate, x.readSecret)
}

// Select asks for one of choices by name or by 1-based number
func (x *Prompter) Select(message string, choices []string) (string, error) {
	for i, c := range choices {
		fmt.Fprintf(x.out, "  %d) %s\n", i+1, c)
	}

	var selected string
	_, err := x.ask(message, "", func(input string) string {
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(choices) {
			selected = choices[n-1]
			return ""
		}
		for _, c := range choices {
			if strings.EqualFold(c, input) {
				selected = c
				return ""
			}
		}
		return fmt.Sprintf("Choose one of %s", strings.Join(choices, ", "))
	}, x.readLine)
	if err != nil {
		return "", err
	}
	return selected, nil
}

func (x *Prompter) ask(message, defaultValue string, validate Validator, read func() (string, error)) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(x.out, "? %s (%s): ", message, strings.ReplaceAll(defaultValue, "\n", `\n`))
		} else {
			fmt.Fprintf(x.out, "? %s: ", message)
		}

		answer, err := read()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = defaultValue
		}

		if validate != nil {
			if msg := validate(answer); msg != "" {
				fmt.Fprintf(x.out, ">> %s\n", msg)
				continue
			}
		}
		return answer, nil
	}
}

// Required rejects empty answers with msg
func Required(msg string) Validator {
	return func(input string) string {
		if input == "" {
			return msg
		}
		return ""
	}
}
