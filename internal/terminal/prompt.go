package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jrsteele09/go-social-client/router"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Prompter reads commands and form values
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewPrompter creates a prompter. Secrets are read without echo when in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
	}
	return p
}

// ReadLine prints prompt and reads one line without its line ending
func (p *Prompter) ReadLine(prompt string) (string, error) {
	promptColour.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadSecret reads a line without echoing it
func (p *Prompter) ReadSecret(prompt string) (string, error) {
	if !p.tty {
		return p.ReadLine(prompt)
	}
	promptColour.Fprint(p.out, prompt)
	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", errors.Wrap(err, "[ReadSecret]")
	}
	return string(secret), nil
}

// readMultiline reads lines until an empty one
func (p *Prompter) readMultiline(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt+" (finish with an empty line)")
	var lines []string
	for {
		line, err := p.ReadLine("| ")
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// FillForm asks for every field. An empty answer keeps the current value.
func (p *Prompter) FillForm(form *router.Form) (map[string]string, error) {
	values := make(map[string]string, len(form.Fields))
	for _, f := range form.Fields {
		prompt := f.Label
		if f.Value != "" && !f.Secret {
			prompt += " [" + f.Value + "]"
		}
		prompt += ": "

		var value string
		var err error
		switch {
		case f.Secret:
			value, err = p.ReadSecret(prompt)
		case f.Multiline:
			value, err = p.readMultiline(strings.TrimSuffix(prompt, ": "))
		default:
			value, err = p.ReadLine(prompt)
		}
		if err != nil {
			return nil, err
		}
		if value == "" && !f.Secret {
			value = f.Value
		}
		values[f.Name] = value
	}
	return values, nil
}
