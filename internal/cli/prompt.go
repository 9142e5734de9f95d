package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var ErrInputClosed = errors.New("input closed")

// ask prints label and reads one line. An empty answer yields def.
func (e *env) ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(e.stdout, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(e.stdout, "%s: ", label)
	}

	line, err := e.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (e *env) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads without echo from a terminal and falls back to a plain
// line for pipes and tests.
func (e *env) readPassword(label string) (string, error) {
	fmt.Fprintf(e.stdout, "%s: ", label)

	if f, ok := e.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(e.stdout)
		if err != nil {
			return "", err
		}
		return string(password), nil
	}
	return e.readLine()
}
