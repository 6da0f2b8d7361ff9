package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetRequiredText keeps prompting until a non-empty line is entered.
func GetRequiredText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(w, "A value is required.")
	}
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetChoice prompts until the entered value is one of the allowed options.
// An empty line picks the default when one is given.
func GetChoice(reader *bufio.Reader, prompt string, options []string, def string, w io.Writer) (string, error) {
	full := fmt.Sprintf("%s [%s]", prompt, strings.Join(options, "/"))
	if def != "" {
		full += fmt.Sprintf(" (default %s)", def)
	}
	for {
		s, err := GetSimpleText(reader, full, w)
		if err != nil {
			return "", err
		}
		if s == "" && def != "" {
			return def, nil
		}
		for _, opt := range options {
			if s == opt {
				return s, nil
			}
		}
		fmt.Fprintf(w, "Please enter one of: %s\n", strings.Join(options, ", "))
	}
}

// GetDate prompts for a date in YYYY-MM-DD form. An empty line returns the
// zero time so callers can treat the field as unset.
func GetDate(reader *bufio.Reader, prompt string, w io.Writer) (time.Time, error) {
	for {
		s, err := GetSimpleText(reader, prompt+" (YYYY-MM-DD)", w)
		if err != nil {
			return time.Time{}, err
		}
		if s == "" {
			return time.Time{}, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err == nil {
			return t, nil
		}
		fmt.Fprintln(w, "Please use the YYYY-MM-DD format.")
	}
}
