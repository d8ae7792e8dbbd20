package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/tourmate-app/tourmate-cli/internal/wizard"
)

// readPassword is a test seam for term.ReadPassword.
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

// GetTextDefault is GetSimpleText with a pre-filled value: pressing Enter on
// an empty line keeps def.
func GetTextDefault(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	full := prompt
	if def != "" {
		full = fmt.Sprintf("%s [%s]", prompt, def)
	}
	got, err := GetSimpleText(reader, full, w)
	if err != nil {
		return "", err
	}
	if got == "" {
		return def, nil
	}
	return got, nil
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. The returned byte slice should be wiped by the
// caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetMultiline prints a prompt to w and reads lines until an empty line.
// The collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetYesNo asks a y/n question; anything except "y"/"yes" is no.
func GetYesNo(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	got, err := GetSimpleText(reader, prompt+" (y/n)", w)
	if err != nil {
		return false, err
	}
	got = strings.ToLower(got)
	return got == "y" || got == "yes", nil
}

// GetFile prompts for a file path and reads the file into a form field.
// An empty line means "no file" and returns nil. Anything the picker-style
// prompt accepts is sent as-is; there is no client-side type or size check.
func GetFile(reader *bufio.Reader, prompt string, w io.Writer) (*wizard.FileField, error) {
	path, err := GetSimpleText(reader, prompt+" (path, empty to skip)", w)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &wizard.FileField{Name: filepath.Base(path), Content: content}, nil
}

// wipeBytes zeroes sensitive material such as passwords after use.
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
