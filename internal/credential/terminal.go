package credential

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// OpenTTY opens the controlling terminal for reading and writing.
func OpenTTY() (io.ReadWriteCloser, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}

// TerminalPrompter reads secrets from a terminal with echo disabled.
// When the input is not a terminal it asks on the controlling terminal instead,
// and reads one plain line from the input only when there is none.
type TerminalPrompter struct {
	in      io.Reader
	out     io.Writer
	openTTY func() (io.ReadWriteCloser, error)
}

// NewTerminalPrompter builds a prompter on in and out.
// openTTY may be nil, in which case piped input is always read as a line.
func NewTerminalPrompter(in io.Reader, out io.Writer, openTTY func() (io.ReadWriteCloser, error)) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out, openTTY: openTTY}
}

func (prompter *TerminalPrompter) PromptSecret(label string) (string, error) {
	if isTerminal(prompter.in) || prompter.openTTY == nil {
		return promptSecret(prompter.in, prompter.out, label)
	}

	tty, err := prompter.openTTY()
	if err != nil {
		slog.Default().Debug("no controlling terminal, reading the key from standard input", "error", err)
		return promptSecret(prompter.in, prompter.out, label)
	}
	defer func() {
		_ = tty.Close()
	}()
	return promptSecret(tty, tty, label)
}

func promptSecret(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)

	if isTerminal(in) {
		fd := int(in.(*os.File).Fd())
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("term.ReadPassword() > %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	fmt.Fprintln(out)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
