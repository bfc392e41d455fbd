package presenter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/at-ishikawa/sregpt/internal/inference"
	"github.com/fatih/color"
)

// topLevelDangerous matches the dangerous field of an object indented by two spaces.
var topLevelDangerous = regexp.MustCompile(`(?m)^(  "dangerous": )true(,?)$`)

// Presenter writes answers and run status to one console.
type Presenter struct {
	out     io.Writer
	danger  *color.Color
	warning *color.Color
	success *color.Color
}

// New returns a presenter writing to out, with colour only when useColor is set.
func New(out io.Writer, useColor bool) *Presenter {
	presenter := &Presenter{
		out:     out,
		danger:  color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		success: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{presenter.danger, presenter.warning, presenter.success} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return presenter
}

// Render prints the answer in the given mode.
func (presenter *Presenter) Render(answer inference.Answer, mode Mode) error {
	switch mode {
	case ModeJSON:
		return presenter.renderJSON(answer)
	case ModeCommandOnly:
		fmt.Fprintln(presenter.out, answer.Command())
		if answer.Dangerous() {
			presenter.danger.Fprintln(presenter.out, "⚠️  Marked dangerous")
		}
		return nil
	case ModePlain:
		fmt.Fprintf(presenter.out, "cmd: %s\n", answer.Command())
		fmt.Fprintf(presenter.out, "explanation: %s\n", answer.Explanation())
		if answer.Dangerous() {
			fmt.Fprintf(presenter.out, "dangerous: %s\n", presenter.danger.Sprint("***true***"))
		} else {
			fmt.Fprintln(presenter.out, "dangerous: false")
		}
		return nil
	default:
		return fmt.Errorf("unknown output mode: %q", mode)
	}
}

// renderJSON writes the fields in the model's key order.
// The payload stays valid JSON; only the terminal colour marks a dangerous command.
func (presenter *Presenter) renderJSON(answer inference.Answer) error {
	fields := answer.Fields()
	keys := answer.Keys()

	var buf bytes.Buffer
	buf.WriteString("{")
	for i, key := range keys {
		if i > 0 {
			buf.WriteString(",")
		}
		name, err := encodeString(key)
		if err != nil {
			return err
		}
		buf.WriteString("\n  ")
		buf.Write(name)
		buf.WriteString(": ")
		if err := json.Indent(&buf, fields[key], "  ", "  "); err != nil {
			return fmt.Errorf("json.Indent(%s) > %w", key, err)
		}
	}
	if len(keys) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}")

	out := buf.Bytes()
	if answer.Dangerous() {
		out = topLevelDangerous.ReplaceAll(out, []byte("${1}"+presenter.danger.Sprint("true")+"${2}"))
	}
	fmt.Fprintln(presenter.out, string(out))
	return nil
}

func encodeString(value string) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, fmt.Errorf("encoder.Encode() > %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Error prints a failure message in the danger colour.
func (presenter *Presenter) Error(message string) {
	presenter.danger.Fprintln(presenter.out, message)
}

// Warning prints a notice that needs the user's attention.
func (presenter *Presenter) Warning(message string) {
	presenter.warning.Fprintln(presenter.out, message)
}

// Success prints a confirmation message.
func (presenter *Presenter) Success(message string) {
	presenter.success.Fprintln(presenter.out, message)
}
