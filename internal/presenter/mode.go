package presenter

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// Mode selects how an answer is rendered
type Mode string

const (
	ModePlain       Mode = "plain"
	ModeCommandOnly Mode = "cmd-only"
	ModeJSON        Mode = "json"
)

var (
	_        pflag.Value = (*Mode)(nil)
	allModes             = []Mode{ModePlain, ModeCommandOnly, ModeJSON}

	ErrUsageConflict = errors.New("--json and --cmd-only are mutually exclusive")
)

func (m *Mode) Set(val string) error {
	for _, mode := range allModes {
		if val == string(mode) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("invalid output mode: %s. Possible values are %v", val, allModes)
}

func (m Mode) String() string {
	return string(m)
}

func (m *Mode) Type() string {
	return "mode"
}

// SelectMode maps the --json and --cmd-only flags to a mode.
// Setting both is rejected.
func SelectMode(jsonOut, cmdOnly bool) (Mode, error) {
	switch {
	case jsonOut && cmdOnly:
		return "", ErrUsageConflict
	case jsonOut:
		return ModeJSON, nil
	case cmdOnly:
		return ModeCommandOnly, nil
	default:
		return ModePlain, nil
	}
}
