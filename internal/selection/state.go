package selection

import (
	"github.com/thoreinstein/plinks/internal/browser"
)

// State is a step of the selection flow.
type State int

const (
	StateSelectInstallation State = iota
	StateSelectProfile
	StateSelectExecutable
	StateDone
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateSelectInstallation:
		return "select-installation"
	case StateSelectProfile:
		return "select-profile"
	case StateSelectExecutable:
		return "select-executable"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session carries the choices made so far. Installations is borrowed from
// the caller and mutated only when an executable is memoized.
type Session struct {
	URI           string
	Installations *[]browser.Installation

	Index      *int
	Profile    *browser.Profile
	Executable string
}

// installation returns the chosen installation, if the index is valid.
func (s *Session) installation() (*browser.Installation, bool) {
	if s.Index == nil || s.Installations == nil {
		return nil, false
	}
	insts := *s.Installations
	if *s.Index < 0 || *s.Index >= len(insts) {
		return nil, false
	}
	return &insts[*s.Index], true
}
