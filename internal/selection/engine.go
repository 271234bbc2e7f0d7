package selection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thoreinstein/plinks/internal/browser"
	"github.com/thoreinstein/plinks/internal/cli/prompt"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
)

// Synthetic choices appended to prompts.
const (
	ChoiceBack     = "Back"
	ChoiceLastUsed = "Last Used"
)

// ErrInvalidState indicates the flow reached Done without a complete selection.
var ErrInvalidState = errors.New("selection finished in an invalid state")

// Engine drives the selection prompts.
type Engine struct {
	Prompter prompt.Prompter
	// Logger defaults to the context logger.
	Logger *slog.Logger
}

// Run asks the user how to open uri. It returns (nil, nil) when the user
// cancels or no terminal is available. The chosen executable is memoized
// in installations.
func (e *Engine) Run(ctx context.Context, uri string, installations *[]browser.Installation) (*Descriptor, error) {
	if installations == nil || len(*installations) == 0 {
		return nil, errors.ErrNoInstallations
	}

	logger := e.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	s := &Session{URI: uri, Installations: installations}
	state := StateSelectInstallation
	for {
		logger.Log(ctx, logging.LevelTrace, "selection state", "state", state)

		var err error
		switch state {
		case StateSelectInstallation:
			state, err = e.selectInstallation(ctx, s)
		case StateSelectProfile:
			state, err = e.selectProfile(ctx, s)
		case StateSelectExecutable:
			state, err = e.selectExecutable(ctx, s)
		case StateDone:
			return e.finish(s, logger)
		case StateCancelled:
			return nil, nil
		default:
			return nil, errors.Wrapf(ErrInvalidState, "unknown state %d", state)
		}

		if err != nil {
			switch {
			case errors.Is(err, prompt.ErrCancelled):
				logger.Info("selection cancelled", "state", state)
				return nil, nil
			case errors.Is(err, prompt.ErrNotInteractive):
				logger.Error("cannot prompt for a browser", "error", err)
				return nil, nil
			case errors.Is(err, ErrInvalidState):
				logger.Error("selection reached an invalid state", "state", state)
				return nil, err
			default:
				return nil, errors.Wrapf(err, "prompting in %s", state)
			}
		}
	}
}

func (e *Engine) selectInstallation(ctx context.Context, s *Session) (State, error) {
	insts := *s.Installations
	items := make([]string, len(insts))
	for i := range insts {
		items[i] = insts[i].DisplayName()
	}

	title := fmt.Sprintf("URI: %s\nWhich installation would you like to open it with?", s.URI)
	idx, err := e.Prompter.Select(ctx, title, items)
	if err != nil {
		return StateSelectInstallation, err
	}
	if idx < 0 || idx >= len(insts) {
		return StateSelectInstallation, errors.Wrapf(prompt.ErrInvalidSelection, "installation %d", idx)
	}

	s.Index = &idx
	s.Profile = nil
	s.Executable = ""
	return StateSelectProfile, nil
}

func (e *Engine) selectProfile(ctx context.Context, s *Session) (State, error) {
	inst, ok := s.installation()
	if !ok {
		return StateSelectProfile, ErrInvalidState
	}

	items := make([]string, 0, len(inst.Profiles)+1)
	for _, p := range inst.Profiles {
		items = append(items, p.Name)
	}
	items = append(items, ChoiceBack)

	title := fmt.Sprintf("Which profile of %s?", inst.DisplayName())
	idx, err := e.Prompter.Select(ctx, title, items)
	if err != nil {
		return StateSelectProfile, err
	}

	switch {
	case idx == len(inst.Profiles):
		s.Index = nil
		return StateSelectInstallation, nil
	case idx < 0 || idx > len(inst.Profiles):
		return StateSelectProfile, errors.Wrapf(prompt.ErrInvalidSelection, "profile %d", idx)
	}

	profile := inst.Profiles[idx]
	s.Profile = &profile
	s.Executable = ""
	return StateSelectExecutable, nil
}

func (e *Engine) selectExecutable(ctx context.Context, s *Session) (State, error) {
	inst, ok := s.installation()
	if !ok || s.Profile == nil {
		return StateSelectExecutable, ErrInvalidState
	}

	var items []string
	last, hasLast := inst.PreferredFor(s.Profile.Path)
	if hasLast {
		items = append(items, ChoiceLastUsed)
	}
	exes := inst.Executables()
	items = append(items, exes...)
	items = append(items, ChoiceBack)

	title := fmt.Sprintf("Which executable for profile %s?", s.Profile.Name)
	idx, err := e.Prompter.Select(ctx, title, items)
	if err != nil {
		return StateSelectExecutable, err
	}
	if idx < 0 || idx >= len(items) {
		return StateSelectExecutable, errors.Wrapf(prompt.ErrInvalidSelection, "executable %d", idx)
	}

	switch {
	case idx == len(items)-1:
		s.Profile = nil
		return StateSelectProfile, nil
	case hasLast && idx == 0:
		s.Executable = last
	default:
		if hasLast {
			idx--
		}
		s.Executable = exes[idx]
		inst.SetPreferred(s.Profile.Path, s.Executable)
	}
	return StateDone, nil
}

func (e *Engine) finish(s *Session, logger *slog.Logger) (*Descriptor, error) {
	desc, ok := Assemble(s)
	if !ok {
		logger.Error("selection finished without a complete choice", "uri", s.URI)
		return nil, ErrInvalidState
	}

	inst, _ := s.installation()
	profile := *s.Profile
	inst.LastUsed = &profile

	logger.Debug("selection complete",
		"installation", inst.DisplayName(), "profile", profile.Name, "executable", desc.Executable)
	return desc, nil
}
