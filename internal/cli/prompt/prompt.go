// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"context"

	"github.com/thoreinstein/plinks/internal/errors"
)

// Sentinel errors for selection prompts.
var (
	// ErrNoItems indicates a prompt was asked to choose from nothing.
	ErrNoItems = errors.New("no items to select from")

	// ErrInvalidSelection indicates input that does not name an item.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrCancelled indicates the user aborted the prompt.
	ErrCancelled = errors.New("selection cancelled")

	// ErrNotInteractive indicates no terminal is attached to answer prompts.
	ErrNotInteractive = errors.New("not running in an interactive terminal")
)

// Prompter asks the user to choose one of items.
//
// Select returns the index of the chosen item. It returns ErrCancelled when
// the user aborts and ErrNotInteractive when no terminal is available.
type Prompter interface {
	Select(ctx context.Context, title string, items []string) (int, error)
}
