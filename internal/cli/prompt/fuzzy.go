package prompt

import (
	"context"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
)

// Fuzzy is a full-screen fuzzy-finder Prompter.
type Fuzzy struct{}

// NewFuzzy creates a fuzzy-finder Prompter on the controlling terminal.
func NewFuzzy() *Fuzzy {
	return &Fuzzy{}
}

// Select opens the finder with title as its header. Esc and Ctrl+C cancel.
func (f *Fuzzy) Select(ctx context.Context, title string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, ErrNoItems
	}
	if !logging.IsTTY(os.Stdin) || !logging.IsTTY(os.Stdout) {
		return 0, ErrNotInteractive
	}

	idx, err := fuzzyfinder.Find(
		items,
		func(i int) string { return items[i] },
		fuzzyfinder.WithHeader(title),
		fuzzyfinder.WithContext(ctx),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) || errors.Is(err, context.Canceled) {
			return 0, ErrCancelled
		}
		return 0, errors.Wrap(err, "fuzzy finder failed")
	}
	return idx, nil
}

// New returns the Prompter for a config prompt style.
// Unknown styles fall back to the fuzzy finder.
func New(style string) Prompter {
	if style == "numbered" {
		return NewSelector()
	}
	return NewFuzzy()
}
