package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
)

// maxAttempts bounds re-prompting after invalid input.
const maxAttempts = 3

// Selector is a numbered-list Prompter reading answers line by line.
type Selector struct {
	reader      *bufio.Reader
	writer      io.Writer
	interactive func() bool
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader:      bufio.NewReader(os.Stdin),
		writer:      os.Stdout,
		interactive: func() bool { return logging.IsTTY(os.Stdin) },
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Select prints items as a numbered list and reads the choice.
//
// Returns:
//   - ErrNoItems if the list is empty
//   - The first item on empty input
//   - ErrInvalidSelection after repeated out-of-range or non-numeric input
//   - ErrCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) Select(ctx context.Context, title string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, ErrNoItems
	}
	if s.interactive != nil && !s.interactive() {
		return 0, ErrNotInteractive
	}

	fmt.Fprintln(s.writer, title)
	for i, item := range items {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, item)
	}

	var lastErr error
	for range maxAttempts {
		if err := ctx.Err(); err != nil {
			return 0, errors.Wrap(ErrCancelled, err.Error())
		}

		fmt.Fprintf(s.writer, "Select [1]: ")
		idx, err := s.read(len(items))
		if err == nil {
			return idx, nil
		}
		if !errors.Is(err, ErrInvalidSelection) {
			return 0, err
		}
		fmt.Fprintln(s.writer, err)
		lastErr = err
	}
	return 0, lastErr
}

func (s *Selector) read(n int) (int, error) {
	input, err := s.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		if errors.Is(err, io.EOF) {
			return 0, ErrCancelled
		}
		return 0, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)

	// Default to first option if empty
	if input == "" {
		return 0, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}

	// Validate range (1-indexed)
	if selection < 1 || selection > n {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, n)
	}

	return selection - 1, nil
}
