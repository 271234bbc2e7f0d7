// Package ini reads INI-like text as a stream of primitive events.
//
// Unlike map-based INI decoders, the reader keeps repeated keys, keeps file
// order and reports section boundaries, so callers can apply their own
// first-value-wins and per-section validation rules.
//
// A SectionEnd event is emitted immediately before every section header
// that follows an open section. No SectionEnd is emitted at end of input;
// callers decide what an unterminated trailing section means.
package ini

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind identifies the type of an Event.
type Kind int

const (
	// Blank is an empty or whitespace-only line.
	Blank Kind = iota
	// Comment is a line starting with ';' or '#'.
	Comment
	// Section is a "[name]" header.
	Section
	// SectionEnd closes the previous section before the next header.
	SectionEnd
	// Property is a "key=value" line, or a bare "key" line without '='.
	Property
	// Malformed is a line the reader could not classify, e.g. "[unterminated".
	Malformed
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Section:
		return "section"
	case SectionEnd:
		return "section-end"
	case Property:
		return "property"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Event is one primitive item of the stream.
type Event struct {
	Kind Kind
	// Line is the 1-based source line. SectionEnd carries the line of the
	// header that closed the section.
	Line int
	// Name is the section name for Section events.
	Name string
	// Key is the trimmed property key for Property events.
	Key string
	// Value is the trimmed property value; meaningful only if HasValue.
	Value string
	// HasValue is false for a bare key with no '='.
	HasValue bool
}

// maxLineSize bounds a single line; registry files are small.
const maxLineSize = 1024 * 1024

// Reader produces Events from an io.Reader.
type Reader struct {
	scanner   *bufio.Scanner
	line      int
	inSection bool
	pending   *Event
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Reader{scanner: s}
}

// Next returns the next event, or io.EOF when the input is exhausted.
func (r *Reader) Next() (Event, error) {
	if r.pending != nil {
		ev := *r.pending
		r.pending = nil
		return ev, nil
	}

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Event{}, errors.Wrapf(err, "reading line %d", r.line+1)
		}
		return Event{}, io.EOF
	}
	r.line++

	raw := r.scanner.Text()
	if r.line == 1 {
		raw = strings.TrimPrefix(raw, "\ufeff")
	}
	text := strings.TrimSpace(raw)

	switch {
	case text == "":
		return Event{Kind: Blank, Line: r.line}, nil
	case text[0] == ';' || text[0] == '#':
		return Event{Kind: Comment, Line: r.line}, nil
	case text[0] == '[':
		if !strings.HasSuffix(text, "]") {
			return Event{Kind: Malformed, Line: r.line}, nil
		}
		header := Event{
			Kind: Section,
			Line: r.line,
			Name: strings.TrimSpace(text[1 : len(text)-1]),
		}
		if r.inSection {
			r.pending = &header
			return Event{Kind: SectionEnd, Line: r.line}, nil
		}
		r.inSection = true
		return header, nil
	}

	key, value, found := strings.Cut(text, "=")
	return Event{
		Kind:     Property,
		Line:     r.line,
		Key:      strings.TrimSpace(key),
		Value:    strings.TrimSpace(value),
		HasValue: found,
	}, nil
}
