package browser

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/plinks/internal/ini"
	"github.com/thoreinstein/plinks/pkg/fileutil"
)

// profileSectionPrefix marks the sections that describe profiles.
const profileSectionPrefix = "Profile"

// Registry keys read from a profile section.
const (
	keyName       = "Name"
	keyPath       = "Path"
	keyIsRelative = "IsRelative"
)

// ParseRegistry reads the profiles listed in a profiles.ini file.
// Malformed profile sections are dropped with a warning; only a file that
// cannot be read is an error.
func ParseRegistry(path string, logger *slog.Logger) ([]Profile, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading registry file %s", path)
	}
	return ParseRegistryReader(bytes.NewReader(data), path, logger)
}

// ParseRegistryReader parses registry text read from r. registryPath is the
// file the text came from; relative profile paths are joined to its directory.
func ParseRegistryReader(r io.Reader, registryPath string, logger *slog.Logger) ([]Profile, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := registryParser{
		base:   filepath.Dir(registryPath),
		logger: logger.With("registry", registryPath),
	}

	events := ini.NewReader(r)
	for {
		ev, err := events.Next()
		if errors.Is(err, io.EOF) {
			// An unterminated trailing section is discarded.
			return p.profiles, nil
		}
		if err != nil {
			return p.profiles, errors.Wrapf(err, "parsing registry file %s", registryPath)
		}
		p.handle(ev)
	}
}

// field is a first-value-wins accumulator.
type field[T any] struct {
	value T
	set   bool
}

type registryParser struct {
	base   string
	logger *slog.Logger

	inProfile  bool
	name       field[string]
	path       field[string]
	isRelative field[bool]

	profiles []Profile
}

func (p *registryParser) handle(ev ini.Event) {
	switch ev.Kind {
	case ini.Section:
		if strings.HasPrefix(ev.Name, profileSectionPrefix) {
			p.inProfile = true
		}
	case ini.SectionEnd:
		if p.inProfile {
			p.finish(ev.Line)
		}
	case ini.Property:
		if p.inProfile {
			p.property(ev)
		}
	}
}

func (p *registryParser) property(ev ini.Event) {
	switch ev.Key {
	case keyName:
		captureString(&p.name, ev, p.logger)
	case keyPath:
		captureString(&p.path, ev, p.logger)
	case keyIsRelative:
		if p.isRelative.set {
			p.logger.Warn("repeated key in profile section, keeping first", "key", ev.Key, "line", ev.Line)
			return
		}
		p.isRelative = field[bool]{value: ev.HasValue && ev.Value == "1", set: true}
	}
}

func captureString(f *field[string], ev ini.Event, logger *slog.Logger) {
	if f.set {
		logger.Warn("repeated key in profile section, keeping first", "key", ev.Key, "line", ev.Line)
		return
	}
	value := strings.TrimSpace(ev.Value)
	if !ev.HasValue || value == "" {
		logger.Warn("key without value in profile section", "key", ev.Key, "line", ev.Line)
		return
	}
	*f = field[string]{value: value, set: true}
}

func (p *registryParser) finish(line int) {
	defer p.reset()

	var missing []string
	if !p.name.set {
		missing = append(missing, keyName)
	}
	if !p.path.set {
		missing = append(missing, keyPath)
	}
	if !p.isRelative.set {
		missing = append(missing, keyIsRelative)
	}
	if len(missing) > 0 {
		p.logger.Warn("dropping profile section with missing keys",
			"missing", strings.Join(missing, ","), "line", line)
		return
	}

	path := p.path.value
	if p.isRelative.value {
		path = filepath.Join(p.base, path)
	}
	p.profiles = append(p.profiles, Profile{Name: p.name.value, Path: path})
}

func (p *registryParser) reset() {
	p.inProfile = false
	p.name = field[string]{}
	p.path = field[string]{}
	p.isRelative = field[bool]{}
}
