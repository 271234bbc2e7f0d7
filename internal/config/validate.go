package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrVersionTooHigh indicates a config written for a newer plinks.
	ErrVersionTooHigh = errors.Newf("version must be <= %d", SupportedVersion)

	// ErrInvalidPrompt indicates an unrecognized prompt style.
	ErrInvalidPrompt = errors.New("prompt must be fuzzy or numbered")

	// ErrInvalidFamily indicates an unrecognized browser family name.
	ErrInvalidFamily = errors.New("invalid browser family")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	} else if cfg.Version > SupportedVersion {
		errs = append(errs, ErrVersionTooHigh)
	}

	switch cfg.Prompt {
	case "", PromptFuzzy, PromptNumbered:
	default:
		errs = append(errs, &FieldError{Field: "prompt", Err: ErrInvalidPrompt})
	}

	errs = appendPathError(errs, "cache_file", cfg.CacheFile)
	for i, dir := range cfg.ScanPaths {
		if dir == "" {
			errs = append(errs, &PathError{Field: fmt.Sprintf("scan_paths[%d]", i), Path: dir, Err: ErrInvalidPath})
			continue
		}
		errs = appendPathError(errs, fmt.Sprintf("scan_paths[%d]", i), dir)
	}

	for family, override := range cfg.Families {
		if !paths.ValidFamily(family) {
			errs = append(errs, &FieldError{Field: "families." + family, Err: ErrInvalidFamily})
			continue
		}
		errs = appendPathError(errs, "families."+family+".registry_file", override.RegistryFile)
	}

	for i, def := range cfg.Custom {
		field := customField(i)
		errs = appendPathError(errs, field+".registry_file", def.RegistryFile)
		for j, p := range def.Profiles {
			errs = appendPathError(errs, fmt.Sprintf("%s.profiles[%d].path", field, j), p.Path)
		}
		if err := def.Kind().Validate(); err != nil {
			errs = append(errs, &FieldError{Field: field, Err: err})
		}
	}

	return errs
}

func customField(i int) string {
	return fmt.Sprintf("custom[%d]", i)
}

func appendPathError(errs []error, field, path string) []error {
	if err := validatePath(path); err != nil {
		return append(errs, &PathError{Field: field, Path: path, Err: err})
	}
	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an error for a specific config field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
