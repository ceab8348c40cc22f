package relations

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when the metadata file does not exist.
	ErrNotFound = errors.New("metadata document not found")
	// ErrInvalidDocument is returned when the root cannot be parsed or is
	// not a mapping.
	ErrInvalidDocument = errors.New("invalid metadata document")
	// ErrMissingSection is returned when a key on the fixed path is absent.
	ErrMissingSection = errors.New("missing metadata section")
)

// SectionError names the key path that could not be resolved.
type SectionError struct {
	Path []string
}

func (e *SectionError) Error() string {
	return ErrMissingSection.Error() + ": " + strings.Join(e.Path, ".")
}

func (e *SectionError) Unwrap() error {
	return ErrMissingSection
}
