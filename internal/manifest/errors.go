package manifest

import (
	"errors"
	"fmt"
)

// ErrInvalid is the common sentinel for libman document validation
// failures. The per-document sentinels below all wrap it, so callers
// can match either the broad class or the specific kind with errors.Is.
var ErrInvalid = errors.New("invalid libman document")

var (
	// ErrInvalidIndex marks validation failures in an index (.lmi) file.
	ErrInvalidIndex = errors.New("invalid libman index")
	// ErrInvalidPackage marks validation failures in a package (.lmp) file.
	ErrInvalidPackage = errors.New("invalid libman package")
	// ErrInvalidLibrary marks validation failures in a library (.lml) file.
	ErrInvalidLibrary = errors.New("invalid libman library")
)

// kindError pairs a document-kind sentinel with a detail message and
// reports true for errors.Is against both the kind and ErrInvalid.
type kindError struct {
	kind   error
	detail string
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.detail
}

func (e *kindError) Is(target error) bool {
	return target == e.kind || target == ErrInvalid
}

func invalidf(kind error, format string, args ...any) error {
	return &kindError{kind: kind, detail: fmt.Sprintf(format, args...)}
}
