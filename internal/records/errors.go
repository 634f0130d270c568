package records

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrMissingFile is matched by errors.Is for load failures caused by an absent source file.
var ErrMissingFile = fs.ErrNotExist

// LoadError reports a failure to read one of the source files.
type LoadError struct {
	File string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load %s: %v", e.File, e.Err)
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsMissing reports whether err was caused by a source file that does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissingFile)
}
