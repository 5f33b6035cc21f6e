package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDataCorruption matches any *DataCorruptionError.
	ErrDataCorruption = errors.New("catalog data corrupted")

	// ErrInvalidHeader is returned when the catalog header is missing
	// required columns or the file is empty.
	ErrInvalidHeader = errors.New("invalid catalog header")

	// ErrInvalidCode is returned when a suit code breaks the format rule.
	ErrInvalidCode = errors.New("invalid suit code")
)

// DataCorruptionError reports a catalog row that cannot be turned into a suit.
// It is distinct from a missing file so callers can tell a damaged catalog
// from a fresh bootstrap.
type DataCorruptionError struct {
	Path string // Catalog file
	Line int    // 1-based line of the offending row
	Err  error  // Usually a ValidationError
}

func (e *DataCorruptionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *DataCorruptionError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDataCorruption) match.
func (e *DataCorruptionError) Is(target error) bool {
	return target == ErrDataCorruption
}
