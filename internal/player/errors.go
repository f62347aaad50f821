package player

import (
	"errors"
	"fmt"
)

// ErrPlayerNotFound is returned when a lookup has no match.
var ErrPlayerNotFound = errors.New("player not found")

// DataFormatError reports a malformed source table.
type DataFormatError struct {
	Source string
	Row    int // 1-based data row, 0 for header problems
	Column string
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("%s: column %q: %s", e.Source, e.Column, e.Reason)
	}
	return fmt.Sprintf("%s: row %d: column %q: %s", e.Source, e.Row, e.Column, e.Reason)
}
