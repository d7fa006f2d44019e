package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrTableNotFound indicates no table carries the configured id.
	ErrTableNotFound = errors.New("table not found")

	// ErrBodyNotFound indicates the table has no tbody section.
	ErrBodyNotFound = errors.New("table body not found")

	// ErrNoRows indicates the table body has no rows.
	ErrNoRows = errors.New("no rows in table body")

	// ErrShortRow indicates a row has fewer cells than the layout needs.
	ErrShortRow = errors.New("row has too few cells")
)

// StructureError reports a document that does not have the expected table shape.
// It is fatal for a run.
type StructureError struct {
	TableID string
	Err     error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("roster structure: table %q: %v", e.TableID, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}

// Issue records a row that did not match the expected shape.
// Field-level issues keep the row with an empty value; row-level
// issues (Field == "") drop the row.
type Issue struct {
	Row    int    `json:"row"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("row %d: %s", i.Row, i.Reason)
	}
	return fmt.Sprintf("row %d: %s: %s", i.Row, i.Field, i.Reason)
}
