package token

import "fmt"

// QualificationError reports a dotted column name qualified deeper than
// schema.table.column.
type QualificationError struct {
	Column string
}

func (e *QualificationError) Error() string {
	return fmt.Sprintf("invalid column name %q: qualification deeper than schema.table.column", e.Column)
}
