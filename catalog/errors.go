package catalog

import "fmt"

// ParseError reports a field whose textual pattern did not match what the
// schema implies (a non-numeric duration, a malformed date_added, an
// unknown type). Reports skip the offending row; only the load step treats
// the type column strictly.
type ParseError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q: %s", e.Field, e.Value, e.Reason)
}

// InputFormatError reports a malformed source file or row during loading.
// Loading stops at the first one; no report can run against a partially
// loaded catalog.
type InputFormatError struct {
	Line   int
	Reason string
	Err    error
}

func (e *InputFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid catalog input at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid catalog input: %s", e.Reason)
}

func (e *InputFormatError) Unwrap() error {
	return e.Err
}
