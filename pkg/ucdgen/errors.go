package ucdgen

import "fmt"

// InputFormatError reports a UCD source line ucdgen could not parse,
// per spec §7's build-time error regime: the generator fails loudly
// rather than silently skipping malformed input.
type InputFormatError struct {
	File string
	Line int
	Text string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%s:%d: malformed UCD record: %q", e.File, e.Line, e.Text)
}

// UnknownPropertyValueError reports a value token that does not appear
// in the property's known value set (e.g. a typo'd General_Category
// abbreviation) and that PropertyValueAliases data did not resolve.
type UnknownPropertyValueError struct {
	Property string
	Value    string
}

func (e *UnknownPropertyValueError) Error() string {
	return fmt.Sprintf("unknown value %q for property %q", e.Value, e.Property)
}

// MissingPropertyError reports a property that no input file supplied
// any records for. No function in this package returns it: Coalesce
// turns an empty record set into a single run holding the property's
// default value.
type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("no input data found for property %q", e.Property)
}

// InvariantViolationError reports a post-coalesce self-check failure:
// unsorted boundaries, a run count mismatching the value array length,
// or an atom index out of range. This should never happen for
// well-formed input; when it does, it indicates a bug in the
// coalescer/interner rather than bad input, so it is never recovered
// from silently.
type InvariantViolationError struct {
	Property string
	Detail   string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violated for property %q: %s", e.Property, e.Detail)
}
