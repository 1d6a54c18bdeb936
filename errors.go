package boxkit

import "fmt"

// ConfigError reports a table that is not a bijection over its index range.
// It is returned at construction time only; transforms on a constructed box
// cannot fail.
type ConfigError struct {
	// Kind names the table being validated, "s-box" or "p-box".
	Kind string

	// Index is the table index at which validation failed.
	Index int

	// Value is the offending table entry.
	Value byte

	// Reason is either "out of range" or "duplicate".
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("boxkit: invalid %s table: %s value %#x at index %d", e.Kind, e.Reason, e.Value, e.Index)
}
