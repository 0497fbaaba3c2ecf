package tree

import "fmt"

// ConfigError reports an invalid or conflicting build configuration. It is
// returned before any traversal begins, so no partial tree exists when it
// surfaces.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "tree: invalid configuration: " + e.Reason
}

// ConversionError reports a record whose id could not be extracted by the
// adapter. Index is the record's position across everything appended to the
// builder so far.
type ConversionError struct {
	Index int
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("tree: cannot convert record at index %d: %v", e.Index, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// CycleError reports that a second parent claimed an id which was already
// attached elsewhere in the tree. It is only raised in strict-cycles mode;
// the default policy drops the later claim silently.
type CycleError struct {
	NodeID any
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("tree: node %v is already attached, second parent claim rejected", e.NodeID)
}
