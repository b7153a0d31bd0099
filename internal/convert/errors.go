package convert

import "fmt"

// InputError means the export could not be read or has the wrong shape.
// Nothing is written when it occurs.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid export: %v", e.Err)
	}
	return fmt.Sprintf("invalid export %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// IOError is a failure to create a directory or write a file. List is empty
// when the output root itself could not be created.
type IOError struct {
	List string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.List == "" {
		return fmt.Sprintf("output %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("list %q -> %s: %v", e.List, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatWarning is a recovered problem inside a list, e.g. a timestamp that
// was written verbatim because it could not be parsed.
type FormatWarning struct {
	List   string
	TaskID string
	Value  string
	Err    error
}

func (w FormatWarning) String() string {
	return fmt.Sprintf("list %q task %s: %v", w.List, w.TaskID, w.Err)
}
