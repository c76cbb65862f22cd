package keycount

import "fmt"

const (
	StageLoad  = "load"
	StageParse = "parse"
	StageCount = "count"
)

// FileAccessError is returned when the definitions file cannot be opened or
// read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", StageLoad, e.Err)
	}

	return fmt.Sprintf("%s: failed to read %s: %v", StageLoad, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }
func (e *FileAccessError) Stage() string { return StageLoad }

// ParseError is returned when the file contents are not a single well-formed
// JSON document. Offset is the byte offset of the failure, or -1 when the
// decoder did not report one.
type ParseError struct {
	Path   string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s is not valid JSON (offset %d): %v", StageParse, e.Path, e.Offset, e.Err)
	}

	return fmt.Sprintf("%s: %s is not valid JSON: %v", StageParse, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
func (e *ParseError) Stage() string { return StageParse }

// TypeMismatchError is returned when the top-level value is not an object and
// so has no keys to count.
type TypeMismatchError struct {
	Path string
	Kind string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: top-level value of %s is %s, expected an object", StageCount, e.Path, describe(e.Kind))
}

func (e *TypeMismatchError) Stage() string { return StageCount }

func describe(kind string) string {
	switch kind {
	case "null":
		return kind
	case "array":
		return "an " + kind
	}

	return "a " + kind
}
