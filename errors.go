package csvfind

import "errors"

// Standard error values. Callers test the failure class with errors.Is;
// wrapped messages carry filename, line number, and 1-based column
// ordinals where available.
var (
	// ErrValidation indicates malformed constructor or condition arguments,
	// such as a multi-rune delimiter or a value whose shape does not fit
	// the operator.
	ErrValidation = errors.New("csvfind: invalid argument")

	// ErrAccess indicates a file that is missing or unreadable.
	ErrAccess = errors.New("csvfind: file not accessible")

	// ErrDetection indicates that the delimiter could not be determined
	// from the file content.
	ErrDetection = errors.New("csvfind: format detection failed")

	// ErrLogic indicates a request that cannot be satisfied as posed, such
	// as a search with no conditions or a value of an unsupported type.
	ErrLogic = errors.New("csvfind: logic error")

	// ErrNotFound indicates a column index or name absent from a row or
	// header. A search that hits this aborts the whole file scan.
	ErrNotFound = errors.New("csvfind: not found")
)
