package csvfind

import "fmt"

// LineRecord is one parsed physical line: an ordered, fixed-length sequence
// of textual fields tagged with its 1-based line number and source filename.
// All fields are strings; the record never changes after construction.
//
// Two records with identical contents are still distinct objects. Result
// removal compares records by identity, not by value.
type LineRecord struct {
	lineNumber int
	filename   string
	fields     []string
}

// newLineRecord creates a record for the given physical line. The field
// slice is copied so later reuse of the caller's buffer cannot mutate it.
func newLineRecord(lineNumber int, filename string, fields []string) *LineRecord {
	r := &LineRecord{
		lineNumber: lineNumber,
		filename:   filename,
		fields:     make([]string, len(fields)),
	}
	copy(r.fields, fields)
	return r
}

// Column returns the field at index (0-based). An out-of-range index fails
// with ErrNotFound naming the ordinal position index+1 and the record's
// file and line.
func (r *LineRecord) Column(index int) (string, error) {
	if index < 0 || index >= len(r.fields) {
		return "", fmt.Errorf("%w: column %d does not exist in %s line %d",
			ErrNotFound, index+1, r.filename, r.lineNumber)
	}
	return r.fields[index], nil
}

// ColumnCount returns the number of fields.
func (r *LineRecord) ColumnCount() int {
	return len(r.fields)
}

// LineNumber returns the 1-based physical line number this record was
// parsed from.
func (r *LineRecord) LineNumber() int {
	return r.lineNumber
}

// Filename returns the path of the file this record came from.
func (r *LineRecord) Filename() string {
	return r.filename
}

// Fields returns a copy of the record's fields.
func (r *LineRecord) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}
