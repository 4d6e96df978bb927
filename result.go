package csvfind

// Result aggregates one source's search outcome: the format parameters the
// source resolved, the header row when one was found, the matched rows in
// scan order, and the count of data rows scanned (header and blank lines
// excluded). A Result never changes once the source that produced it has
// finished.
type Result struct {
	// Filename is the path of the scanned file.
	Filename string
	// Delimiter is the detected or declared field delimiter.
	Delimiter rune
	// Enclosure is the field enclosure character in effect.
	Enclosure rune
	// Escape is the escape character in effect.
	Escape rune
	// Headers is the header row, nil when the file has none.
	Headers *LineRecord
	// Matches holds the matched rows in the order they were scanned.
	Matches []*LineRecord
	// TotalLines is the number of data rows scanned.
	TotalLines int
}

// append adds a matched row, preserving scan order.
func (r *Result) append(record *LineRecord) {
	r.Matches = append(r.Matches, record)
}

// Remove deletes a match by identity. Two records with equal contents are
// distinct; only the exact record passed in is removed. It reports whether
// anything was removed.
func (r *Result) Remove(record *LineRecord) bool {
	for i, m := range r.Matches {
		if m == record {
			r.Matches = append(r.Matches[:i], r.Matches[i+1:]...)
			return true
		}
	}
	return false
}
