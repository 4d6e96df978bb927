package csvfind

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// SourceFile owns one open file. It resolves the delimiter and header
// presence at construction, hands out rows sequentially, and runs the
// match loop. A SourceFile must be released with Close on every path; all
// OpenSource failure paths release the handle themselves.
//
// Scanning is fully synchronous. A SourceFile is not safe for concurrent
// use.
type SourceFile struct {
	path      string
	cfg       sourceConfig
	delimiter rune
	headers   *LineRecord
	cleanup   func() error
	lines     *lineReader
	sheet     *sheetRows
	closed    bool
}

// maxLineSize bounds one physical line; lines beyond this fail the scan.
const maxLineSize = 1 << 20

// OpenSource opens path and resolves its format parameters. Missing or
// unreadable files fail with ErrAccess; a file on which no delimiter
// candidate ever splits a line fails with ErrDetection. Detection steps
// run only for the parameters the caller left unset.
//
// Compressed files (.gz, .bz2, .xz, .zst) are transparently decompressed.
// Excel workbooks (.xlsx) skip delimiter detection; their rows feed the
// same match loop and the Result echoes ',' as delimiter.
func OpenSource(path string, opts ...SourceOption) (*SourceFile, error) {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if strings.EqualFold(filepath.Ext(path), extXLSX) {
		return openXLSXSource(path, cfg)
	}

	reader, cleanup, err := openReader(path)
	if err != nil {
		return nil, err
	}

	src := &SourceFile{
		path:    path,
		cfg:     cfg,
		cleanup: cleanup,
		lines:   newLineReader(reader, path),
	}
	if err := src.resolveFormat(); err != nil {
		_ = cleanup()
		return nil, err
	}
	return src, nil
}

// resolveFormat runs delimiter and header detection against the buffered
// head of the file, then positions the cursor past the header row when one
// was found.
func (s *SourceFile) resolveFormat() error {
	if s.cfg.delimiterSet {
		s.delimiter = s.cfg.delimiter
	} else {
		head, err := s.lines.peek(DetectionDepth)
		if err != nil {
			return err
		}
		delimiter, err := detectDelimiter(head, delimiterCandidates, s.cfg.enclosure, s.cfg.escape)
		if err != nil {
			return fmt.Errorf("%w (%s)", err, s.path)
		}
		s.delimiter = delimiter
	}

	hasHeaders := false
	switch s.cfg.headers {
	case HeaderPresent:
		hasHeaders = true
	case HeaderAbsent:
		hasHeaders = false
	case HeaderAuto:
		head, err := s.lines.peek(1 + HeaderProbeDepth)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(head))
		for _, line := range head {
			fields := splitLine(line, s.delimiter, s.cfg.enclosure, s.cfg.escape)
			if isBlankFields(fields) {
				continue
			}
			rows = append(rows, fields)
		}
		if len(rows) > 1 {
			hasHeaders = detectHeaders(rows[0], rows[1:])
		}
	}

	if hasHeaders {
		header, err := s.ReadRow()
		if err == io.EOF {
			return fmt.Errorf("%w: header declared but %s has no rows", ErrLogic, s.path)
		}
		if err != nil {
			return err
		}
		s.headers = header
	}
	return nil
}

// Delimiter returns the detected or declared field delimiter.
func (s *SourceFile) Delimiter() rune {
	return s.delimiter
}

// Headers returns the header row, or nil when the file has none. The
// header is not a data row: it is never counted and never matched.
func (s *SourceFile) Headers() *LineRecord {
	return s.headers
}

// ReadRow returns the next data row, skipping lines whose parsed fields
// are all empty. At end of data it returns io.EOF.
func (s *SourceFile) ReadRow() (*LineRecord, error) {
	if s.sheet != nil {
		return s.sheet.next(s.path)
	}
	for {
		line, lineNum, err := s.lines.next()
		if err != nil {
			return nil, err
		}
		fields := splitLine(line, s.delimiter, s.cfg.enclosure, s.cfg.escape)
		if isBlankFields(fields) {
			continue
		}
		return newLineRecord(lineNum, s.path, fields), nil
	}
}

// FindBy scans the remaining rows and returns the rows satisfying every
// condition (AND semantics). An empty condition list fails with ErrLogic.
// A condition selecting a named column without a header, an unknown name,
// or an index out of range for a particular row aborts the whole scan with
// ErrNotFound; it is never silently treated as non-matching.
func (s *SourceFile) FindBy(conditions ...*QueryCondition) (*Result, error) {
	if len(conditions) == 0 {
		return nil, fmt.Errorf("%w: at least one condition is required", ErrLogic)
	}

	result := &Result{
		Filename:  s.path,
		Delimiter: s.delimiter,
		Enclosure: s.cfg.enclosure,
		Escape:    s.cfg.escape,
		Headers:   s.headers,
	}

	headerIndex := s.headerIndex()
	for {
		row, err := s.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		result.TotalLines++

		matched, err := s.matchRow(row, conditions, headerIndex)
		if err != nil {
			return nil, err
		}
		if matched {
			result.append(row)
		}
	}
	return result, nil
}

// headerIndex maps header names to field indexes, nil when no header.
func (s *SourceFile) headerIndex() map[string]int {
	if s.headers == nil {
		return nil
	}
	index := make(map[string]int, s.headers.ColumnCount())
	for i, name := range s.headers.fields {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	return index
}

// matchRow evaluates one row against all conditions. For a specific column
// the condition applies to that one field; for the any-column selector the
// condition holds when at least one field satisfies it.
func (s *SourceFile) matchRow(row *LineRecord, conditions []*QueryCondition, headerIndex map[string]int) (bool, error) {
	for _, cond := range conditions {
		switch cond.column.selector {
		case selectIndex:
			value, err := row.Column(cond.column.index)
			if err != nil {
				return false, err
			}
			if !cond.MatchValue(value) {
				return false, nil
			}

		case selectName:
			if headerIndex == nil {
				return false, fmt.Errorf("%w: column %q requires a header, but %s has none",
					ErrNotFound, cond.column.name, s.path)
			}
			index, ok := headerIndex[cond.column.name]
			if !ok {
				return false, fmt.Errorf("%w: column %q does not exist in the header of %s",
					ErrNotFound, cond.column.name, s.path)
			}
			value, err := row.Column(index)
			if err != nil {
				return false, err
			}
			if !cond.MatchValue(value) {
				return false, nil
			}

		default: // any column: OR across fields
			matched := false
			for _, value := range row.fields {
				if cond.MatchValue(value) {
					matched = true
					break
				}
			}
			if !matched {
				return false, nil
			}
		}
	}
	return true, nil
}

// Close releases the underlying file handle. Safe to call more than once.
func (s *SourceFile) Close() error {
	if s.closed || s.cleanup == nil {
		return nil
	}
	s.closed = true
	return s.cleanup()
}

// lineReader hands out raw physical lines one at a time and can buffer a
// bounded head of the file so detection can look ahead without losing the
// lines for the scan that follows.
type lineReader struct {
	scanner  *bufio.Scanner
	path     string
	buffered []string
	pos      int
	lineNum  int
	eof      bool
}

func newLineReader(reader io.Reader, path string) *lineReader {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineReader{scanner: scanner, path: path}
}

// peek returns the first n raw lines of the file (fewer when the file is
// shorter), buffering them for replay. Valid only before the first next
// call.
func (lr *lineReader) peek(n int) ([]string, error) {
	for len(lr.buffered) < n && !lr.eof {
		if lr.scanner.Scan() {
			lr.buffered = append(lr.buffered, lr.scanner.Text())
			continue
		}
		if err := lr.scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAccess, lr.path, err)
		}
		lr.eof = true
	}
	if len(lr.buffered) < n {
		return lr.buffered, nil
	}
	return lr.buffered[:n], nil
}

// next returns the next raw line and its 1-based physical line number,
// replaying buffered lines first. At end of file it returns io.EOF.
func (lr *lineReader) next() (string, int, error) {
	if lr.pos < len(lr.buffered) {
		line := lr.buffered[lr.pos]
		lr.pos++
		lr.lineNum++
		return line, lr.lineNum, nil
	}
	if lr.eof {
		return "", 0, io.EOF
	}
	if lr.scanner.Scan() {
		lr.lineNum++
		return lr.scanner.Text(), lr.lineNum, nil
	}
	if err := lr.scanner.Err(); err != nil {
		return "", 0, fmt.Errorf("%w: %s: %v", ErrAccess, lr.path, err)
	}
	lr.eof = true
	return "", 0, io.EOF
}
