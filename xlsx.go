package csvfind

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// extXLSX is the Excel workbook extension.
const extXLSX = ".xlsx"

// xlsxDelimiter is echoed in Results for workbook sources, which have no
// real delimiter of their own.
const xlsxDelimiter = ','

// openXLSXSource loads every sheet of a workbook into one sequential row
// stream and runs the usual header heuristic on its head. Delimiter
// detection does not apply; the enclosure and escape characters are only
// echoed into the Result.
func openXLSXSource(path string, cfg sourceConfig) (*SourceFile, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAccess, path, err)
	}
	defer func() { _ = book.Close() }()

	sheet := &sheetRows{}
	lineNum := 0
	for _, name := range book.GetSheetList() {
		rows, err := book.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: sheet %s: %v", ErrAccess, path, name, err)
		}
		for _, row := range rows {
			lineNum++
			if isBlankFields(row) {
				continue
			}
			sheet.rows = append(sheet.rows, row)
			sheet.lineNums = append(sheet.lineNums, lineNum)
		}
	}

	src := &SourceFile{
		path:      path,
		cfg:       cfg,
		delimiter: xlsxDelimiter,
		cleanup:   func() error { return nil },
		sheet:     sheet,
	}

	hasHeaders := false
	switch cfg.headers {
	case HeaderPresent:
		hasHeaders = true
	case HeaderAuto:
		head := sheet.rows
		if len(head) > 1+HeaderProbeDepth {
			head = head[:1+HeaderProbeDepth]
		}
		if len(head) > 1 {
			hasHeaders = detectHeaders(head[0], head[1:])
		}
	}
	if hasHeaders {
		header, err := src.ReadRow()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: header declared but %s has no rows", ErrLogic, path)
		}
		if err != nil {
			return nil, err
		}
		src.headers = header
	}
	return src, nil
}

// sheetRows is the row stream of a loaded workbook: all sheets
// concatenated, blank rows dropped, with workbook-wide row numbers.
type sheetRows struct {
	rows     [][]string
	lineNums []int
	pos      int
}

func (sr *sheetRows) next(path string) (*LineRecord, error) {
	if sr.pos >= len(sr.rows) {
		return nil, io.EOF
	}
	row := newLineRecord(sr.lineNums[sr.pos], path, sr.rows[sr.pos])
	sr.pos++
	return row, nil
}
