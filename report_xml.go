package csvfind

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// XML report document shape. The root search element carries the search
// path and one query element per condition; the nested results element
// carries one file element per non-empty result.
type xmlSearch struct {
	XMLName xml.Name   `xml:"search"`
	Path    string     `xml:"path,attr"`
	Queries []xmlQuery `xml:"query"`
	Results []xmlFile  `xml:"results>file"`
}

type xmlQuery struct {
	Column     string `xml:"column,attr"`
	Type       string `xml:"type,attr"`
	Value      string `xml:"value,attr,omitempty"`
	ValueLower string `xml:"value-lower,attr,omitempty"`
	ValueUpper string `xml:"value-upper,attr,omitempty"`
}

type xmlFile struct {
	Path       string    `xml:"path,attr"`
	Delimiter  string    `xml:"delimiter,attr"`
	Enclosure  string    `xml:"enclosure,attr"`
	Escape     string    `xml:"escape,attr"`
	Headers    string    `xml:"headers,omitempty"`
	FoundLines []xmlLine `xml:"found-lines>line"`
}

type xmlLine struct {
	Number int    `xml:"number,attr"`
	Body   string `xml:",chardata"`
}

// WriteXMLReport renders a search as an XML document to w. Files with no
// matches are left out; each matched line's body is the row's fields
// joined with the file's delimiter and wrapped in its enclosure character.
func WriteXMLReport(w io.Writer, searchPath string, conditions []*QueryCondition, results []*Result) error {
	doc := xmlSearch{Path: searchPath}

	for _, cond := range conditions {
		q := xmlQuery{
			Column: cond.Column().String(),
			Type:   cond.Kind(),
		}
		if lower, upper, ok := cond.Bounds(); ok {
			q.ValueLower = lower
			q.ValueUpper = upper
		} else {
			q.Value = cond.Value()
		}
		doc.Queries = append(doc.Queries, q)
	}

	for _, res := range results {
		if len(res.Matches) == 0 {
			continue
		}
		file := xmlFile{
			Path:      res.Filename,
			Delimiter: string(res.Delimiter),
			Enclosure: string(res.Enclosure),
			Escape:    string(res.Escape),
		}
		if res.Headers != nil {
			file.Headers = strings.Join(res.Headers.Fields(), string(res.Delimiter))
		}
		for _, row := range res.Matches {
			file.FoundLines = append(file.FoundLines, xmlLine{
				Number: row.LineNumber(),
				Body:   joinFields(row.Fields(), res.Delimiter, res.Enclosure, res.Escape),
			})
		}
		doc.Results = append(doc.Results, file)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode xml report: %w", err)
	}
	return enc.Close()
}
