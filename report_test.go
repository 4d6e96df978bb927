package csvfind

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stockResults runs the standard searches used by the report tests.
func stockResults(t *testing.T) ([]*QueryCondition, []*Result) {
	t.Helper()

	conditions := []*QueryCondition{
		MustCondition(Column("stock"), OpGreater, 15),
		MustCondition(Column("stock"), OpBetweenInclusive, [2]string{"15", "17"}),
	}

	src := openTestSource(t, "stock.csv", stockCSV)
	res, err := src.FindBy(conditions[0])
	require.NoError(t, err)
	return conditions, []*Result{res}
}

func TestWriteTextReport(t *testing.T) {
	t.Parallel()

	conditions, results := stockResults(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTextReport(&buf, "./data", conditions, results))
	out := buf.String()

	assert.Contains(t, out, "Search: ./data")
	assert.Contains(t, out, "where stock greater")
	assert.Contains(t, out, "where stock between_inclusive [15, 17]")
	assert.Contains(t, out, `"Land Rover","17","15"`)
	assert.Contains(t, out, "(3 of 4 rows)")
	assert.Contains(t, out, "3 matching rows in 1 files")
}

func TestWriteTextReportSkipsEmptyResults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	empty := &Result{Filename: "empty.csv", Delimiter: ',', Enclosure: '"', Escape: '\\'}
	err := WriteTextReport(&buf, ".", []*QueryCondition{MustCondition(AnyColumn(), OpNotEmpty, nil)}, []*Result{empty})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "empty.csv")
	assert.Contains(t, buf.String(), "0 matching rows in 1 files")
}

func TestWriteXMLReport(t *testing.T) {
	t.Parallel()

	conditions, results := stockResults(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXMLReport(&buf, "./data", conditions, results))

	var doc xmlSearch
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "./data", doc.Path)
	require.Len(t, doc.Queries, 2)

	assert.Equal(t, "stock", doc.Queries[0].Column)
	assert.Equal(t, "int", doc.Queries[0].Type)
	assert.Equal(t, "15", doc.Queries[0].Value)
	assert.Empty(t, doc.Queries[0].ValueLower)

	assert.Equal(t, "array", doc.Queries[1].Type)
	assert.Equal(t, "15", doc.Queries[1].ValueLower)
	assert.Equal(t, "17", doc.Queries[1].ValueUpper)
	assert.Empty(t, doc.Queries[1].Value)

	require.Len(t, doc.Results, 1)
	file := doc.Results[0]
	assert.Equal(t, ",", file.Delimiter)
	assert.Equal(t, `"`, file.Enclosure)
	assert.Equal(t, `\`, file.Escape)
	assert.Equal(t, "name,stock,sold", file.Headers)

	require.Len(t, file.FoundLines, 3)
	assert.Equal(t, 2, file.FoundLines[0].Number)
	assert.Equal(t, `"Volvo","22","22"`, file.FoundLines[0].Body)
	assert.Equal(t, 5, file.FoundLines[2].Number)
	assert.Equal(t, `"Land Rover","17","15"`, file.FoundLines[2].Body)
}

func TestWriteXMLReportOmitsEmptyFiles(t *testing.T) {
	t.Parallel()

	empty := &Result{Filename: "empty.csv", Delimiter: ',', Enclosure: '"', Escape: '\\'}

	var buf bytes.Buffer
	err := WriteXMLReport(&buf, ".", []*QueryCondition{MustCondition(AnyColumn(), OpNotEmpty, nil)}, []*Result{empty})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "empty.csv")
}

func TestWriteHTMLReport(t *testing.T) {
	t.Parallel()

	conditions, results := stockResults(t)
	target := filepath.Join(t.TempDir(), "report")

	require.NoError(t, WriteHTMLReport(target, "./data", conditions, results))

	page, err := os.ReadFile(filepath.Join(target, htmlReportPage))
	require.NoError(t, err)
	html := string(page)
	assert.Contains(t, html, "Search: ./data")
	assert.Contains(t, html, "Land Rover")
	assert.Contains(t, html, "<th>stock</th>")
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))

	style, err := os.ReadFile(filepath.Join(target, htmlReportStyle))
	require.NoError(t, err)
	assert.Contains(t, string(style), "border-collapse")
}
