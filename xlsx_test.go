package csvfind

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeStockWorkbook(t *testing.T) string {
	t.Helper()

	book := excelize.NewFile()
	rows := [][]any{
		{"name", "stock", "sold"},
		{"Volvo", 22, 22},
		{"BMW", 15, 13},
		{"Ford", 17, 22},
		{"Land Rover", 17, 15},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "stock.xlsx")
	require.NoError(t, book.SaveAs(path))
	require.NoError(t, book.Close())
	return path
}

func TestOpenXLSXSource(t *testing.T) {
	t.Parallel()

	src, err := OpenSource(writeStockWorkbook(t))
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	// no delimiter of its own: the Result echoes a comma
	assert.Equal(t, ',', src.Delimiter())
	require.NotNil(t, src.Headers(), "the header heuristic applies to sheet rows too")
	assert.Equal(t, []string{"name", "stock", "sold"}, src.Headers().Fields())

	res, err := src.FindBy(MustCondition(Column("stock"), OpGreater, 15))
	require.NoError(t, err)
	assert.Equal(t, []string{"Volvo", "Ford", "Land Rover"}, matchedField(t, res, 0))
	assert.Equal(t, 4, res.TotalLines)
}

func TestOpenXLSXSourceDeclaredHeaders(t *testing.T) {
	t.Parallel()

	src, err := OpenSource(writeStockWorkbook(t), WithHeaders(HeaderAbsent))
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	assert.Nil(t, src.Headers())

	res, err := src.FindBy(MustCondition(ColumnIndex(0), OpMatches, "name"))
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, 5, res.TotalLines, "without a header every sheet row is data")
}

func TestOpenXLSXSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := OpenSource(filepath.Join(t.TempDir(), "gone.xlsx"))
	assert.ErrorIs(t, err, ErrAccess)
}
