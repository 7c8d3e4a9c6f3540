package excel

import (
	"bytes"
	"testing"

	"vizlens/domain/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReaderRead(t *testing.T) {
	buf := workbookBytes(t, [][]any{
		{"region", "sales"},
		{"EU", 10},
		{"US", 20},
	})

	table, err := NewReader().Read(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "sales"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, dataset.Row{"region": "EU", "sales": "10"}, table.Rows[0])
}

func TestReaderSkipsBlankRows(t *testing.T) {
	buf := workbookBytes(t, [][]any{
		{"a", "b"},
		{"1", "2"},
		{"", ""},
		{"3", "4"},
	})

	table, err := NewReader().Read(buf)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)
}

func TestReaderPadsShortRows(t *testing.T) {
	buf := workbookBytes(t, [][]any{
		{"a", "b", "c"},
		{"1", "2"},
	})

	table, err := NewReader().Read(buf)
	require.NoError(t, err)
	assert.Equal(t, dataset.Row{"a": "1", "b": "2", "c": ""}, table.Rows[0])
}

func TestReaderRejectsHeaderOnlySheet(t *testing.T) {
	buf := workbookBytes(t, [][]any{{"a", "b"}})

	_, err := NewReader().Read(buf)
	assert.Error(t, err)
}

func TestReaderRejectsNonWorkbook(t *testing.T) {
	_, err := NewReader().Read(bytes.NewReader([]byte("not an xlsx")))
	assert.Error(t, err)
}
