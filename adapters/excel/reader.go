// Package excel reads xlsx workbooks into Tables via excelize.
package excel

import (
	"fmt"
	"io"
	"strings"

	"vizlens/domain/dataset"
	"vizlens/internal"

	"github.com/xuri/excelize/v2"
)

// Reader reads the first sheet of an xlsx workbook into a Table
type Reader struct {
	log *internal.Logger
}

// NewReader creates an xlsx reader
func NewReader() *Reader {
	return &Reader{log: internal.DefaultLogger.Component("ExcelReader")}
}

// Read parses workbook content. The first sheet's first row becomes the
// header list; short rows are padded with empty cells to the header width.
func (r *Reader) Read(content io.Reader) (*dataset.Table, error) {
	f, err := excelize.OpenReader(content)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q must have headers and at least one row", sheets[0])
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := &dataset.Table{Headers: headers, Rows: make([]dataset.Row, 0, len(rows)-1)}
	for _, record := range rows[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := make(dataset.Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheets[0])
	}

	r.log.Debug("read %d rows, %d columns from sheet %q", len(table.Rows), len(headers), sheets[0])
	return table, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
