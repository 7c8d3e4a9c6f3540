package dataset

import (
	"strings"
	"time"

	"vizlens/domain/core"
)

// Row is a single record keyed by column name. All cell values arrive as raw
// strings from the parsing boundary; consumers perform their own coercion.
type Row map[string]string

// Table is an immutable parsed dataset: an ordered header list plus rows.
// Transformations never mutate a Table, they produce new derived slices.
type Table struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"data"`
}

// Column returns the raw values of a single column in row order.
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no usable data
func (t *Table) IsEmpty() bool {
	return len(t.Headers) == 0 || len(t.Rows) == 0
}

// DatasetStatus represents the processing state of an uploaded dataset
type DatasetStatus string

const (
	StatusProcessing DatasetStatus = "processing"
	StatusReady      DatasetStatus = "ready"
	StatusFailed     DatasetStatus = "failed"
)

// Dataset represents a stored dataset with parsing metadata
type Dataset struct {
	ID core.DatasetID `json:"id"`

	// File information
	OriginalFilename string `json:"original_filename"`
	FileType         string `json:"file_type"` // "csv", "tsv", "json", "txt", "xlsx"
	FileSize         int64  `json:"file_size"`

	// Dataset statistics
	RecordCount int     `json:"record_count"`
	FieldCount  int     `json:"field_count"`
	MissingRate float64 `json:"missing_rate"`
	Source      string  `json:"source"` // "upload", "excel", "api"

	// Processing state
	Status       DatasetStatus `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`

	// Inferred schema, one entry per header
	Schema Schema `json:"schema,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsNull reports whether a raw cell value counts as missing. Empty and
// whitespace-only strings are null; parsers emit "" for absent cells.
func IsNull(value string) bool {
	return strings.TrimSpace(value) == ""
}
