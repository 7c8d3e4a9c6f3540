// Package dataset parses uploaded tabular files into Tables and owns the
// session that ties a loaded dataset to its derived state.
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"vizlens/domain/dataset"
	"vizlens/internal"
	"vizlens/internal/errors"
)

var parserLog = internal.DefaultLogger.Component("Parser")

// supportedTypes are the file extensions the parser accepts. xlsx is routed
// to the excel adapter, not parsed here.
var supportedTypes = map[string]bool{
	"csv": true, "tsv": true, "json": true, "txt": true, "xlsx": true,
}

// DetectFileType resolves a filename to a supported parser type
func DetectFileType(filename string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !supportedTypes[ext] {
		return "", errors.ParseError(fmt.Sprintf("unsupported file type: .%s", ext))
	}
	return ext, nil
}

// Parse routes content to the parser for the detected file type
func Parse(filename string, content []byte) (*dataset.Table, string, error) {
	fileType, err := DetectFileType(filename)
	if err != nil {
		return nil, "", err
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, "", errors.ParseError("file is empty")
	}

	var table *dataset.Table
	switch fileType {
	case "csv":
		table, err = ParseCSV(content)
	case "tsv":
		table, err = ParseTSV(content)
	case "json":
		table, err = ParseJSON(content)
	case "txt":
		table, err = ParseTXT(content)
	case "xlsx":
		return nil, "", errors.ParseError("xlsx files require the excel reader")
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to parse %s", filename)
	}
	return table, fileType, nil
}

// ParseCSV parses comma-separated content with quoted-field support. Rows
// with the wrong column count are padded or truncated to the header width;
// rows the reader cannot parse at all are skipped with a warning.
func ParseCSV(content []byte) (*dataset.Table, error) {
	return parseDelimited(content, ',')
}

// ParseTSV parses tab-separated content
func ParseTSV(content []byte) (*dataset.Table, error) {
	return parseDelimited(content, '\t')
}

func parseDelimited(content []byte, comma rune) (*dataset.Table, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headerRecord, err := reader.Read()
	if err != nil {
		return nil, errors.ParseError("file must have headers and at least one row")
	}
	headers := make([]string, len(headerRecord))
	for i, h := range headerRecord {
		headers[i] = strings.TrimSpace(h)
	}

	rows := []dataset.Row{}
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			parserLog.Warn("row %d skipped due to parsing error: %v", line, err)
			continue
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
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
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.ParseError("no valid rows found")
	}
	return &dataset.Table{Headers: headers, Rows: rows}, nil
}

// ParseJSON parses an array of objects. Headers come from the first object in
// its own key order; later objects are normalized to the same keys, missing
// keys become empty cells, and every value is stringified.
func ParseJSON(content []byte) (*dataset.Table, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, errors.ParseError(fmt.Sprintf("JSON must be an array of objects: %v", err))
	}
	if len(raw) == 0 {
		return nil, errors.ParseError("JSON array is empty")
	}

	headers, err := firstObjectKeys(content)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, errors.ParseError("JSON objects have no properties")
	}

	rows := make([]dataset.Row, len(raw))
	for i, obj := range raw {
		row := make(dataset.Row, len(headers))
		for _, header := range headers {
			row[header] = stringifyJSONValue(obj[header])
		}
		rows[i] = row
	}
	return &dataset.Table{Headers: headers, Rows: rows}, nil
}

// firstObjectKeys scans the token stream for the first object's key order,
// which json.Unmarshal into a map would lose
func firstObjectKeys(content []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	// consume '[' and '{'
	for i := 0; i < 2; i++ {
		if _, err := dec.Token(); err != nil {
			return nil, errors.ParseError("malformed JSON array")
		}
	}

	keys := []string{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.ParseError("malformed JSON object")
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return keys, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.ParseError("malformed JSON object key")
		}
		keys = append(keys, key)

		var discard json.RawMessage
		if err := dec.Decode(&discard); err != nil {
			return nil, errors.ParseError("malformed JSON value")
		}
	}
}

func stringifyJSONValue(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	// numbers, booleans, nested structures keep their literal form
	return string(trimmed)
}

// ParseTXT sniffs the delimiter of plain-text content. Tab beats comma; when
// neither appears the lines become a line_number/text table.
func ParseTXT(content []byte) (*dataset.Table, error) {
	lines := nonEmptyLines(content)
	if len(lines) == 0 {
		return nil, errors.ParseError("TXT file is empty")
	}

	if strings.Contains(lines[0], "\t") {
		return ParseTSV(content)
	}
	if strings.Contains(lines[0], ",") {
		return ParseCSV(content)
	}

	rows := make([]dataset.Row, len(lines))
	for i, line := range lines {
		rows[i] = dataset.Row{
			"line_number": strconv.Itoa(i + 1),
			"text":        line,
		}
	}
	return &dataset.Table{Headers: []string{"line_number", "text"}, Rows: rows}, nil
}

func nonEmptyLines(content []byte) []string {
	lines := []string{}
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
	}
	return lines
}

// ValidateParsed checks a parsed table for structural problems. Duplicate or
// empty headers are warnings; missing headers or rows are errors.
func ValidateParsed(table *dataset.Table) (errs, warnings []string) {
	errs, warnings = []string{}, []string{}

	if len(table.Headers) == 0 {
		errs = append(errs, "no headers found")
	}
	if len(table.Rows) == 0 {
		errs = append(errs, "no data rows found")
	}

	seen := make(map[string]bool, len(table.Headers))
	for _, h := range table.Headers {
		if seen[h] {
			warnings = append(warnings, "duplicate column headers detected")
			break
		}
		seen[h] = true
	}
	for _, h := range table.Headers {
		if strings.TrimSpace(h) == "" {
			warnings = append(warnings, "empty or whitespace-only column headers found")
			break
		}
	}
	return errs, warnings
}
