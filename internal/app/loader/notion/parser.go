// Package notion parses Notion CSV exports into loosely-typed rows.
// Pure functions: reader in, string-valued rows out. All type coercion and
// vocabulary mapping happens later, in the normalize package.
package notion

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// table holds the header row shared by every Row of one file.
type table struct {
	headers []string
	lowered []string
}

// Row is one data row keyed by the file's header row. Values are raw strings
// exactly as exported, minus surrounding whitespace.
type Row struct {
	t      *table
	values []string
}

// ParseRows reads a delimited export with a header row first. Blank lines are
// skipped. A field wrapped in double quotes may contain commas.
//
// Known limitations of the export format, preserved deliberately: doubled
// quotes inside a quoted field are not unescaped, and a quoted field cannot
// span lines. The exports never produce either shape.
func ParseRows(r io.Reader) ([]Row, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var t *table
	var rows []Row

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitLine(line)
		if t == nil {
			t = &table{headers: fields, lowered: lowerAll(fields)}
			continue
		}
		rows = append(rows, Row{t: t, values: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan rows: %w", err)
	}

	return rows, nil
}

// splitLine splits one CSV line on commas outside double quotes. Quote
// characters toggle quoting and are dropped from the field value.
func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}

// Get returns the value of the first column whose header contains substr,
// case-insensitively, in header order. Missing columns and short rows yield
// the empty string. The substring match is a deliberate tolerance for the
// exports' inconsistent header naming.
func (r Row) Get(substr string) string {
	if r.t == nil {
		return ""
	}
	needle := strings.ToLower(substr)
	for i, h := range r.t.lowered {
		if strings.Contains(h, needle) {
			return r.Value(i)
		}
	}
	return ""
}

// Headers returns the file's header row.
func (r Row) Headers() []string {
	if r.t == nil {
		return nil
	}
	return r.t.headers
}

// Value returns the value at column index i, or "" when the row is short.
func (r Row) Value(i int) string {
	if i < 0 || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}
