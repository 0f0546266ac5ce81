// Package utils holds small helpers shared by the server and the CLI: CSV
// export and identifier generation.
package utils

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ettle/strcase"
)

// Column describes one exported CSV column.
type Column[T any] struct {
	// Key is the snake_case field name, e.g. "total_orders".
	Key string
	// Label overrides the header derived from Key.
	Label string
	Value func(T) string
}

// Header returns Label, or Key in title case ("total_orders" becomes
// "Total Orders").
func (c Column[T]) Header() string {
	if c.Label != "" {
		return c.Label
	}
	return strcase.ToCase(c.Key, strcase.TitleCase, ' ')
}

// WriteCSV writes a header row followed by one row per item. Every field is
// quoted and embedded quotes are doubled; rows end in "\n".
//
// Go Learning Note — encoding/csv:
// csv.Writer only quotes fields that need it, and exports here quote every
// field so spreadsheet tools never reinterpret phone numbers or ids. The
// format is simple enough that a bufio.Writer does the job.
func WriteCSV[T any](w io.Writer, items []T, columns []Column[T]) error {
	bw := bufio.NewWriter(w)

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header()
	}
	writeRow(bw, headers)

	fields := make([]string, len(columns))
	for _, item := range items {
		for i, c := range columns {
			fields[i] = c.Value(item)
		}
		writeRow(bw, fields)
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteByte('\n')
}

// FormatInt and FormatFloat render numbers without locale grouping.
func FormatInt(n int) string { return strconv.Itoa(n) }

func FormatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
