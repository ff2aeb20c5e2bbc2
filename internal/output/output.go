// Package output renders command results as tables, JSON, or the card
// detail report.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// cellReplacer flattens characters that would break the column layout.
var cellReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", "")

// Output controls how command results are written.
type Output struct {
	jsonMode bool
	w        io.Writer
}

// New creates an Output writing to w. With jsonMode set, data is written as
// indented JSON instead of a table.
func New(w io.Writer, jsonMode bool) *Output {
	return &Output{jsonMode: jsonMode, w: w}
}

// JSONMode reports whether data is rendered as JSON.
func (o *Output) JSONMode() bool {
	return o.jsonMode
}

// Print writes a table, or jsonData in JSON mode.
func (o *Output) Print(title string, headers []string, rows [][]string, jsonData any) error {
	if o.jsonMode {
		return o.JSON(jsonData)
	}
	if title != "" {
		fmt.Fprintf(o.w, "\n%s\n\n", title)
	}
	return o.Table(headers, rows)
}

// Table writes headers, a dash separator, and rows aligned in columns.
func (o *Output) Table(headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellReplacer.Replace(cell)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// JSON writes v as indented JSON.
func (o *Output) JSON(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Message writes a plain line, suppressed in JSON mode.
func (o *Output) Message(format string, args ...any) {
	if o.jsonMode {
		return
	}
	fmt.Fprintf(o.w, format+"\n", args...)
}

// Success writes a line prefixed with a check mark, suppressed in JSON mode.
func (o *Output) Success(format string, args ...any) {
	o.Message("✓ "+format, args...)
}
