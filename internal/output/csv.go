// Package output writes normalized tables to CSV.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is an ordered collection of rows under a fixed header. Rows keep the
// order in which they were appended.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable creates an empty table with the given header.
func NewTable(header []string) *Table {
	return &Table{Header: header}
}

// Append adds one row to the end of the table.
func (t *Table) Append(row []string) {
	t.Rows = append(t.Rows, row)
}

// Count returns the number of data rows (the header is not counted).
func (t *Table) Count() int {
	return len(t.Rows)
}

// Write serializes the table to w, header first. An empty table still
// produces the header line.
func Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to path, overwriting any existing file.
func WriteFile(path string, t *Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(file, t); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
