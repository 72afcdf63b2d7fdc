/*
Copyright © 2026 the GridConv authors.
This file is part of GridConv.

GridConv is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GridConv is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GridConv.  If not, see <http://www.gnu.org/licenses/>.
*/

package gridconv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// rowColumns lists the required CSV columns: the grid node coordinates
// followed by the real and imaginary components of the velocity and w
// vector fields.
var rowColumns = []string{
	"x", "y", "z",
	"u1r", "u2r", "u3r", "u1i", "u2i", "u3i",
	"w1r", "w2r", "w3r", "w1i", "w2i", "w3i",
}

// SampleRow is one record of the input CSV: a grid node location and the
// twelve field values sampled there.
type SampleRow struct {
	X, Y, Z float64 // node coordinates

	// Real and imaginary velocity components.
	U1r, U2r, U3r float64
	U1i, U2i, U3i float64

	// Real and imaginary w components.
	W1r, W2r, W3r float64
	W1i, W2i, W3i float64
}

// velocityReal returns the three real velocity components.
func (r *SampleRow) velocityReal() [3]float64 { return [3]float64{r.U1r, r.U2r, r.U3r} }

// velocityImag returns the three imaginary velocity components.
func (r *SampleRow) velocityImag() [3]float64 { return [3]float64{r.U1i, r.U2i, r.U3i} }

// wReal returns the three real w components.
func (r *SampleRow) wReal() [3]float64 { return [3]float64{r.W1r, r.W2r, r.W3r} }

// wImag returns the three imaginary w components.
func (r *SampleRow) wImag() [3]float64 { return [3]float64{r.W1i, r.W2i, r.W3i} }

// A RowReader decodes SampleRows from a CSV stream. The first record of
// the stream must be a header naming all of the columns in rowColumns;
// columns may appear in any order, and extra columns are an error.
type RowReader struct {
	r *csv.Reader

	// cols maps each required column name to its position in a record.
	// It is built from the header when the first row is read.
	cols map[string]int

	line int // 1-based line number of the most recently read record
}

// NewRowReader returns a RowReader decoding rows from r.
func NewRowReader(r io.Reader) *RowReader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	return &RowReader{r: cr}
}

// Line returns the 1-based line number of the most recently read record,
// counting the header line.
func (r *RowReader) Line() int { return r.line }

// readHeader consumes the header record and resolves column positions.
func (r *RowReader) readHeader() error {
	rec, err := r.r.Read()
	r.line++
	if err == io.EOF {
		return fmt.Errorf("csv is missing its header row")
	}
	if err != nil {
		return fmt.Errorf("reading csv header: %v", err)
	}
	if len(rec) != len(rowColumns) {
		return fmt.Errorf("csv header has %d columns but %d are required (%s)",
			len(rec), len(rowColumns), strings.Join(rowColumns, ","))
	}
	r.cols = make(map[string]int)
	for i, name := range rec {
		r.cols[strings.TrimSpace(name)] = i
	}
	for _, name := range rowColumns {
		if _, ok := r.cols[name]; !ok {
			return fmt.Errorf("csv header is missing required column %q", name)
		}
	}
	return nil
}

// Read returns the next sample row. It returns io.EOF when the input is
// exhausted, and a line-number-qualified error if a record cannot be
// decoded.
func (r *RowReader) Read() (SampleRow, error) {
	var row SampleRow
	if r.cols == nil {
		if err := r.readHeader(); err != nil {
			return row, err
		}
	}
	rec, err := r.r.Read()
	r.line++
	if err == io.EOF {
		return row, io.EOF
	}
	if err != nil {
		return row, fmt.Errorf("failed to read row %d of csv: %v", r.line, err)
	}

	fields := []*float64{
		&row.X, &row.Y, &row.Z,
		&row.U1r, &row.U2r, &row.U3r, &row.U1i, &row.U2i, &row.U3i,
		&row.W1r, &row.W2r, &row.W3r, &row.W1i, &row.W2i, &row.W3i,
	}
	for i, name := range rowColumns {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[r.cols[name]]), 64)
		if err != nil {
			return row, fmt.Errorf("failed to parse row %d of csv: column %q: %v",
				r.line, name, err)
		}
		*fields[i] = v
	}
	return row, nil
}
