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
	"fmt"
	"io"
)

// DiscoverMesh scans all rows once and returns the rectilinear mesh
// implied by them: the distinct coordinate values along each axis, in
// order of first appearance. Coordinate comparison is exact; values that
// differ in any bit are distinct grid lines.
//
// The membership test is linear in the number of distinct values seen so
// far, which is fine for the one-time pass over moderately sized grids
// this is used for.
func DiscoverMesh(rr *RowReader) (*Mesh, error) {
	m := new(Mesh)
	for {
		row, err := rr.Read()
		if err == io.EOF {
			return m, nil
		}
		if err != nil {
			return nil, fmt.Errorf("discovering mesh spans: %v", err)
		}
		m.X = appendDistinct(m.X, row.X)
		m.Y = appendDistinct(m.Y, row.Y)
		m.Z = appendDistinct(m.Z, row.Z)
	}
}

// appendDistinct appends v to vals if it is not already present.
func appendDistinct(vals []float64, v float64) []float64 {
	for _, have := range vals {
		if have == v {
			return vals
		}
	}
	return append(vals, v)
}
