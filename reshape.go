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

	"github.com/ctessum/sparse"
)

// FieldData holds the dense field arrays defined on a mesh. The vector
// arrays have shape (3, nx, ny, nz), component index first; the magnitude
// arrays have shape (nx, ny, nz) and are filled in by ComputeMagnitudes.
type FieldData struct {
	RealVelocity      *sparse.DenseArray
	ImaginaryVelocity *sparse.DenseArray
	RealW             *sparse.DenseArray
	ImaginaryW        *sparse.DenseArray

	VelocityMagnitude *sparse.DenseArray
	WMagnitude        *sparse.DenseArray
}

// Reshape consumes exactly one row per grid cell from rr, visiting cells
// in nested order (x outermost, z innermost), and scatters the field
// values into dense arrays. The input row order must already match this
// traversal order; each consumed row's coordinates are checked against
// the mesh coordinates of its assigned cell, so a file whose rows are in
// a different order fails instead of silently mis-shaping the data.
//
// rr must be a fresh reader over the same rows that produced m.
func Reshape(rr *RowReader, m *Mesh) (*FieldData, error) {
	nx, ny, nz := m.Nx(), m.Ny(), m.Nz()
	d := &FieldData{
		RealVelocity:      sparse.ZerosDense(3, nx, ny, nz),
		ImaginaryVelocity: sparse.ZerosDense(3, nx, ny, nz),
		RealW:             sparse.ZerosDense(3, nx, ny, nz),
		ImaginaryW:        sparse.ZerosDense(3, nx, ny, nz),
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				row, err := rr.Read()
				if err == io.EOF {
					return nil, fmt.Errorf("csv ended before cell (%d,%d,%d) could be "+
						"filled; the discovered grid size (%d,%d,%d) may be wrong",
						i, j, k, nx, ny, nz)
				}
				if err != nil {
					return nil, err
				}
				if row.X != m.X[i] || row.Y != m.Y[j] || row.Z != m.Z[k] {
					return nil, fmt.Errorf("row %d of csv has coordinates (%g,%g,%g) but "+
						"cell (%d,%d,%d) expects (%g,%g,%g); the csv row order does not "+
						"match the nested x,y,z traversal order of the grid",
						rr.Line(), row.X, row.Y, row.Z, i, j, k, m.X[i], m.Y[j], m.Z[k])
				}
				setVector(d.RealVelocity, row.velocityReal(), i, j, k)
				setVector(d.ImaginaryVelocity, row.velocityImag(), i, j, k)
				setVector(d.RealW, row.wReal(), i, j, k)
				setVector(d.ImaginaryW, row.wImag(), i, j, k)
			}
		}
	}
	if _, err := rr.Read(); err != io.EOF {
		return nil, fmt.Errorf("unread data remains in csv after all %d grid cells "+
			"were filled", nx*ny*nz)
	}
	return d, nil
}

// setVector writes the three components of vec into a at cell (i,j,k).
func setVector(a *sparse.DenseArray, vec [3]float64, i, j, k int) {
	for v, val := range vec {
		a.Set(val, v, i, j, k)
	}
}

// ComputeMagnitudes fills in the per-cell magnitude arrays for both
// vector fields.
func (d *FieldData) ComputeMagnitudes() {
	d.VelocityMagnitude = Magnitude(d.RealVelocity, d.ImaginaryVelocity)
	d.WMagnitude = Magnitude(d.RealW, d.ImaginaryW)
}
