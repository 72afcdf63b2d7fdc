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
	"math"
	"reflect"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// Magnitude returns the per-cell magnitude of a complex vector field
// given its real and imaginary parts, which must both have shape
// (3, nx, ny, nz). The magnitude at each cell is the Euclidean norm of
// the 6-vector formed by the three real and three imaginary components
// there. Neither input is modified.
func Magnitude(re, im *sparse.DenseArray) *sparse.DenseArray {
	if !reflect.DeepEqual(re.Shape, im.Shape) {
		panic(fmt.Errorf("real shape %v does not match imaginary shape %v",
			re.Shape, im.Shape))
	}
	nv := re.Shape[0]
	out := sparse.ZerosDense(re.Shape[1:]...)
	n := len(out.Elements)

	// Accumulate the squared component magnitudes. Each component is a
	// contiguous (nx,ny,nz) block of the flat element slice because the
	// component index is the outermost dimension.
	tmp := make([]float64, n)
	for v := 0; v < nv; v++ {
		for _, part := range []*sparse.DenseArray{re, im} {
			comp := part.Elements[v*n : (v+1)*n]
			floats.MulTo(tmp, comp, comp)
			floats.Add(out.Elements, tmp)
		}
	}
	for i, m2 := range out.Elements {
		out.Elements[i] = math.Sqrt(m2)
	}
	return out
}
