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
	"math"
	"reflect"
	"testing"

	"github.com/ctessum/sparse"
)

func arrayCompare(have, want *sparse.DenseArray, tolerance float64, name string, t *testing.T) {
	t.Helper()
	if !reflect.DeepEqual(want.Shape, have.Shape) {
		t.Errorf("%s: want shape %v but have shape %v", name, want.Shape, have.Shape)
		return
	}
	for i, wantv := range want.Elements {
		havev := have.Elements[i]
		if math.IsNaN(havev) || math.IsInf(havev, 0) {
			t.Errorf("%s, element %d: is %g", name, i, havev)
		}
		if math.Abs(havev-wantv) > tolerance {
			t.Errorf("%s, element %d: want %g but have %g", name, i, wantv, havev)
		}
	}
}

func TestMagnitudeSingleCell(t *testing.T) {
	tests := []struct {
		name   string
		re, im [3]float64
		want   float64
	}{
		{
			name: "unit real x",
			re:   [3]float64{1, 0, 0},
			want: 1,
		},
		{
			name: "all ones",
			re:   [3]float64{1, 1, 1},
			im:   [3]float64{1, 1, 1},
			want: math.Sqrt(6),
		},
		{
			name: "zero",
			want: 0,
		},
		{
			name: "mixed",
			re:   [3]float64{3, 0, 0},
			im:   [3]float64{0, 4, 0},
			want: 5,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			re := sparse.ZerosDense(3, 1, 1, 1)
			im := sparse.ZerosDense(3, 1, 1, 1)
			for v := 0; v < 3; v++ {
				re.Set(test.re[v], v, 0, 0, 0)
				im.Set(test.im[v], v, 0, 0, 0)
			}
			out := Magnitude(re, im)
			want := sparse.ZerosDense(1, 1, 1)
			want.Set(test.want, 0, 0, 0)
			arrayCompare(out, want, 1.0e-12, test.name, t)
		})
	}
}

func TestMagnitude(t *testing.T) {
	const tolerance = 1.0e-12
	re := sparse.ZerosDense(3, 2, 3, 2)
	im := sparse.ZerosDense(3, 2, 3, 2)
	for i := range re.Elements {
		re.Elements[i] = float64(i) * 0.25
		im.Elements[i] = float64(len(im.Elements)-i) * 0.5
	}
	reOrig := re.Copy()
	imOrig := im.Copy()

	out := Magnitude(re, im)

	// Per-cell reference computation.
	want := sparse.ZerosDense(2, 3, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 2; k++ {
				var m2 float64
				for v := 0; v < 3; v++ {
					m2 += re.Get(v, i, j, k) * re.Get(v, i, j, k)
					m2 += im.Get(v, i, j, k) * im.Get(v, i, j, k)
				}
				want.Set(math.Sqrt(m2), i, j, k)
			}
		}
	}
	arrayCompare(out, want, tolerance, "magnitude", t)

	// The inputs must not be modified.
	arrayCompare(re, reOrig, 0, "real input", t)
	arrayCompare(im, imOrig, 0, "imaginary input", t)
}

func TestMagnitudeShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("want a panic for mismatched shapes")
		}
	}()
	Magnitude(sparse.ZerosDense(3, 1, 1, 1), sparse.ZerosDense(3, 2, 1, 1))
}
