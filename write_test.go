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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

func TestWriteEmptyGrid(t *testing.T) {
	d := &GridData{Mesh: new(Mesh), Fields: emptyFields()}
	p := filepath.Join(t.TempDir(), "out.ncf")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	err = d.Write(f)
	if err == nil {
		t.Fatal("want an error for an empty grid")
	}
	if !strings.Contains(err.Error(), "empty grid") {
		t.Errorf("error %q should mention the empty grid", err)
	}
}

func emptyFields() *FieldData {
	d := &FieldData{
		RealVelocity:      sparse.ZerosDense(3, 0, 0, 0),
		ImaginaryVelocity: sparse.ZerosDense(3, 0, 0, 0),
		RealW:             sparse.ZerosDense(3, 0, 0, 0),
		ImaginaryW:        sparse.ZerosDense(3, 0, 0, 0),
	}
	d.ComputeMagnitudes()
	return d
}

func TestWriteMetadata(t *testing.T) {
	doc := gridCSV(gridRows([]float64{1}, []float64{2}, []float64{3}))
	mesh, data, err := discoverAndReshape(t, doc)
	if err != nil {
		t.Fatal(err)
	}
	data.ComputeMagnitudes()

	p := filepath.Join(t.TempDir(), "out.ncf")
	ff, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	d := &GridData{Mesh: mesh, Fields: data}
	if err := d.Write(ff); err != nil {
		t.Fatal(err)
	}
	if err := ff.Close(); err != nil {
		t.Fatal(err)
	}

	fr, err := os.Open(p)
	if err != nil {
		t.Fatal(err)
	}
	defer fr.Close()
	f, err := cdf.Open(fr)
	if err != nil {
		t.Fatal(err)
	}

	for name, v := range d.variables() {
		if have := f.Header.GetAttribute(name, "description").(string); have != v.description {
			t.Errorf("%s description: want %q but have %q", name, v.description, have)
		}
		if have := f.Header.GetAttribute(name, "units").(string); have != v.units {
			t.Errorf("%s units: want %q but have %q", name, v.units, have)
		}
	}
}
