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
	"sort"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// GridData pairs a mesh with the field arrays defined on it; it is the
// complete content of an output file.
type GridData struct {
	Mesh   *Mesh
	Fields *FieldData
}

// variableInfo describes one output variable.
type variableInfo struct {
	dims        []string
	description string
	units       string
	data        *sparse.DenseArray
}

// variables returns the output variables, keyed by name.
func (d *GridData) variables() map[string]variableInfo {
	vector := []string{"v", "x", "y", "z"}
	scalar := []string{"x", "y", "z"}
	return map[string]variableInfo{
		"real_velocity": {vector,
			"real part of the velocity vector field", "m s-1", d.Fields.RealVelocity},
		"imaginary_velocity": {vector,
			"imaginary part of the velocity vector field", "m s-1", d.Fields.ImaginaryVelocity},
		"total_velocity_magnitude": {scalar,
			"magnitude of the complex velocity vector field", "m s-1", d.Fields.VelocityMagnitude},
		"real_w": {vector,
			"real part of the w vector field", "m s-1", d.Fields.RealW},
		"imaginary_w": {vector,
			"imaginary part of the w vector field", "m s-1", d.Fields.ImaginaryW},
		"total_w_magnitude": {scalar,
			"magnitude of the complex w vector field", "m s-1", d.Fields.WMagnitude},
	}
}

// Write writes d to NetCDF file w. The x, y, and z dimensions carry
// coordinate variables holding the mesh node positions, so the file fully
// describes the rectilinear grid.
func (d *GridData) Write(w cdf.ReaderWriterAt) error {
	nx, ny, nz := d.Mesh.Nx(), d.Mesh.Ny(), d.Mesh.Nz()
	if nx == 0 || ny == 0 || nz == 0 {
		return fmt.Errorf("cannot write empty grid (%d,%d,%d): netcdf dimensions "+
			"must have nonzero length", nx, ny, nz)
	}

	h := cdf.NewHeader([]string{"v", "x", "y", "z"}, []int{3, nx, ny, nz})
	h.AddAttribute("", "comment", "GridConv complex vector field data file")
	h.AddAttribute("", "data_version", DataVersion)

	for _, axis := range []string{"x", "y", "z"} {
		h.AddVariable(axis, []string{axis}, []float64{0})
		h.AddAttribute(axis, "description", fmt.Sprintf("grid node %s coordinates", axis))
	}

	vars := d.variables()
	// Sort the names so they write in the same order every time.
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, name := range names {
		v := vars[name]
		h.AddVariable(name, v.dims, []float64{0})
		h.AddAttribute(name, "description", v.description)
		h.AddAttribute(name, "units", v.units)
	}
	h.Define()

	for _, err := range h.Check() {
		return fmt.Errorf("creating netcdf header: %v", err)
	}

	f, err := cdf.Create(w, h) // writes the header to w
	if err != nil {
		return fmt.Errorf("creating netcdf file: %v", err)
	}

	coords := map[string][]float64{"x": d.Mesh.X, "y": d.Mesh.Y, "z": d.Mesh.Z}
	for _, axis := range []string{"x", "y", "z"} {
		if err := writeNCF(f, axis, coords[axis]); err != nil {
			return fmt.Errorf("writing %s coordinates to netcdf file: %v", axis, err)
		}
	}
	for _, name := range names {
		if err := writeNCF(f, name, vars[name].data.Elements); err != nil {
			return fmt.Errorf("writing variable %s to netcdf file: %v", name, err)
		}
	}
	return nil
}

// writeNCF writes data to variable v of netcdf file f, checking that the
// data length matches the variable dimensions.
func writeNCF(f *cdf.File, v string, data []float64) error {
	end := f.Header.Lengths(v)
	n := 1
	for _, l := range end {
		n *= l
	}
	if len(data) != n {
		return fmt.Errorf("dims are %d but array length is %d", n, len(data))
	}
	start := make([]int, len(end))
	_, err := f.Writer(v, start, end).Write(data)
	return err
}
