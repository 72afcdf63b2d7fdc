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

// Package gridconv converts CSV files of sampled complex-valued 3D vector
// field data into rectilinear-grid NetCDF files for scientific visualization.
//
// The input is a flat list of rows, each holding the (x,y,z) coordinates of a
// grid node and the real and imaginary components of two vector fields
// ("velocity" and "w") at that node. The grid topology is not declared
// anywhere in the file; it is reconstructed by collecting the distinct
// coordinate values along each axis in order of first appearance, and the
// rows are then reshaped into dense arrays by consuming them in the nested
// x-major traversal order of the reconstructed grid.
package gridconv

// Version gives the version number.
const Version = "1.1.0"

// DataVersion gives the version of the output data format. It is stored
// in output files and checked by readers; it only needs to change when
// the file layout changes.
const DataVersion = "1.1"

// Mesh holds the node coordinates of a rectilinear grid, one list of
// distinct values per axis, in order of first appearance in the input
// file. The coordinate lists are not necessarily sorted or uniformly
// spaced; downstream code depends on the first-appearance ordering and
// must not reorder them.
type Mesh struct {
	X, Y, Z []float64
}

// Nx returns the number of grid nodes in the x direction.
func (m *Mesh) Nx() int { return len(m.X) }

// Ny returns the number of grid nodes in the y direction.
func (m *Mesh) Ny() int { return len(m.Y) }

// Nz returns the number of grid nodes in the z direction.
func (m *Mesh) Nz() int { return len(m.Z) }

// Cells returns the total number of grid cells.
func (m *Mesh) Cells() int { return m.Nx() * m.Ny() * m.Nz() }
