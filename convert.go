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
	"bufio"
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/sirupsen/logrus"
)

// Convert reads the sampled field data in csvPath and writes it to
// outputPath as a rectilinear-grid NetCDF file.
//
// The CSV is scanned twice: once to discover the mesh spans, and a second
// time to reshape the rows into dense arrays. Rescanning trades a second
// sequential read for not having to hold the raw rows in memory, and the
// array shapes must be fully known before allocation anyway.
func Convert(csvPath, outputPath string) error {
	logrus.Info("Reading mesh spans from input data...")
	mesh, err := discoverMeshFile(csvPath)
	if err != nil {
		return fmt.Errorf("gridconv: reading span and mesh information from csv %s "+
			"on initial pass: %v", csvPath, err)
	}
	logrus.Infof("mesh size is (%d,%d,%d)", mesh.Nx(), mesh.Ny(), mesh.Nz())

	logrus.Info("Reshaping field data...")
	data, err := reshapeFile(csvPath, mesh)
	if err != nil {
		return fmt.Errorf("gridconv: reshaping field data from csv %s: %v", csvPath, err)
	}
	data.ComputeMagnitudes()

	logrus.Infof("Writing %s...", outputPath)
	if err := writeGridFile(outputPath, &GridData{Mesh: mesh, Fields: data}); err != nil {
		return fmt.Errorf("gridconv: writing output grid file: %v", err)
	}
	return nil
}

// discoverMeshFile runs mesh span discovery over the named CSV file.
func discoverMeshFile(csvPath string) (*Mesh, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file at %s: %v", csvPath, err)
	}
	defer f.Close()
	return DiscoverMesh(NewRowReader(bufio.NewReader(f)))
}

// reshapeFile re-reads the named CSV file and reshapes its rows onto mesh.
func reshapeFile(csvPath string, mesh *Mesh) (*FieldData, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file at %s: %v", csvPath, err)
	}
	defer f.Close()
	return Reshape(NewRowReader(bufio.NewReader(f)), mesh)
}

// writeGridFile creates the output file and writes d to it.
func writeGridFile(outputPath string, d *GridData) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file at %s: %v", outputPath, err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := cdf.UpdateNumRecs(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
