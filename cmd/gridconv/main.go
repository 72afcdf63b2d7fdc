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

// Command gridconv is a command-line interface for the GridConv
// sampled-field-data converter.
package main

import (
	"fmt"
	"os"

	"github.com/spectralmodel/gridconv/gridconvutil"
)

func main() {
	if err := gridconvutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
