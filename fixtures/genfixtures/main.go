// seehuhn.de/go/imgmeta - image metadata inspection and cleaning
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genfixtures creates the minimal test images for the
// end-to-end test suite. The files are written next to the
// executable, independent of the current working directory, so that
// repeated runs always target the same place.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"seehuhn.de/go/imgmeta/fixtures"
)

func main() {
	exe, err := os.Executable()
	if err != nil {
		fail(err)
	}
	if err := run(filepath.Dir(exe), os.Stdout); err != nil {
		fail(err)
	}
}

// run writes the simple fixtures into dir and reports progress on w.
func run(dir string, w io.Writer) error {
	fmt.Fprintln(w, "Generating test fixtures...")
	for _, fx := range fixtures.All["simple"] {
		path := filepath.Join(dir, fx.Filename())
		if err := fx.WriteFile(path); err != nil {
			return err
		}
		fmt.Fprintf(w, "Created: %s\n", path)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Note: These are minimal images without EXIF data.")
	fmt.Fprintln(w, "For comprehensive EXIF testing, add real camera images to this directory.")
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
