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

// Command gencorpus writes the full fixture corpus: all raster
// fixtures, metadata-bearing variants, a PDF, and a manifest
// describing every file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/imgmeta"
	"seehuhn.de/go/imgmeta/fixtures"
)

var outDir = flag.String("dir", filepath.Join("testdata", "fixtures"),
	"output `directory` for the corpus")

func main() {
	flag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var written []string

	for _, category := range slices.Sorted(maps.Keys(fixtures.All)) {
		for _, fx := range fixtures.All[category] {
			path := filepath.Join(dir, fx.Filename())
			if err := fx.WriteFile(path); err != nil {
				return fmt.Errorf("%s: %w", fx.Filename(), err)
			}
			written = append(written, path)
		}
	}

	for _, gen := range []func(string) (string, error){
		makeEXIFJPEG,
		makeTextPNG,
		makePDF,
	} {
		path, err := gen(dir)
		if err != nil {
			return err
		}
		written = append(written, path)
	}

	return writeManifest(dir, written)
}

// makeEXIFJPEG writes a JPEG with known EXIF fields, including a GPS
// position, for tests that verify metadata removal end to end.
func makeEXIFJPEG(dir string) (string, error) {
	base, err := fixtures.All["simple"][0].Bytes()
	if err != nil {
		return "", err
	}
	data, err := fixtures.WithEXIF(base, fixtures.EXIF{
		Make:     "Acme",
		Model:    "Acme One",
		Software: "gencorpus",
		DateTime: "2024:01:15 10:30:00",
		GPS:      &imgmeta.Coordinates{Lat: 37.7749, Lon: -122.4194},
	})
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "exif.jpg")
	return path, fixtures.WriteBytes(path, data)
}

// makeTextPNG writes a PNG carrying a tEXt metadata chunk.
func makeTextPNG(dir string) (string, error) {
	base, err := fixtures.All["simple"][1].Bytes()
	if err != nil {
		return "", err
	}
	data, err := fixtures.WithText(base, "Comment", "imgmeta test fixture")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "text.png")
	return path, fixtures.WriteBytes(path, data)
}

func makePDF(dir string) (string, error) {
	path := filepath.Join(dir, "sample.pdf")
	return path, fixtures.WritePDF(path, 200, 150)
}

// writeManifest inspects every written file and stores the summaries
// as indented JSON, so that the test suite can assert against known
// properties without decoding the fixtures itself.
func writeManifest(dir string, paths []string) error {
	var out struct {
		Fixtures []*imgmeta.Summary `json:"fixtures"`
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out.Fixtures = append(out.Fixtures, imgmeta.Inspect(filepath.Base(path), data))
	}

	f, err := os.Create(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
