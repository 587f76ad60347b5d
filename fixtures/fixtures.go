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

// Package fixtures defines the deterministic test images used by the
// end-to-end test suite, and the machinery to render and encode them.
package fixtures

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/tiff"
)

// Format selects the encoding of a fixture file.
type Format int

const (
	FormatJPEG Format = iota
	FormatPNG
	FormatTIFF
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatTIFF:
		return "tif"
	default:
		return "jpg"
	}
}

// DefaultJPEGQuality is the JPEG quality used when a fixture does not
// specify one.
const DefaultJPEGQuality = 95

// Fixture describes a single test image.
type Fixture struct {
	Name    string // lowercase a-z and _ only
	Width   int    // canvas width in pixels
	Height  int    // canvas height in pixels
	Format  Format
	Quality int              // JPEG quality (0 means DefaultJPEGQuality)
	Paint   func(draw.Image) // fills the canvas
}

// Filename returns the file name of the fixture, derived from its
// name and format.
func (fx Fixture) Filename() string {
	return fx.Name + "." + fx.Format.Ext()
}

// Render builds the in-memory raster for the fixture.
func (fx Fixture) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fx.Width, fx.Height))
	if fx.Paint != nil {
		fx.Paint(img)
	}
	return img
}

// Encode renders the fixture and writes the encoded image to w.
// The encoders used here are deterministic, so repeated encodings of
// the same fixture are byte-identical.
func (fx Fixture) Encode(w io.Writer) error {
	img := fx.Render()
	switch fx.Format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, nil)
	case FormatJPEG:
		q := fx.Quality
		if q == 0 {
			q = DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	default:
		return fmt.Errorf("unknown fixture format %d", fx.Format)
	}
}

// Bytes returns the encoded fixture.
func (fx Fixture) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := fx.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes the fixture to the given path, overwriting any
// existing file. The image is encoded into a temporary file first and
// renamed into place, so a failed write never leaves a truncated or
// corrupted fixture behind.
func (fx Fixture) WriteFile(path string) error {
	data, err := fx.Bytes()
	if err != nil {
		return err
	}
	return WriteBytes(path, data)
}

// WriteBytes atomically replaces the file at path with the given
// contents.
func WriteBytes(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op once the rename has happened

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Uniform returns a painter that fills the whole canvas with a single
// color.
func Uniform(c color.Color) func(draw.Image) {
	return func(img draw.Image) {
		draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	}
}
