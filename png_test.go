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

package imgmeta

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"
)

// testPNG returns a small encoded PNG.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	draw.Draw(img, img.Bounds(),
		image.NewUniform(color.RGBA{B: 255, A: 255}), image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestScanPNG(t *testing.T) {
	chunks, err := ScanPNG(testPNG(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) < 2 {
		t.Fatalf("only %d chunks found", len(chunks))
	}
	if chunks[0].Type != "IHDR" {
		t.Errorf("first chunk = %q, want IHDR", chunks[0].Type)
	}
	if last := chunks[len(chunks)-1]; last.Type != "IEND" {
		t.Errorf("last chunk = %q, want IEND", last.Type)
	}
}

func TestInsertPNGText(t *testing.T) {
	data, err := InsertPNGText(testPNG(t), "Software", "imgmeta")
	if err != nil {
		t.Fatal(err)
	}

	chunks, err := ScanPNG(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) < 2 || chunks[1].Type != "tEXt" {
		t.Fatal("tEXt chunk not inserted after IHDR")
	}

	// the CRC must be correct, otherwise decoders reject the file
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("PNG with tEXt chunk no longer decodes: %v", err)
	}
}

func TestCleanPNG(t *testing.T) {
	data, err := InsertPNGText(testPNG(t), "Comment", "secret")
	if err != nil {
		t.Fatal(err)
	}

	cleaned, err := CleanPNG(data)
	if err != nil {
		t.Fatal(err)
	}
	chunks, err := ScanPNG(cleaned)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range chunks {
		if pngMetadataChunks[c.Type] {
			t.Errorf("metadata chunk %q survived cleaning", c.Type)
		}
	}
	if bytes.Contains(cleaned, []byte("secret")) {
		t.Error("text payload survived cleaning")
	}

	img, err := png.Decode(bytes.NewReader(cleaned))
	if err != nil {
		t.Fatalf("cleaned PNG no longer decodes: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("bounds = %v, want 16x16", b)
	}
}

func TestCleanPNGErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte{0x89, 0x50}},
		{"bad signature", bytes.Repeat([]byte{0x00}, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CleanPNG(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}
