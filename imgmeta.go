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

// Package imgmeta inspects and removes metadata embedded in image files.
//
// Cleaning operates on the container level: application segments, ancillary
// chunks and extension blocks are dropped without re-encoding the pixel
// data, so the image quality is never affected.
package imgmeta

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Coordinates is a GPS position in decimal degrees.
// South latitudes and west longitudes are negative.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Summary describes a single file and the metadata found in it.
type Summary struct {
	Name   string            `json:"name,omitempty"`
	Size   int64             `json:"size,omitempty"`
	MIME   string            `json:"-"`
	Width  int               `json:"width,omitempty"`
	Height int               `json:"height,omitempty"`
	EXIF   map[string]string `json:"exif_data,omitempty"`
	GPS    *Coordinates      `json:"gps_coords,omitempty"`
	SHA256 string            `json:"sha256_hash,omitempty"`
}

// Inspect examines file contents and collects everything the cleaner
// knows how to find: MIME type, pixel dimensions, EXIF fields, GPS
// coordinates and the SHA-256 of the raw bytes.
//
// Unknown or partially damaged files still produce a Summary; fields
// that cannot be determined are left at their zero values.
func Inspect(name string, data []byte) *Summary {
	sum := sha256.Sum256(data)
	s := &Summary{
		Name:   name,
		Size:   int64(len(data)),
		MIME:   DetectMIME(name, "", data),
		SHA256: hex.EncodeToString(sum[:]),
	}

	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		s.Width = cfg.Width
		s.Height = cfg.Height
	}

	if fields, gps, err := ExtractEXIF(data); err == nil {
		s.EXIF = fields
		s.GPS = gps
	}

	return s
}
