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

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// walkFunc adapts a function to the exif.Walker interface.
type walkFunc func(name exif.FieldName, tag *tiff.Tag) error

func (f walkFunc) Walk(name exif.FieldName, tag *tiff.Tag) error {
	return f(name, tag)
}

// ExtractEXIF parses the EXIF block of a JPEG or TIFF file and
// returns all fields as a tag-name to display-value map, together
// with the GPS position in decimal degrees if one is recorded.
// Files without EXIF data return an error.
func ExtractEXIF(data []byte) (map[string]string, *Coordinates, error) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}

	fields := make(map[string]string)
	x.Walk(walkFunc(func(name exif.FieldName, tag *tiff.Tag) error {
		fields[string(name)] = tagValue(tag)
		return nil
	}))

	// LatLong applies the N/S and E/W reference fields, so south and
	// west coordinates come back negative.
	var gps *Coordinates
	if lat, lon, err := x.LatLong(); err == nil {
		gps = &Coordinates{Lat: lat, Lon: lon}
	}

	return fields, gps, nil
}

func tagValue(tag *tiff.Tag) string {
	if tag.Type == tiff.DTAscii {
		if s, err := tag.StringVal(); err == nil {
			return s
		}
	}
	return tag.String()
}
