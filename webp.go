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
	"encoding/binary"
	"errors"
)

var errWebPInvalid = errors.New("invalid WebP file: missing RIFF/WEBP signature")

// chunks that carry metadata only
var webpMetadataChunks = map[string]bool{
	"EXIF": true,
	"XMP ": true,
	"ICCP": true,
}

// CleanWebP removes the EXIF, XMP and ICCP chunks from the RIFF
// container of a WebP file and fixes up the RIFF size field.
func CleanWebP(data []byte) ([]byte, error) {
	if len(data) < 12 {
		return nil, errWebPInvalid
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		return nil, errWebPInvalid
	}

	cleaned := make([]byte, 0, len(data))
	cleaned = append(cleaned, data[:12]...)
	size := uint32(4) // "WEBP" counts towards the RIFF size

	i := 12
	for i+8 <= len(data) {
		name := string(data[i : i+4])
		chunkSize := binary.LittleEndian.Uint32(data[i+4 : i+8])

		// chunks are padded to even sizes
		padded := chunkSize
		if padded%2 == 1 {
			padded++
		}
		total := 8 + int(padded)
		if i+total > len(data) {
			break
		}

		if !webpMetadataChunks[name] {
			cleaned = append(cleaned, data[i:i+total]...)
			size += uint32(total)
		}
		i += total
	}

	binary.LittleEndian.PutUint32(cleaned[4:8], size)
	return cleaned, nil
}
