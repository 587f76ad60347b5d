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

import "errors"

var errGIFInvalid = errors.New("invalid GIF file: missing signature")

// CleanGIF removes application extensions (which may carry XMP data)
// and comment extensions from a GIF file. Graphics control and plain
// text extensions as well as the color tables are preserved.
func CleanGIF(data []byte) ([]byte, error) {
	if len(data) < 13 {
		return nil, errGIFInvalid
	}
	if string(data[0:3]) != "GIF" ||
		(string(data[3:6]) != "87a" && string(data[3:6]) != "89a") {
		return nil, errGIFInvalid
	}

	cleaned := make([]byte, 0, len(data))

	// header (6 bytes) and logical screen descriptor (7 bytes)
	cleaned = append(cleaned, data[:13]...)
	i := 13

	// global color table, if present
	if data[10]&0x80 != 0 {
		n := 3 * (2 << (data[10] & 0x07))
		if i+n <= len(data) {
			cleaned = append(cleaned, data[i:i+n]...)
			i += n
		}
	}

	for i < len(data) {
		switch data[i] {
		case 0x21: // extension introducer
			if i+1 >= len(data) {
				return cleaned, nil
			}
			label := data[i+1]
			start := i
			i += 2
			// skip the extension's sub-blocks
			for i < len(data) {
				size := int(data[i])
				i++
				if size == 0 {
					break
				}
				i += size
			}
			// 0xFF: application extension, 0xFE: comment extension
			if label != 0xFF && label != 0xFE {
				if i > len(data) {
					i = len(data)
				}
				cleaned = append(cleaned, data[start:i]...)
			}
		case 0x2C, 0x3B: // image separator or trailer
			cleaned = append(cleaned, data[i:]...)
			return cleaned, nil
		default:
			cleaned = append(cleaned, data[i])
			i++
		}
	}
	return cleaned, nil
}
