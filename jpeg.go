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
	"errors"
)

// JPEG markers.
const (
	markerSOI  = 0xD8
	markerSOS  = 0xDA
	markerAPP0 = 0xE0
	markerAPP1 = 0xE1
	markerAPP  = 0xEF // last application segment marker (APP15)
	markerCOM  = 0xFE
)

var exifHeader = []byte("Exif\x00\x00")

var (
	errJPEGTooShort   = errors.New("invalid JPEG file: too short")
	errJPEGNoSOI      = errors.New("invalid JPEG file: missing SOI marker")
	errJPEGTruncated  = errors.New("truncated JPEG file")
	errJPEGBadSegment = errors.New("invalid JPEG segment length")
)

// Segment is one marker segment of a JPEG file, up to and not
// including the start-of-scan marker.
type Segment struct {
	Marker byte   // second marker byte, e.g. 0xE1 for APP1
	Offset int    // file offset of the 0xFF marker byte
	Data   []byte // segment payload, without the two length bytes
}

// IsApp reports whether the segment is an application segment
// (APP0 through APP15).
func (s Segment) IsApp() bool {
	return s.Marker >= markerAPP0 && s.Marker <= markerAPP
}

// IsEXIF reports whether the segment is an APP1 segment carrying
// EXIF data.
func (s Segment) IsEXIF() bool {
	return s.Marker == markerAPP1 && bytes.HasPrefix(s.Data, exifHeader)
}

// ScanJPEG lists the marker segments of a JPEG file in file order.
// Scanning stops at the start-of-scan marker, where entropy-coded
// image data begins.
func ScanJPEG(data []byte) ([]Segment, error) {
	if len(data) < 4 {
		return nil, errJPEGTooShort
	}
	if data[0] != 0xFF || data[1] != markerSOI {
		return nil, errJPEGNoSOI
	}

	var segs []Segment
	i := 2
	for i < len(data)-1 {
		if data[i] != 0xFF {
			break // entropy-coded data
		}
		marker := data[i+1]
		if marker == markerSOS {
			break
		}
		if i+3 >= len(data) {
			return nil, errJPEGTruncated
		}
		length := int(data[i+2])<<8 | int(data[i+3])
		if length < 2 || i+2+length > len(data) {
			return nil, errJPEGBadSegment
		}
		segs = append(segs, Segment{
			Marker: marker,
			Offset: i,
			Data:   data[i+4 : i+2+length],
		})
		i += 2 + length
	}
	return segs, nil
}

// CleanJPEG removes all application segments (APP0 through APP15)
// from a JPEG file. All other segments, including comment segments,
// quantization tables, Huffman tables and the entropy-coded image
// data, are preserved unchanged.
func CleanJPEG(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, errJPEGTooShort
	}
	if data[0] != 0xFF || data[1] != markerSOI {
		return nil, errJPEGNoSOI
	}

	cleaned := make([]byte, 0, len(data))
	cleaned = append(cleaned, 0xFF, markerSOI)

	i := 2
	for i < len(data)-1 {
		if data[i] != 0xFF {
			// not a marker, we have hit image data
			cleaned = append(cleaned, data[i:]...)
			break
		}

		marker := data[i+1]
		switch {
		case marker == markerSOS:
			// image data follows, copy the rest of the file
			cleaned = append(cleaned, data[i:]...)
			return cleaned, nil
		case marker >= markerAPP0 && marker <= markerAPP:
			if i+3 >= len(data) {
				return nil, errJPEGTruncated
			}
			length := int(data[i+2])<<8 | int(data[i+3])
			if length < 2 {
				return nil, errJPEGBadSegment
			}
			i += 2 + length
		default:
			if i+3 >= len(data) {
				cleaned = append(cleaned, data[i:]...)
				return cleaned, nil
			}
			length := int(data[i+2])<<8 | int(data[i+3])
			if length < 2 || i+2+length > len(data) {
				cleaned = append(cleaned, data[i:]...)
				return cleaned, nil
			}
			cleaned = append(cleaned, data[i:i+2+length]...)
			i += 2 + length
		}
	}
	return cleaned, nil
}

// InsertJPEGSegment inserts a marker segment with the given payload
// directly after the SOI marker. The payload must fit the 16-bit
// segment length field.
func InsertJPEGSegment(data []byte, marker byte, payload []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, errJPEGTooShort
	}
	if data[0] != 0xFF || data[1] != markerSOI {
		return nil, errJPEGNoSOI
	}
	length := len(payload) + 2
	if length > 0xFFFF {
		return nil, errJPEGBadSegment
	}

	out := make([]byte, 0, len(data)+4+len(payload))
	out = append(out, 0xFF, markerSOI)
	out = append(out, 0xFF, marker, byte(length>>8), byte(length))
	out = append(out, payload...)
	out = append(out, data[2:]...)
	return out, nil
}
