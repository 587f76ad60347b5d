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

package fixtures

import (
	"encoding/binary"
	"math"

	"seehuhn.de/go/imgmeta"
)

// EXIF describes the synthetic metadata spliced into a fixture by
// WithEXIF. Empty string fields are omitted from the generated block.
type EXIF struct {
	Make     string
	Model    string
	Software string
	DateTime string // "YYYY:MM:DD HH:MM:SS"
	GPS      *imgmeta.Coordinates
}

// WithEXIF inserts an APP1 segment carrying the given EXIF fields
// directly after the SOI marker of an encoded JPEG. The pixel data is
// not touched.
func WithEXIF(jpegData []byte, e EXIF) ([]byte, error) {
	return imgmeta.InsertJPEGSegment(jpegData, 0xE1, e.payload())
}

// WithText inserts a tEXt chunk into an encoded PNG.
func WithText(pngData []byte, keyword, value string) ([]byte, error) {
	return imgmeta.InsertPNGText(pngData, keyword, value)
}

// TIFF field types and tags used in the generated block.
const (
	typeByte     = 1
	typeASCII    = 2
	typeLong     = 4
	typeRational = 5

	tagMake       = 0x010F
	tagModel      = 0x0110
	tagSoftware   = 0x0131
	tagDateTime   = 0x0132
	tagGPSInfoIFD = 0x8825

	tagGPSVersionID    = 0x0000
	tagGPSLatitudeRef  = 0x0001
	tagGPSLatitude     = 0x0002
	tagGPSLongitudeRef = 0x0003
	tagGPSLongitude    = 0x0004
)

// payload builds the APP1 payload: the "Exif\0\0" identifier followed
// by a little-endian TIFF block with one IFD (and a GPS sub-IFD if
// coordinates are set).
func (e EXIF) payload() []byte {
	ifd0 := &ifd{}
	if e.Make != "" {
		ifd0.addASCII(tagMake, e.Make)
	}
	if e.Model != "" {
		ifd0.addASCII(tagModel, e.Model)
	}
	if e.Software != "" {
		ifd0.addASCII(tagSoftware, e.Software)
	}
	if e.DateTime != "" {
		ifd0.addASCII(tagDateTime, e.DateTime)
	}

	var gps *ifd
	if e.GPS != nil {
		gps = &ifd{}
		gps.addBytes(tagGPSVersionID, []byte{2, 3, 0, 0})

		lat, latRef := e.GPS.Lat, "N"
		if lat < 0 {
			lat, latRef = -lat, "S"
		}
		lon, lonRef := e.GPS.Lon, "E"
		if lon < 0 {
			lon, lonRef = -lon, "W"
		}
		gps.addASCII(tagGPSLatitudeRef, latRef)
		gps.addRationals(tagGPSLatitude, degMinSec(lat))
		gps.addASCII(tagGPSLongitudeRef, lonRef)
		gps.addRationals(tagGPSLongitude, degMinSec(lon))

		// the pointer entry must be present before offsets are laid out
		ifd0.addLong(tagGPSInfoIFD, 0)
	}

	// TIFF header: byte order, magic, offset of the first IFD
	block := make([]byte, 8)
	block[0], block[1] = 'I', 'I'
	binary.LittleEndian.PutUint16(block[2:], 42)
	binary.LittleEndian.PutUint32(block[4:], 8)

	if gps != nil {
		gpsOffset := uint32(8 + ifd0.size())
		ifd0.patchLong(tagGPSInfoIFD, gpsOffset)
		block = append(block, ifd0.encode(8)...)
		block = append(block, gps.encode(gpsOffset)...)
	} else {
		block = append(block, ifd0.encode(8)...)
	}

	payload := make([]byte, 0, 6+len(block))
	payload = append(payload, "Exif\x00\x00"...)
	payload = append(payload, block...)
	return payload
}

// degMinSec splits decimal degrees into the three EXIF rationals.
// Seconds use a denominator of 10000, keeping the round trip accurate
// to well below a millimeter.
func degMinSec(v float64) [][2]uint32 {
	deg := math.Floor(v)
	rem := (v - deg) * 60
	min := math.Floor(rem)
	sec := (rem - min) * 60
	return [][2]uint32{
		{uint32(deg), 1},
		{uint32(min), 1},
		{uint32(math.Round(sec * 10000)), 10000},
	}
}

type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value []byte
}

// ifd accumulates TIFF directory entries. Entries must be added in
// ascending tag order.
type ifd struct {
	entries []ifdEntry
}

func (d *ifd) add(tag, typ uint16, count uint32, value []byte) {
	d.entries = append(d.entries, ifdEntry{tag: tag, typ: typ, count: count, value: value})
}

func (d *ifd) addASCII(tag uint16, s string) {
	v := append([]byte(s), 0)
	d.add(tag, typeASCII, uint32(len(v)), v)
}

func (d *ifd) addBytes(tag uint16, b []byte) {
	d.add(tag, typeByte, uint32(len(b)), b)
}

func (d *ifd) addLong(tag uint16, v uint32) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	d.add(tag, typeLong, 1, b)
}

func (d *ifd) addRationals(tag uint16, rats [][2]uint32) {
	b := make([]byte, 0, 8*len(rats))
	for _, r := range rats {
		b = binary.LittleEndian.AppendUint32(b, r[0])
		b = binary.LittleEndian.AppendUint32(b, r[1])
	}
	d.add(tag, typeRational, uint32(len(rats)), b)
}

func (d *ifd) patchLong(tag uint16, v uint32) {
	for i := range d.entries {
		if d.entries[i].tag == tag {
			binary.LittleEndian.PutUint32(d.entries[i].value, v)
			return
		}
	}
}

// size returns the encoded size of the IFD including its value area.
func (d *ifd) size() int {
	n := 2 + 12*len(d.entries) + 4
	for _, e := range d.entries {
		if len(e.value) > 4 {
			n += len(e.value) + len(e.value)%2
		}
	}
	return n
}

// encode lays out the directory at the given offset within the TIFF
// block. Values wider than four bytes go into a value area directly
// after the directory, padded to even offsets.
func (d *ifd) encode(base uint32) []byte {
	n := len(d.entries)
	dirSize := 2 + 12*n + 4
	out := make([]byte, dirSize)
	binary.LittleEndian.PutUint16(out, uint16(n))

	var extra []byte
	for i, e := range d.entries {
		p := 2 + 12*i
		binary.LittleEndian.PutUint16(out[p:], e.tag)
		binary.LittleEndian.PutUint16(out[p+2:], e.typ)
		binary.LittleEndian.PutUint32(out[p+4:], e.count)
		if len(e.value) <= 4 {
			copy(out[p+8:p+12], e.value)
		} else {
			offset := base + uint32(dirSize) + uint32(len(extra))
			binary.LittleEndian.PutUint32(out[p+8:], offset)
			extra = append(extra, e.value...)
			if len(e.value)%2 == 1 {
				extra = append(extra, 0)
			}
		}
	}
	// the next-IFD offset at the end of the directory stays zero
	return append(out, extra...)
}
