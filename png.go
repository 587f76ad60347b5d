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
	"encoding/binary"
	"errors"
	"hash/crc32"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

var (
	errPNGTooShort    = errors.New("invalid PNG file: too short")
	errPNGNoSignature = errors.New("invalid PNG file: missing signature")
)

// chunks that only carry metadata and are safe to drop
var pngMetadataChunks = map[string]bool{
	"tEXt": true,
	"zTXt": true,
	"iTXt": true,
	"tIME": true,
	"pHYs": true,
	"gAMA": true,
	"cHRM": true,
	"sRGB": true,
	"iCCP": true,
}

// Chunk is one chunk of a PNG file.
type Chunk struct {
	Type   string // four-character chunk type, e.g. "IHDR"
	Offset int    // file offset of the length field
	Data   []byte // chunk data, without length, type and CRC (view into input)
}

// ScanPNG lists the chunks of a PNG file in file order. Trailing
// garbage after a truncated chunk is ignored, matching the lenient
// behaviour of the cleaner.
func ScanPNG(data []byte) ([]Chunk, error) {
	if len(data) < 8 {
		return nil, errPNGTooShort
	}
	if !bytes.Equal(data[:8], pngSignature) {
		return nil, errPNGNoSignature
	}

	var chunks []Chunk
	i := 8
	for i+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[i:]))
		total := 12 + length // length + type + data + CRC
		if i+total > len(data) {
			break
		}
		chunks = append(chunks, Chunk{
			Type:   string(data[i+4 : i+8]),
			Offset: i,
			Data:   data[i+8 : i+8+length],
		})
		i += total
	}
	return chunks, nil
}

// CleanPNG removes metadata chunks (tEXt, zTXt, iTXt, tIME, pHYs,
// gAMA, cHRM, sRGB, iCCP) from a PNG file. Critical chunks and
// unrecognized ancillary chunks are kept.
func CleanPNG(data []byte) ([]byte, error) {
	if len(data) < 8 {
		return nil, errPNGTooShort
	}
	if !bytes.Equal(data[:8], pngSignature) {
		return nil, errPNGNoSignature
	}

	cleaned := make([]byte, 0, len(data))
	cleaned = append(cleaned, data[:8]...)

	i := 8
	for i+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[i:]))
		total := 12 + length
		if i+total > len(data) {
			break
		}
		name := string(data[i+4 : i+8])
		if !pngMetadataChunks[name] {
			cleaned = append(cleaned, data[i:i+total]...)
		}
		i += total
	}
	return cleaned, nil
}

// InsertPNGText inserts a tEXt chunk with the given keyword and value
// directly after the IHDR chunk.
func InsertPNGText(data []byte, keyword, value string) ([]byte, error) {
	chunks, err := ScanPNG(data)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 || chunks[0].Type != "IHDR" {
		return nil, errPNGNoSignature
	}

	payload := make([]byte, 0, len(keyword)+1+len(value))
	payload = append(payload, keyword...)
	payload = append(payload, 0)
	payload = append(payload, value...)

	chunk := make([]byte, 8, 12+len(payload))
	binary.BigEndian.PutUint32(chunk, uint32(len(payload)))
	copy(chunk[4:], "tEXt")
	chunk = append(chunk, payload...)
	crc := crc32.ChecksumIEEE(chunk[4:])
	chunk = binary.BigEndian.AppendUint32(chunk, crc)

	// insertion point: end of the IHDR chunk
	pos := chunks[0].Offset + 12 + len(chunks[0].Data)
	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:pos]...)
	out = append(out, chunk...)
	out = append(out, data[pos:]...)
	return out, nil
}
