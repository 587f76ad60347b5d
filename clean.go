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
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned by Clean for file types the
// cleaner cannot process at the container level.
var ErrUnsupportedFormat = fmt.Errorf("unsupported format for binary cleaning")

// Clean removes embedded metadata from a file, selecting the cleaner
// by file extension (without the leading dot, case-insensitive).
//
// TIFF, HEIF, AVIF, JPEG XL and PDF files store metadata interleaved
// with the image structure and cannot be cleaned by dropping container
// chunks; Clean returns ErrUnsupportedFormat for these.
func Clean(data []byte, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case "jpg", "jpeg":
		return CleanJPEG(data)
	case "png":
		return CleanPNG(data)
	case "webp":
		return CleanWebP(data)
	case "gif":
		return CleanGIF(data)
	case "svg":
		return CleanSVG(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}
