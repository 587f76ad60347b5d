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
	"net/http"
	"strings"
)

// extension fallback for types the content sniffer does not know
var mimeByExt = map[string]string{
	".pdf":  "application/pdf",
	".svg":  "image/svg+xml",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".heif": "image/heif",
	".heic": "image/heif",
	".avif": "image/avif",
	".jxl":  "image/jxl",
}

var supportedMIME = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
	"image/svg+xml":   true,
	"image/tiff":      true,
	"image/heif":      true,
	"image/avif":      true,
	"image/jxl":       true,
}

// DetectMIME determines the MIME type of a file. A non-empty declared
// type always wins. Otherwise the header bytes are sniffed, and if that
// yields nothing useful the file extension decides. The fallback result
// is "application/octet-stream".
func DetectMIME(name, declared string, data []byte) string {
	if declared != "" {
		return declared
	}

	sniffed := http.DetectContentType(data)
	switch sniffed {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
		return sniffed
	}

	nameLower := strings.ToLower(name)
	for ext, mime := range mimeByExt {
		if strings.HasSuffix(nameLower, ext) {
			return mime
		}
	}
	return "application/octet-stream"
}

// IsSupported reports whether the cleaner knows how to handle files of
// the given MIME type.
func IsSupported(mime string) bool {
	return supportedMIME[mime]
}
