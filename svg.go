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
	"errors"
	"strings"
)

var errSVGInvalid = errors.New("invalid SVG file")

// markers for lines that carry document metadata
var svgMetadataMarkers = []string{
	"<metadata",
	"</metadata>",
	"xmlns:dc=",
	"xmlns:cc=",
	"xmlns:rdf=",
	"<rdf:",
	"</rdf:",
	"<dc:",
	"<cc:",
}

// CleanSVG removes metadata elements (Dublin Core, Creative Commons
// and RDF annotations) from an SVG file. This is a line filter, not a
// full XML rewrite; metadata spread over a single line is removed
// together with that line.
func CleanSVG(data []byte) ([]byte, error) {
	text := string(data)
	if !strings.Contains(text, "<svg") {
		return nil, errSVGInvalid
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		drop := false
		for _, marker := range svgMetadataMarkers {
			if strings.Contains(lower, marker) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, line)
		}
	}
	return []byte(strings.Join(kept, "\n")), nil
}
