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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes a single-page PDF fixture. The application under
// test accepts PDF uploads, so the corpus needs at least one
// non-raster file.
//
// The page shows a gray square and a star outline on a white
// background. One point equals one pixel at 72 DPI.
func WritePDF(path string, width, height int) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}

	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	w := float64(width)
	h := float64(height)

	// white background
	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; the fixture is described top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetFillColor(color.DeviceGray(0.5))
	page.Rectangle(w*0.1, h*0.1, w*0.35, h*0.35)
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(2)
	star := starPoints(w*0.65, h*0.6, math.Min(w, h)*0.25)
	page.MoveTo(star[0].X, star[0].Y)
	for _, p := range star[1:] {
		page.LineTo(p.X, p.Y)
	}
	page.ClosePath()
	page.Stroke()

	return page.Close()
}

// starPoints returns the vertices of a five-pointed star, connecting
// every second point.
func starPoints(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	order := []int{0, 2, 4, 1, 3}
	out := make([]vec.Vec2, 5)
	for i, j := range order {
		out[i] = pts[j]
	}
	return out
}
