package fixtures

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// The pattern fixtures exercise code paths that uniform rasters
// cannot reach: chroma subsampling, palette diversity, text rendering
// and anti-aliased shapes.
var patternCases = []Fixture{
	{
		Name:   "grid",
		Width:  100,
		Height: 100,
		Format: FormatPNG,
		Paint: colorGrid([]color.RGBA{
			{R: 255, A: 255},
			{G: 255, A: 255},
			{B: 255, A: 255},
			{R: 255, G: 255, A: 255},
		}),
	},
	{
		Name:   "gradient",
		Width:  120,
		Height: 80,
		Format: FormatJPEG,
		Paint:  gradient,
	},
	{
		Name:   "label",
		Width:  160,
		Height: 40,
		Format: FormatPNG,
		Paint:  label("imgmeta test fixture"),
	},
	{
		Name:   "scene",
		Width:  200,
		Height: 150,
		Format: FormatJPEG,
		Paint:  scene,
	},
	{
		Name:   "palette",
		Width:  64,
		Height: 64,
		Format: FormatTIFF,
		Paint: colorGrid([]color.RGBA{
			{R: 32, G: 32, B: 32, A: 255},
			{R: 224, G: 224, B: 224, A: 255},
			{R: 128, G: 64, B: 0, A: 255},
			{R: 0, G: 64, B: 128, A: 255},
		}),
	},
}

// colorGrid paints a 2x2 grid of solid color blocks.
func colorGrid(colors []color.RGBA) func(draw.Image) {
	return func(img draw.Image) {
		b := img.Bounds()
		w2 := b.Min.X + b.Dx()/2
		h2 := b.Min.Y + b.Dy()/2
		cells := []image.Rectangle{
			image.Rect(b.Min.X, b.Min.Y, w2, h2),
			image.Rect(w2, b.Min.Y, b.Max.X, h2),
			image.Rect(b.Min.X, h2, w2, b.Max.Y),
			image.Rect(w2, h2, b.Max.X, b.Max.Y),
		}
		for i, cell := range cells {
			draw.Draw(img, cell, image.NewUniform(colors[i]), image.Point{}, draw.Src)
		}
	}
}

// gradient paints a horizontal red-to-blue ramp with a vertical
// luminance ramp.
func gradient(img draw.Image) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x - b.Min.X) * 255 / b.Dx()),
				G: uint8((y - b.Min.Y) * 255 / b.Dy()),
				B: 128,
				A: 255,
			})
		}
	}
}

// label paints black text on a white background.
func label(text string) func(draw.Image) {
	return func(img draw.Image) {
		Uniform(color.White)(img)
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Black),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(img.Bounds().Min.X+8, img.Bounds().Min.Y+24),
		}
		d.DrawString(text)
	}
}

// scene paints a small photo-like test card: sky gradient, sun and
// ground, with anti-aliased edges.
func scene(img draw.Image) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dc := gg.NewContext(w, h)

	sky := gg.NewLinearGradient(0, 0, 0, float64(h))
	sky.AddColorStop(0, color.RGBA{R: 40, G: 90, B: 200, A: 255})
	sky.AddColorStop(1, color.RGBA{R: 170, G: 210, B: 250, A: 255})
	dc.SetFillStyle(sky)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	dc.SetRGB(1, 0.85, 0.2)
	dc.DrawCircle(float64(w)*0.75, float64(h)*0.3, float64(h)*0.15)
	dc.Fill()

	dc.SetRGB(0.2, 0.5, 0.2)
	dc.DrawRectangle(0, float64(h)*0.7, float64(w), float64(h)*0.3)
	dc.Fill()

	draw.Draw(img, b, dc.Image(), image.Point{}, draw.Src)
}
