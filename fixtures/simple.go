package fixtures

import "image/color"

// The simple fixtures are the two files the end-to-end tests rely on
// unconditionally: uniform 50x50 rasters with no embedded metadata.
// Their file names, sizes, colors and the JPEG quality are fixed and
// must not change.
var simpleCases = []Fixture{
	{
		Name:    "simple",
		Width:   50,
		Height:  50,
		Format:  FormatJPEG,
		Quality: 95,
		Paint:   Uniform(color.RGBA{R: 255, A: 255}),
	},
	{
		Name:   "simple",
		Width:  50,
		Height: 50,
		Format: FormatPNG,
		Paint:  Uniform(color.RGBA{B: 255, A: 255}),
	},
}
