package fixtures

// All contains all raster fixtures, grouped by category.
// The file name of each fixture within its category is derived from
// the fixture name and format.
var All = map[string][]Fixture{
	"simple":  simpleCases,
	"pattern": patternCases,
}
