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

import "math"

// PrecisionLevel selects how much location precision survives GPS
// coordinate fuzzing.
type PrecisionLevel int

const (
	// PrecisionExact keeps the full coordinates (~1 meter).
	PrecisionExact PrecisionLevel = iota
	// PrecisionStreet rounds to ~100 meters (3 decimal places).
	PrecisionStreet
	// PrecisionNeighborhood rounds to ~1 kilometer (2 decimal places).
	PrecisionNeighborhood
	// PrecisionCity rounds to ~10 kilometers (1 decimal place).
	PrecisionCity
	// PrecisionRegion rounds to ~100 kilometers (0 decimal places).
	PrecisionRegion
)

// DecimalPlaces returns the number of decimal places kept at this
// precision level.
func (p PrecisionLevel) DecimalPlaces() int {
	switch p {
	case PrecisionStreet:
		return 3
	case PrecisionNeighborhood:
		return 2
	case PrecisionCity:
		return 1
	case PrecisionRegion:
		return 0
	default:
		return 6
	}
}

// Description returns a human-readable description of the precision
// level.
func (p PrecisionLevel) Description() string {
	switch p {
	case PrecisionStreet:
		return "Street level (~100 meters)"
	case PrecisionNeighborhood:
		return "Neighborhood (~1 kilometer)"
	case PrecisionCity:
		return "City level (~10 kilometers)"
	case PrecisionRegion:
		return "Region level (~100 kilometers)"
	default:
		return "Exact location (~1 meter)"
	}
}

// Fuzz reduces the precision of GPS coordinates by rounding to the
// level's number of decimal places. This obscures the exact location
// while keeping the general area intact.
func Fuzz(lat, lon float64, level PrecisionLevel) (float64, float64) {
	m := math.Pow(10, float64(level.DecimalPlaces()))
	return math.Round(lat*m) / m, math.Round(lon*m) / m
}
