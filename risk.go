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

import "sort"

// RiskLevel classifies how much a file's metadata reveals about the
// person who created it.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

func (l RiskLevel) String() string {
	switch l {
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskCritical:
		return "critical"
	default:
		return "low"
	}
}

// Risk is the privacy assessment of a file's metadata.
type Risk struct {
	Level           RiskLevel
	Score           int
	Warnings        []string
	SensitiveFields []string
}

// fields that uniquely identify a device or a person
var identityFields = map[string]bool{
	"SerialNumber":     true,
	"LensSerialNumber": true,
	"CameraOwnerName":  true,
	"Artist":           true,
	"Copyright":        true,
}

// fields that reveal when a photo was taken or what software touched it
var traceFields = map[string]bool{
	"DateTime":          true,
	"DateTimeOriginal":  true,
	"DateTimeDigitized": true,
	"Software":          true,
	"Make":              true,
	"Model":             true,
}

// Assess scores the privacy risk of a file's metadata. GPS
// coordinates dominate the assessment: any recorded position makes
// the risk critical.
func Assess(s *Summary) Risk {
	var r Risk

	if s.GPS != nil {
		r.Score += 50
		r.Warnings = append(r.Warnings,
			"GPS coordinates reveal the exact location where this image was taken")
		r.SensitiveFields = append(r.SensitiveFields, "GPSLatitude", "GPSLongitude")
	}

	var keys []string
	for key := range s.EXIF {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch {
		case identityFields[key]:
			r.Score += 15
			r.SensitiveFields = append(r.SensitiveFields, key)
		case traceFields[key]:
			r.Score += 5
			r.SensitiveFields = append(r.SensitiveFields, key)
		}
	}
	if hasAny(s.EXIF, identityFields) {
		r.Warnings = append(r.Warnings,
			"metadata contains fields that uniquely identify the camera or its owner")
	}
	if hasAny(s.EXIF, traceFields) {
		r.Warnings = append(r.Warnings,
			"timestamps and device information allow this image to be traced")
	}

	switch {
	case s.GPS != nil:
		r.Level = RiskCritical
	case r.Score >= 20:
		r.Level = RiskHigh
	case r.Score >= 5:
		r.Level = RiskMedium
	default:
		r.Level = RiskLow
	}
	return r
}

func hasAny(fields map[string]string, set map[string]bool) bool {
	for key := range fields {
		if set[key] {
			return true
		}
	}
	return false
}
