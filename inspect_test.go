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

package imgmeta_test

import (
	"math"
	"testing"

	"seehuhn.de/go/imgmeta"
	"seehuhn.de/go/imgmeta/fixtures"
)

// exifJPEG builds a JPEG fixture with known EXIF data, the way the
// corpus generator does.
func exifJPEG(t *testing.T) []byte {
	t.Helper()
	var base []byte
	for _, fx := range fixtures.All["simple"] {
		if fx.Format == fixtures.FormatJPEG {
			var err error
			base, err = fx.Bytes()
			if err != nil {
				t.Fatal(err)
			}
		}
	}
	if base == nil {
		t.Fatal("no simple JPEG fixture in catalog")
	}

	data, err := fixtures.WithEXIF(base, fixtures.EXIF{
		Make:     "Acme",
		Model:    "Acme One",
		DateTime: "2024:01:15 10:30:00",
		GPS:      &imgmeta.Coordinates{Lat: 37.7749, Lon: -122.4194},
	})
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestInspect(t *testing.T) {
	data := exifJPEG(t)

	s := imgmeta.Inspect("exif.jpg", data)
	if s.Name != "exif.jpg" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.Size != int64(len(data)) {
		t.Errorf("Size = %d, want %d", s.Size, len(data))
	}
	if s.MIME != "image/jpeg" {
		t.Errorf("MIME = %q, want image/jpeg", s.MIME)
	}
	if s.Width != 50 || s.Height != 50 {
		t.Errorf("dimensions = %dx%d, want 50x50", s.Width, s.Height)
	}
	if len(s.SHA256) != 64 {
		t.Errorf("SHA256 = %q, want 64 hex digits", s.SHA256)
	}
	if s.EXIF["Make"] != "Acme" {
		t.Errorf("EXIF Make = %q, want Acme", s.EXIF["Make"])
	}
	if s.GPS == nil {
		t.Fatal("no GPS coordinates")
	}
	if math.Abs(s.GPS.Lat-37.7749) > 1e-6 || math.Abs(s.GPS.Lon+122.4194) > 1e-6 {
		t.Errorf("GPS = (%v,%v)", s.GPS.Lat, s.GPS.Lon)
	}
}

// TestCleanPipeline runs the full workflow the application performs:
// inspect, assess, clean, and verify that the risk is gone.
func TestCleanPipeline(t *testing.T) {
	data := exifJPEG(t)

	before := imgmeta.Inspect("exif.jpg", data)
	if risk := imgmeta.Assess(before); risk.Level != imgmeta.RiskCritical {
		t.Errorf("risk before cleaning = %v, want critical", risk.Level)
	}

	cleaned, err := imgmeta.Clean(data, "jpg")
	if err != nil {
		t.Fatal(err)
	}

	after := imgmeta.Inspect("exif.jpg", cleaned)
	if len(after.EXIF) != 0 {
		t.Errorf("EXIF fields survived cleaning: %v", after.EXIF)
	}
	if after.GPS != nil {
		t.Error("GPS coordinates survived cleaning")
	}
	if risk := imgmeta.Assess(after); risk.Level != imgmeta.RiskLow {
		t.Errorf("risk after cleaning = %v, want low", risk.Level)
	}
	if after.Width != 50 || after.Height != 50 {
		t.Errorf("cleaned dimensions = %dx%d, want 50x50", after.Width, after.Height)
	}
	if after.SHA256 == before.SHA256 {
		t.Error("cleaning did not change the file")
	}
}

func TestInspectPlainFixture(t *testing.T) {
	for _, fx := range fixtures.All["simple"] {
		data, err := fx.Bytes()
		if err != nil {
			t.Fatal(err)
		}
		s := imgmeta.Inspect(fx.Filename(), data)
		if len(s.EXIF) != 0 {
			t.Errorf("%s: unexpected EXIF data: %v", fx.Filename(), s.EXIF)
		}
		if s.GPS != nil {
			t.Errorf("%s: unexpected GPS coordinates", fx.Filename())
		}
		if s.Width != 50 || s.Height != 50 {
			t.Errorf("%s: dimensions = %dx%d, want 50x50",
				fx.Filename(), s.Width, s.Height)
		}
	}
}
