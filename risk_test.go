package imgmeta

import (
	"strings"
	"testing"
)

func TestAssess(t *testing.T) {
	tests := []struct {
		name string
		s    Summary
		want RiskLevel
	}{
		{
			name: "no metadata",
			s:    Summary{},
			want: RiskLow,
		},
		{
			name: "timestamps only",
			s: Summary{EXIF: map[string]string{
				"DateTime": "2024:01:15 10:30:00",
				"Software": "darktable",
			}},
			want: RiskMedium,
		},
		{
			name: "identifying fields",
			s: Summary{EXIF: map[string]string{
				"SerialNumber": "12345",
				"Artist":       "someone",
			}},
			want: RiskHigh,
		},
		{
			name: "gps dominates",
			s: Summary{
				GPS:  &Coordinates{Lat: 37.7749, Lon: -122.4194},
				EXIF: map[string]string{"Make": "Acme"},
			},
			want: RiskCritical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Assess(&tt.s)
			if r.Level != tt.want {
				t.Errorf("Level = %v, want %v", r.Level, tt.want)
			}
			if tt.want != RiskLow && len(r.Warnings) == 0 {
				t.Error("no warnings for risky metadata")
			}
			if tt.want == RiskLow && r.Score != 0 {
				t.Errorf("Score = %d, want 0", r.Score)
			}
		})
	}
}

func TestAssessGPSWarning(t *testing.T) {
	r := Assess(&Summary{GPS: &Coordinates{Lat: 1, Lon: 2}})
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "GPS") {
			found = true
		}
	}
	if !found {
		t.Error("no GPS warning in assessment")
	}
}

func TestDescribe(t *testing.T) {
	if info := Describe("GPSLatitude"); info.Category != "Location" {
		t.Errorf("GPSLatitude category = %q, want Location", info.Category)
	}
	if info := Describe("Make"); info.Category != "Camera" {
		t.Errorf("Make category = %q, want Camera", info.Category)
	}
	if info := Describe("SomeUnknownTag"); info.Category != "Other" {
		t.Errorf("unknown key category = %q, want Other", info.Category)
	}
}

func TestRiskLevelString(t *testing.T) {
	levels := map[RiskLevel]string{
		RiskLow:      "low",
		RiskMedium:   "medium",
		RiskHigh:     "high",
		RiskCritical: "critical",
	}
	for level, want := range levels {
		if got := level.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
