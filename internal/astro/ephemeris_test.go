package astro

import (
	"math"
	"testing"
	"time"
)

func TestNormalizeDeg(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-370, 350},
		{720.5, 0.5},
	}
	for _, tt := range tests {
		if got := NormalizeDeg(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDeg(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrap180(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{10, 10},
		{179.9, 179.9},
		{180, -180},
		{190, -170},
		{350, -10},
		{-10, -10},
		{360, 0},
	}
	for _, tt := range tests {
		if got := Wrap180(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Wrap180(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// The truncated series should put the Sun at the cardinal longitudes at
// the observed equinox and solstice instants.
func TestSunLongitude_Seasons(t *testing.T) {
	var p Provider
	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"march equinox 2000", time.Date(2000, time.March, 20, 7, 35, 0, 0, time.UTC), 0},
		{"june solstice 2000", time.Date(2000, time.June, 21, 1, 48, 0, 0, time.UTC), 90},
		{"september equinox 2024", time.Date(2024, time.September, 22, 12, 44, 0, 0, time.UTC), 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.SunLongitude(tt.at)
			if diff := math.Abs(Wrap180(got - tt.want)); diff > 0.05 {
				t.Errorf("SunLongitude = %.4f, want %v within 0.05 deg", got, tt.want)
			}
		})
	}
}

func TestObliquity(t *testing.T) {
	got := Obliquity(time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(got-23.439) > 0.01 {
		t.Errorf("Obliquity(J2000) = %.4f, want about 23.439", got)
	}
}

// At a known conjunction the Moon-Sun elongation must be near zero.
func TestElongation_AtNewMoon(t *testing.T) {
	var p Provider
	newMoon := time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)
	if e := math.Abs(Wrap180(p.Elongation(newMoon))); e > 0.5 {
		t.Errorf("elongation at new moon = %.3f deg, want < 0.5", e)
	}
}

func TestMoonLongitude_DailyMotion(t *testing.T) {
	var p Provider
	t0 := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	moved := NormalizeDeg(p.MoonLongitude(t0.AddDate(0, 0, 1)) - p.MoonLongitude(t0))
	// Lunar daily motion ranges roughly 11.8 to 15.4 degrees.
	if moved < 11 || moved > 16 {
		t.Errorf("daily lunar motion = %.2f deg, want between 11 and 16", moved)
	}
}
