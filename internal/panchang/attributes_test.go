package panchang

import (
	"testing"
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
)

func TestComputeDailyAttributes(t *testing.T) {
	s := &Sky{Eph: fixedEph{sun: 10, moon: 40}}
	d := NewDate(2024, time.March, 5)
	sun := astro.SunTimes{
		Rise: utc(2024, time.March, 5, 6, 0),
		Set:  utc(2024, time.March, 5, 18, 0),
	}
	nextRise := utc(2024, time.March, 6, 6, 0)

	tithi := mustSeries(t, []astro.Transition{
		{At: utc(2024, time.March, 5, 4, 0), Value: 3},
		{At: utc(2024, time.March, 5, 22, 0), Value: 4},
	})
	nakshatra := mustSeries(t, []astro.Transition{
		{At: utc(2024, time.March, 5, 2, 0), Value: 3},
		{At: utc(2024, time.March, 6, 1, 0), Value: 4},
	})

	a := ComputeDailyAttributes(s, d, sun, nextRise, tithi, nakshatra)

	if a.Weekday != time.Tuesday {
		t.Errorf("Weekday = %s, want Tuesday", a.Weekday)
	}
	if a.Tithi != 3 {
		t.Errorf("Tithi = %d, want 3", a.Tithi)
	}
	if len(a.TithiTransitions) != 1 || !a.TithiTransitions[0].At.Equal(utc(2024, time.March, 5, 22, 0)) {
		t.Errorf("TithiTransitions = %v, want the 22:00 change", a.TithiTransitions)
	}
	if a.Nakshatra != 3 {
		t.Errorf("Nakshatra = %d, want 3", a.Nakshatra)
	}
	if len(a.NakshatraTransitions) != 1 {
		t.Errorf("NakshatraTransitions = %v, want one overnight change", a.NakshatraTransitions)
	}
	// Direct evaluations at sunrise with the fixed ephemeris.
	if a.SolarRasi != 0 || a.MoonRasi != 1 {
		t.Errorf("rasis = %d/%d, want 0/1", a.SolarRasi, a.MoonRasi)
	}
	if a.Ayanam != Uttarayanam {
		t.Errorf("Ayanam = %v, want Uttarayanam", a.Ayanam)
	}
}

func TestSraddhaTithi(t *testing.T) {
	sunrise := utc(2024, time.March, 5, 6, 0)
	sunset := utc(2024, time.March, 5, 18, 0)
	// Aparahna is the fourth fifth of daylight: 13:12 to 15:36.

	t.Run("single tithi through aparahna", func(t *testing.T) {
		series := mustSeries(t, []astro.Transition{
			{At: utc(2024, time.March, 5, 0, 0), Value: 7},
		})
		got, ok := SraddhaTithi(sunrise, sunset, series)
		if !ok || got != 7 {
			t.Errorf("SraddhaTithi = %d/%v, want 7/true", got, ok)
		}
	})

	t.Run("transition splits the window", func(t *testing.T) {
		// Change at 14:00: 48 minutes of tithi 7, then 96 of tithi 8.
		series := mustSeries(t, []astro.Transition{
			{At: utc(2024, time.March, 5, 0, 0), Value: 7},
			{At: utc(2024, time.March, 5, 14, 0), Value: 8},
		})
		got, ok := SraddhaTithi(sunrise, sunset, series)
		if !ok || got != 8 {
			t.Errorf("SraddhaTithi = %d/%v, want 8 (longer sub-span)", got, ok)
		}
	})

	t.Run("degenerate day", func(t *testing.T) {
		series := mustSeries(t, []astro.Transition{
			{At: utc(2024, time.March, 5, 0, 0), Value: 7},
		})
		if _, ok := SraddhaTithi(sunrise, sunrise, series); ok {
			t.Error("zero daylight should not resolve a sraddha tithi")
		}
	})
}

func TestChandrashtamamRasi(t *testing.T) {
	tests := []struct{ moonRasi, want int }{
		{7, 0},
		{8, 1},
		{0, 5},
		{6, 11},
		{11, 4},
	}
	for _, tt := range tests {
		if got := ChandrashtamamRasi(tt.moonRasi); got != tt.want {
			t.Errorf("ChandrashtamamRasi(%d) = %d, want %d", tt.moonRasi, got, tt.want)
		}
	}
}
