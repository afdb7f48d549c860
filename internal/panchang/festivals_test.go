package panchang

import (
	"testing"
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
)

func factsOn(date Date) DayFacts {
	return DayFacts{
		Date:       date,
		Weekday:    date.Weekday(),
		Tithi:      1,
		Nakshatra:  1,
		SolarMonth: -1,
		LunarMonth: -1,
	}
}

func TestSolarDateRule(t *testing.T) {
	rule := SolarDateRule{Festival{Name: "Thai Pongal"}, 9, 1}

	f := factsOn(NewDate(2024, time.January, 15))
	f.SolarMonth, f.SolarDay = 9, 1
	if !rule.Matches(f) {
		t.Error("Thai 1 should match")
	}

	f.SolarDay = 2
	if rule.Matches(f) {
		t.Error("Thai 2 should not match")
	}

	f.SolarMonth, f.SolarDay = -1, 0
	if rule.Matches(f) {
		t.Error("unknown solar month should never match")
	}
}

func TestLunarTithiRule(t *testing.T) {
	rule := LunarTithiRule{Festival{Name: "Deepavali"}, 6, 1, 14}

	f := factsOn(NewDate(2024, time.October, 31))
	f.LunarMonth = 6
	f.Tithi = 29 // krishna chaturdashi
	if !rule.Matches(f) {
		t.Error("krishna chaturdashi of month 6 should match")
	}

	f.Tithi = 14 // shukla chaturdashi, wrong paksha
	if rule.Matches(f) {
		t.Error("shukla chaturdashi should not match a krishna rule")
	}

	f.Tithi = 29
	f.LunarMonth = 5
	if rule.Matches(f) {
		t.Error("wrong lunar month should not match")
	}
}

func TestNakshatraRule(t *testing.T) {
	rule := NakshatraRule{Festival{Name: "Karthigai Deepam"}, 3, 7}

	f := factsOn(NewDate(2024, time.December, 13))
	f.SolarMonth, f.Nakshatra = 7, 3
	if !rule.Matches(f) {
		t.Error("Krithika in month 7 should match")
	}

	f.SolarMonth = 6
	if rule.Matches(f) {
		t.Error("Krithika outside month 7 should not match")
	}
}

func TestLastFridayBeforeFullMoonRule(t *testing.T) {
	rule := LastFridayBeforeFullMoonRule{Festival{Name: "Varalakshmi Vratam"}, 4}

	// 2024-08-16 is a Friday.
	friday := NewDate(2024, time.August, 16)
	if friday.Weekday() != time.Friday {
		t.Fatalf("fixture date %s is %s, want Friday", friday, friday.Weekday())
	}

	f := factsOn(friday)
	f.LunarMonth = 4
	f.Tithi = 12 // three waxing days to the full moon
	if !rule.Matches(f) {
		t.Error("Friday with full moon 3 days out should match")
	}

	f.Tithi = 15 // full moon day itself still qualifies
	if !rule.Matches(f) {
		t.Error("full moon Friday should match")
	}

	f.Tithi = 7 // eight days out, a later Friday will come first
	if rule.Matches(f) {
		t.Error("Friday more than a week before the full moon should not match")
	}

	f.Tithi = 20 // waning fortnight
	if rule.Matches(f) {
		t.Error("waning paksha should not match")
	}

	f = factsOn(NewDate(2024, time.August, 15)) // Thursday
	f.LunarMonth = 4
	f.Tithi = 12
	if rule.Matches(f) {
		t.Error("non-Friday should not match")
	}
}

func TestEvaluateRules_OrderAndMultiHit(t *testing.T) {
	rules := []Rule{
		LunarTithiRule{Festival{Name: "First"}, 6, 0, 10},
		SolarDateRule{Festival{Name: "Second"}, 6, 20},
	}

	f := factsOn(NewDate(2024, time.October, 12))
	f.LunarMonth, f.Tithi = 6, 10
	f.SolarMonth, f.SolarDay = 6, 20

	hits := EvaluateRules(rules, f)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if hits[0].Festival.Name != "First" || hits[1].Festival.Name != "Second" {
		t.Errorf("hit order = [%s %s], want declared order",
			hits[0].Festival.Name, hits[1].Festival.Name)
	}
}

func TestRulesFor(t *testing.T) {
	tamil := RulesFor(StyleTamil)
	telugu := RulesFor(StyleTelugu)
	if len(tamil) == 0 || len(telugu) == 0 {
		t.Fatal("rule lists must not be empty")
	}

	hasName := func(rules []Rule, name string) bool {
		for _, r := range rules {
			if r.Details().Name == name {
				return true
			}
		}
		return false
	}
	if !hasName(tamil, "Deepavali") || !hasName(telugu, "Deepavali") {
		t.Error("Deepavali should be in both styles")
	}
	if !hasName(tamil, "Thai Pongal") || hasName(telugu, "Thai Pongal") {
		t.Error("Thai Pongal should be Tamil only")
	}
	if !hasName(telugu, "Ugadi") || hasName(tamil, "Ugadi") {
		t.Error("Ugadi should be Telugu only")
	}
}

func TestTimedVratams_Ekadashi(t *testing.T) {
	sunrise := utc(2024, time.March, 5, 6, 0)
	sunset := utc(2024, time.March, 5, 18, 0)
	// Tithi 11 holds from 04:00 until 06:00 the next morning.
	series := mustSeries(t, []astro.Transition{
		{At: utc(2024, time.March, 5, 4, 0), Value: 11},
		{At: utc(2024, time.March, 6, 6, 0), Value: 12},
		{At: utc(2024, time.March, 7, 8, 0), Value: 13},
	})

	events := TimedVratams(sunrise, sunset, series)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Name != "Ekadashi (Shukla)" {
		t.Errorf("name = %q, want Ekadashi (Shukla)", ev.Name)
	}
	if !ev.Start.Equal(utc(2024, time.March, 5, 4, 0)) {
		t.Errorf("start = %s, want the tithi span start", ev.Start)
	}
	if !ev.End.Equal(utc(2024, time.March, 6, 6, 0)) {
		t.Errorf("end = %s, want the tithi span end", ev.End)
	}
}

func TestTimedVratams_PradoshamWindow(t *testing.T) {
	sunrise := utc(2024, time.March, 7, 6, 0)
	sunset := utc(2024, time.March, 7, 18, 0)

	// Tithi 13 starts at noon: absent at sunrise but prevailing 45
	// minutes before sunset.
	series := mustSeries(t, []astro.Transition{
		{At: utc(2024, time.March, 6, 12, 0), Value: 12},
		{At: utc(2024, time.March, 7, 12, 0), Value: 13},
		{At: utc(2024, time.March, 8, 12, 0), Value: 14},
	})

	events := TimedVratams(sunrise, sunset, series)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Name != "Pradosham (Shukla)" {
		t.Errorf("name = %q, want Pradosham (Shukla)", events[0].Name)
	}
}

func TestTimedVratams_SankataharaChathurthi(t *testing.T) {
	sunrise := utc(2024, time.March, 9, 6, 0)
	sunset := utc(2024, time.March, 9, 18, 0)

	// Tithi 19 begins in the evening and prevails at 21:00 local.
	series := mustSeries(t, []astro.Transition{
		{At: utc(2024, time.March, 8, 19, 0), Value: 18},
		{At: utc(2024, time.March, 9, 19, 30), Value: 19},
		{At: utc(2024, time.March, 10, 20, 0), Value: 20},
	})

	events := TimedVratams(sunrise, sunset, series)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Name != "Sankatahara Chathurthi" {
		t.Errorf("name = %q, want Sankatahara Chathurthi", ev.Name)
	}
	if !ev.Start.Equal(utc(2024, time.March, 9, 19, 30)) {
		t.Errorf("start = %s, want 19:30", ev.Start)
	}
}

func TestTimedVratams_QuietDay(t *testing.T) {
	sunrise := utc(2024, time.March, 11, 6, 0)
	sunset := utc(2024, time.March, 11, 18, 0)
	series := mustSeries(t, []astro.Transition{
		{At: utc(2024, time.March, 11, 4, 0), Value: 2},
		{At: utc(2024, time.March, 12, 3, 0), Value: 3},
	})

	if events := TimedVratams(sunrise, sunset, series); len(events) != 0 {
		t.Errorf("got %d events on a quiet day, want 0", len(events))
	}
}
