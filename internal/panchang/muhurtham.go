package panchang

import "time"

// Window is a half-open [Start, End) interval of the day.
type Window struct {
	Start time.Time
	End   time.Time
}

// daylightSegment returns the idx-th of parts equal segments of the
// sunrise-sunset interval, ok=false for a degenerate interval. The last
// segment is clamped to end exactly at sunset.
func daylightSegment(sunrise, sunset time.Time, parts, idx int) (Window, bool) {
	l := sunset.Sub(sunrise)
	if l <= 0 {
		return Window{}, false
	}
	part := l / time.Duration(parts)
	w := Window{
		Start: sunrise.Add(part * time.Duration(idx)),
		End:   sunrise.Add(part * time.Duration(idx+1)),
	}
	if idx >= parts-1 {
		w.End = sunset
	}
	return w, true
}

// Weekday-indexed eighths of daylight for the three kalam windows.
var (
	rahuSegment = map[time.Weekday]int{
		time.Sunday: 7, time.Monday: 1, time.Tuesday: 6, time.Wednesday: 4,
		time.Thursday: 5, time.Friday: 3, time.Saturday: 2,
	}
	yamaSegment = map[time.Weekday]int{
		time.Sunday: 4, time.Monday: 3, time.Tuesday: 2, time.Wednesday: 1,
		time.Thursday: 0, time.Friday: 6, time.Saturday: 5,
	}
	gulikaSegment = map[time.Weekday]int{
		time.Sunday: 5, time.Monday: 4, time.Tuesday: 3, time.Wednesday: 2,
		time.Thursday: 1, time.Friday: 0, time.Saturday: 6,
	}
)

// RahuKalam returns the Rahu Kalam window for the weekday.
func RahuKalam(wd time.Weekday, sunrise, sunset time.Time) (Window, bool) {
	return daylightSegment(sunrise, sunset, 8, rahuSegment[wd])
}

// YamaGandam returns the Yama Gandam window for the weekday.
func YamaGandam(wd time.Weekday, sunrise, sunset time.Time) (Window, bool) {
	return daylightSegment(sunrise, sunset, 8, yamaSegment[wd])
}

// GulikaKalam returns the Gulika Kalam window for the weekday.
func GulikaKalam(wd time.Weekday, sunrise, sunset time.Time) (Window, bool) {
	return daylightSegment(sunrise, sunset, 8, gulikaSegment[wd])
}

// Gowri slot qualities rotate by weekday over the eight daylight slots.
var gowriSequence = map[time.Weekday][8]string{
	time.Sunday:    {"Uthi", "Amirtha", "Rogam", "Laabam", "Dhanam", "Sugam", "Soram", "Visham"},
	time.Monday:    {"Amirtha", "Rogam", "Laabam", "Dhanam", "Sugam", "Soram", "Visham", "Uthi"},
	time.Tuesday:   {"Rogam", "Laabam", "Dhanam", "Sugam", "Soram", "Visham", "Uthi", "Amirtha"},
	time.Wednesday: {"Laabam", "Dhanam", "Sugam", "Soram", "Visham", "Uthi", "Amirtha", "Rogam"},
	time.Thursday:  {"Dhanam", "Sugam", "Soram", "Visham", "Uthi", "Amirtha", "Rogam", "Laabam"},
	time.Friday:    {"Sugam", "Soram", "Visham", "Uthi", "Amirtha", "Rogam", "Laabam", "Dhanam"},
	time.Saturday:  {"Soram", "Visham", "Uthi", "Amirtha", "Rogam", "Laabam", "Dhanam", "Sugam"},
}

var goodGowri = map[string]bool{
	"Uthi": true, "Amirtha": true, "Laabam": true, "Dhanam": true, "Sugam": true,
}

// GowriNallaNeram returns up to two auspicious Gowri windows: the first
// good slot starting before local noon and the first starting at or
// after it. Nil for a degenerate daylight interval.
func GowriNallaNeram(wd time.Weekday, sunrise, sunset time.Time) []Window {
	if sunset.Sub(sunrise) <= 0 {
		return nil
	}
	seq := gowriSequence[wd]
	var good []Window
	for i, q := range seq {
		if !goodGowri[q] {
			continue
		}
		if w, ok := daylightSegment(sunrise, sunset, 8, i); ok {
			good = append(good, w)
		}
	}
	if len(good) == 0 {
		return nil
	}

	y, m, d := sunrise.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, sunrise.Location())

	var morning, evening *Window
	for i := range good {
		w := good[i]
		if morning == nil && w.Start.Before(noon) {
			morning = &w
		}
		if evening == nil && !w.Start.Before(noon) {
			evening = &w
		}
	}
	switch {
	case morning != nil && evening != nil:
		return []Window{*morning, *evening}
	case morning != nil:
		return []Window{*morning}
	default:
		return []Window{good[0]}
	}
}

// Durmuhurtham segment indexes (of fifteen daylight parts) per weekday.
var durmuhurthamSegments = map[time.Weekday][]int{
	time.Sunday:    {13},
	time.Monday:    {8},
	time.Tuesday:   {2, 6},
	time.Wednesday: {5},
	time.Thursday:  {9},
	time.Friday:    {3, 8},
	time.Saturday:  {0},
}

// Durmuhurtham returns the day's inauspicious muhurtha windows, zero to
// two per weekday.
func Durmuhurtham(wd time.Weekday, sunrise, sunset time.Time) []Window {
	var out []Window
	for _, idx := range durmuhurthamSegments[wd] {
		if w, ok := daylightSegment(sunrise, sunset, 15, idx); ok {
			out = append(out, w)
		}
	}
	return out
}

// AbhijitMuhurtham returns the fixed eighth of fifteen daylight parts,
// the midday auspicious window.
func AbhijitMuhurtham(sunrise, sunset time.Time) (Window, bool) {
	return daylightSegment(sunrise, sunset, 15, 7)
}

// YogaQuality classifies the day by weekday and the nakshatra at
// sunrise.
type YogaQuality int

const (
	// SiddhaYogam is the neutral-favorable default.
	SiddhaYogam YogaQuality = iota
	// AmirthaYogam marks an especially auspicious pairing.
	AmirthaYogam
	// MaranaYogam marks an inauspicious pairing.
	MaranaYogam
)

func (q YogaQuality) String() string {
	switch q {
	case AmirthaYogam:
		return "Amirtha Yogam"
	case MaranaYogam:
		return "Marana Yogam"
	default:
		return "Siddha Yogam"
	}
}

// The two disjoint weekday-keyed nakshatra sets behind DayYogaQuality.
var (
	maranaNakshatras = map[time.Weekday][]int{
		time.Sunday:    {2, 3, 10, 16},
		time.Monday:    {14, 23, 20},
		time.Tuesday:   {21, 24, 26},
		time.Wednesday: {1, 9, 19, 23},
		time.Thursday:  {5, 10, 16},
		time.Friday:    {4, 18, 20},
		time.Saturday:  {27, 11, 12, 13},
	}
	amirthaNakshatras = map[time.Weekday][]int{
		time.Sunday:    {13, 19},
		time.Monday:    {5},
		time.Tuesday:   {1},
		time.Wednesday: {17},
		time.Thursday:  {8},
		time.Friday:    {27},
		time.Saturday:  {4},
	}
)

// DayYogaQuality classifies (weekday, nakshatra at sunrise); Marana
// takes precedence, then Amirtha, default Siddha.
func DayYogaQuality(wd time.Weekday, nakshatra int) YogaQuality {
	for _, n := range maranaNakshatras[wd] {
		if n == nakshatra {
			return MaranaYogam
		}
	}
	for _, n := range amirthaNakshatras[wd] {
		if n == nakshatra {
			return AmirthaYogam
		}
	}
	return SiddhaYogam
}

// Weekday-fixed travel direction to avoid and its remedy.
var soolamTable = map[time.Weekday][2]string{
	time.Sunday:    {"West", "Jaggery / Vellam"},
	time.Monday:    {"East", "Curd / Thayir"},
	time.Tuesday:   {"North", "Milk / Paal"},
	time.Wednesday: {"North", "Milk / Paal"},
	time.Thursday:  {"South", "Oil / Thailam"},
	time.Friday:    {"West", "Jaggery / Vellam"},
	time.Saturday:  {"East", "Curd / Thayir"},
}

// Soolam returns the inauspicious travel direction and its pariharam
// (remedy) for the weekday.
func Soolam(wd time.Weekday) (direction, remedy string) {
	v := soolamTable[wd]
	return v[0], v[1]
}
