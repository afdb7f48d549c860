package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
	"github.com/svaidyanathan/panchangam/internal/panchang"
)

// fmtTime renders a clock reading the way the published almanacs do:
// "7.15 AM", "12 Noon", "12.30 PM".
func fmtTime(t time.Time, tz *time.Location) string {
	lt := t.In(tz)
	h, m := lt.Hour(), lt.Minute()
	if h == 12 && m == 0 {
		return "12 Noon"
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d.%02d %s", h12, m, suffix)
}

func fmtWindow(w panchang.Window, tz *time.Location) string {
	return fmtTime(w.Start, tz) + " - " + fmtTime(w.End, tz)
}

func fmtWindows(ws []panchang.Window, tz *time.Location) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = fmtWindow(w, tz)
	}
	return strings.Join(parts, ", ")
}

// narrate renders a value that may change during the day as
// "upto 7.15 PM Dvitiya, thereafter Tritiya". Transitions that merely
// restate the current value (a table entry coinciding with sunrise) are
// skipped.
func narrate(startVal int, trans []astro.Transition, tz *time.Location, name func(int) string) string {
	var b strings.Builder
	cur := startVal
	for _, tr := range trans {
		if tr.Value == cur {
			continue
		}
		fmt.Fprintf(&b, "upto %s %s, thereafter ", fmtTime(tr.At, tz), name(cur))
		cur = tr.Value
	}
	b.WriteString(name(cur))
	return b.String()
}

// dayRender bundles everything needed to write one day's entry text.
type dayRender struct {
	Loc        panchang.Location
	Attr       panchang.DailyAttributes
	Sky        *panchang.Sky
	Samvatsara string

	SolarMonth panchang.SolarMonthInfo
	HaveSolar  bool
	LunarMonth int
	HaveLunar  bool

	Festivals    []panchang.FestivalHit
	SraddhaTithi int
	HaveSraddha  bool
}

// title is the calendar summary line. Tamil targets lead with the solar
// day, Telugu targets with the lunar month and tithi. Full and new moon
// days get their moon glyphs.
func (r dayRender) title() string {
	lang := r.Loc.Lang
	var t string
	switch {
	case r.Loc.Style == panchang.StyleTamil && r.HaveSolar:
		t = fmt.Sprintf("%s %d", panchang.SolarMonthName(r.SolarMonth.Month, lang), r.SolarMonth.Day)
	case r.Loc.Style == panchang.StyleTelugu && r.HaveLunar:
		t = fmt.Sprintf("%s, %s", panchang.LunarMonthName(r.LunarMonth, lang),
			panchang.TithiName(r.Attr.Tithi, lang))
	default:
		t = panchang.TithiName(r.Attr.Tithi, lang)
	}
	switch r.Attr.Tithi {
	case 15:
		t += " \U0001F315"
	case 30:
		t += " \U0001F311"
	}
	return t
}

// description is the multi-line panchangam body, one labelled line per
// attribute in the order the printed almanacs use.
func (r dayRender) description() string {
	lang := r.Loc.Lang
	tz := r.Loc.TZ
	a := r.Attr
	var b strings.Builder

	line := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(panchang.Label(label, lang))
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	line("Year", r.Samvatsara)
	line("Ayanam", a.Ayanam.String())
	if r.HaveSolar {
		line("Ruthu", panchang.RituName(r.SolarMonth.Month, lang))
		line("Month", fmt.Sprintf("%s %d", panchang.SolarMonthName(r.SolarMonth.Month, lang), r.SolarMonth.Day))
	}
	if r.HaveLunar && r.Loc.Style == panchang.StyleTelugu {
		line("Month", panchang.LunarMonthName(r.LunarMonth, lang))
	}
	line("Paksham", panchang.PakshaName(panchang.Paksha(a.Tithi), lang))
	line("Tithi", narrate(a.Tithi, a.TithiTransitions, tz, func(i int) string {
		return panchang.TithiName(i, lang)
	}))
	line("Day", panchang.WeekdayName(a.Weekday, lang))
	nak := narrate(a.Nakshatra, a.NakshatraTransitions, tz, func(i int) string {
		return panchang.NakshatraName(i, lang)
	})
	line("Nakshatra", fmt.Sprintf("%s (%s %d)", nak, panchang.Label("Pada", lang), a.Pada))
	line("Yoga", panchang.YogaName(a.Yoga, lang))
	line("Karana", panchang.KaranaName(a.Karana))
	line("YogaQuality", yogaQualityText(panchang.DayYogaQuality(a.Weekday, a.Nakshatra), lang))

	if w, ok := panchang.RahuKalam(a.Weekday, a.Sunrise, a.Sunset); ok {
		line("Rahu", fmtWindow(w, tz))
	}
	if w, ok := panchang.YamaGandam(a.Weekday, a.Sunrise, a.Sunset); ok {
		line("Yama", fmtWindow(w, tz))
	}
	if w, ok := panchang.GulikaKalam(a.Weekday, a.Sunrise, a.Sunset); ok {
		line("Kuligai", fmtWindow(w, tz))
	}
	if ws := panchang.GowriNallaNeram(a.Weekday, a.Sunrise, a.Sunset); len(ws) > 0 {
		line("Gowri", fmtWindows(ws, tz))
	}
	if ws := panchang.Durmuhurtham(a.Weekday, a.Sunrise, a.Sunset); len(ws) > 0 {
		line("Durmuhurtham", fmtWindows(ws, tz))
	}
	if w, ok := panchang.AbhijitMuhurtham(a.Sunrise, a.Sunset); ok {
		line("Abhijit", fmtWindow(w, tz))
	}

	line("Sunrise", fmtTime(a.Sunrise, tz))
	line("Sunset", fmtTime(a.Sunset, tz))
	if !a.Moonrise.IsZero() {
		line("Moonrise", fmtTime(a.Moonrise, tz))
	}
	line("Chandrashtamam", panchang.RasiName(panchang.ChandrashtamamRasi(a.MoonRasi), lang))

	dir, remedy := panchang.Soolam(a.Weekday)
	line("Soolam", dir)
	line("Pariharam", remedy)

	if r.HaveSraddha {
		line("Sradhdha", panchang.TithiName(r.SraddhaTithi, lang))
	}

	for _, hit := range r.Festivals {
		b.WriteString("\U0001F389 ")
		b.WriteString(hit.Festival.Name)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// yogaQualityText localizes the day-quality name. Telugu usage prefers
// the -mu noun ending.
func yogaQualityText(q panchang.YogaQuality, lang panchang.Lang) string {
	s := q.String()
	if lang == panchang.LangTelugu {
		s = strings.ReplaceAll(s, "Yogam", "Yogamu")
	}
	return s
}

// festivalDescription is the body text for a standalone festival entry.
func festivalDescription(f panchang.Festival) string {
	var parts []string
	if f.Deity != "" {
		parts = append(parts, "Deity: "+f.Deity)
	}
	if f.Food != "" {
		parts = append(parts, "Offering: "+f.Food)
	}
	return strings.Join(parts, "\n")
}
