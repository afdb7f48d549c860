package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
	"github.com/svaidyanathan/panchangam/internal/panchang"
)

func TestFmtTime(t *testing.T) {
	tests := []struct {
		h, m int
		want string
	}{
		{7, 15, "7.15 AM"},
		{0, 5, "12.05 AM"},
		{12, 0, "12 Noon"},
		{12, 30, "12.30 PM"},
		{18, 45, "6.45 PM"},
		{23, 59, "11.59 PM"},
	}
	for _, tt := range tests {
		at := time.Date(2024, time.April, 14, tt.h, tt.m, 0, 0, time.UTC)
		if got := fmtTime(at, time.UTC); got != tt.want {
			t.Errorf("fmtTime(%02d:%02d) = %q, want %q", tt.h, tt.m, got, tt.want)
		}
	}
}

func TestFmtTime_ConvertsZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}
	at := time.Date(2024, time.April, 14, 0, 45, 0, 0, time.UTC) // 06:15 IST
	if got := fmtTime(at, kolkata); got != "6.15 AM" {
		t.Errorf("fmtTime in IST = %q, want 6.15 AM", got)
	}
}

func TestNarrate(t *testing.T) {
	name := func(i int) string { return []string{"", "Prathamai", "Dvithiyai", "Trithiyai"}[i] }

	t.Run("no transitions", func(t *testing.T) {
		if got := narrate(1, nil, time.UTC, name); got != "Prathamai" {
			t.Errorf("narrate = %q", got)
		}
	})

	t.Run("one transition", func(t *testing.T) {
		trans := []astro.Transition{
			{At: time.Date(2024, time.April, 14, 19, 15, 0, 0, time.UTC), Value: 2},
		}
		want := "upto 7.15 PM Prathamai, thereafter Dvithiyai"
		if got := narrate(1, trans, time.UTC, name); got != want {
			t.Errorf("narrate = %q, want %q", got, want)
		}
	})

	t.Run("restating transition skipped", func(t *testing.T) {
		trans := []astro.Transition{
			{At: time.Date(2024, time.April, 14, 6, 0, 0, 0, time.UTC), Value: 1},
			{At: time.Date(2024, time.April, 14, 19, 15, 0, 0, time.UTC), Value: 2},
		}
		want := "upto 7.15 PM Prathamai, thereafter Dvithiyai"
		if got := narrate(1, trans, time.UTC, name); got != want {
			t.Errorf("narrate = %q, want %q", got, want)
		}
	})
}

func renderFixture(style panchang.Style) dayRender {
	lang := panchang.LangTamil
	if style == panchang.StyleTelugu {
		lang = panchang.LangTelugu
	}
	loc := panchang.Location{
		Key: "test", Name: "Test", TZ: time.UTC, Style: style, Lang: lang,
	}
	d := panchang.NewDate(2024, time.April, 14)
	return dayRender{
		Loc: loc,
		Attr: panchang.DailyAttributes{
			Date:        d,
			Weekday:     d.Weekday(),
			Sunrise:     time.Date(2024, time.April, 14, 6, 0, 0, 0, time.UTC),
			Sunset:      time.Date(2024, time.April, 14, 18, 0, 0, 0, time.UTC),
			NextSunrise: time.Date(2024, time.April, 15, 6, 0, 0, 0, time.UTC),
			Tithi:       6,
			Nakshatra:   3,
			Pada:        2,
			Yoga:        4,
			Karana:      11,
		},
		Samvatsara: "Krodhi",
		SolarMonth: panchang.SolarMonthInfo{Month: 0, Day: 1},
		HaveSolar:  true,
		LunarMonth: 0,
		HaveLunar:  true,
	}
}

func TestDayRenderTitle(t *testing.T) {
	r := renderFixture(panchang.StyleTamil)
	if got := r.title(); got != "Chithirai 1" {
		t.Errorf("tamil title = %q, want Chithirai 1", got)
	}

	r.Attr.Tithi = 15
	if got := r.title(); !strings.HasSuffix(got, "\U0001F315") {
		t.Errorf("full moon title %q missing glyph", got)
	}
	r.Attr.Tithi = 30
	if got := r.title(); !strings.HasSuffix(got, "\U0001F311") {
		t.Errorf("new moon title %q missing glyph", got)
	}

	te := renderFixture(panchang.StyleTelugu)
	if got := te.title(); !strings.HasPrefix(got, "Chaitramu") {
		t.Errorf("telugu title = %q, want lunar month lead", got)
	}
}

func TestDayRenderDescription(t *testing.T) {
	r := renderFixture(panchang.StyleTamil)
	desc := r.description()

	for _, want := range []string{
		"Varudam: Krodhi",
		"Masam: Chithirai 1",
		"Naal: Nyayiru",
		"Surya Udhayam: 6.00 AM",
		"Surya Asthamanam: 6.00 PM",
		"Raghu Kalam:",
		"Soolam: West",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("description missing %q\n%s", want, desc)
		}
	}

	// No moonrise was set, so the line is absent.
	if strings.Contains(desc, "Chandrodayam") {
		t.Error("description should omit moonrise when unknown")
	}
}

func TestYogaQualityText(t *testing.T) {
	if got := yogaQualityText(panchang.SiddhaYogam, panchang.LangTamil); got != "Siddha Yogam" {
		t.Errorf("tamil = %q", got)
	}
	if got := yogaQualityText(panchang.AmirthaYogam, panchang.LangTelugu); got != "Amirtha Yogamu" {
		t.Errorf("telugu = %q, want -mu ending", got)
	}
}

func TestFestivalDescription(t *testing.T) {
	f := panchang.Festival{Name: "Thai Pongal", Deity: "Sun God", Food: "Sakkarai Pongal"}
	got := festivalDescription(f)
	if !strings.Contains(got, "Sun God") || !strings.Contains(got, "Sakkarai Pongal") {
		t.Errorf("festivalDescription = %q", got)
	}
	if festivalDescription(panchang.Festival{Name: "Plain"}) != "" {
		t.Error("festival without metadata should have empty description")
	}
}
