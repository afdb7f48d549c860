package panchang

import "time"

// Festival carries the display metadata of an observance.
type Festival struct {
	Name  string
	Deity string
	Food  string
}

// DayFacts is the per-day state the festival rules match against.
// Index fields are taken at the day's sunrise. Unknown positions are -1
// (months) or 0 (solar day): a rule requiring them then cannot match.
type DayFacts struct {
	Date       Date
	Weekday    time.Weekday
	Tithi      int // [1, 30] at sunrise
	Nakshatra  int // [1, 27] at sunrise
	SolarMonth int // [0, 11], -1 when not computed
	SolarDay   int // ordinal within the solar month, 0 when not computed
	LunarMonth int // [0, 11], -1 when not computed
}

// Rule is one festival criterion. Each variant carries exactly the
// fields its match kind needs; evaluation is a plain dynamic dispatch in
// declared list order.
type Rule interface {
	Details() Festival
	Matches(f DayFacts) bool
}

// SolarDateRule matches a fixed day of a solar month (e.g. Thai 1).
type SolarDateRule struct {
	Festival Festival
	Month    int // solar month index [0, 11]
	Day      int // ordinal day within the month
}

func (r SolarDateRule) Details() Festival { return r.Festival }

func (r SolarDateRule) Matches(f DayFacts) bool {
	return f.SolarMonth >= 0 && f.SolarMonth == r.Month && f.SolarDay == r.Day
}

// LunarTithiRule matches a tithi of a paksha of a lunar month.
type LunarTithiRule struct {
	Festival Festival
	Month    int // lunar month index [0, 11]
	Paksha   int // 0 waxing, 1 waning
	Tithi    int // [1, 15] within the paksha
}

func (r LunarTithiRule) Details() Festival { return r.Festival }

func (r LunarTithiRule) Matches(f DayFacts) bool {
	return f.LunarMonth >= 0 &&
		f.LunarMonth == r.Month &&
		Paksha(f.Tithi) == r.Paksha &&
		TithiInPaksha(f.Tithi) == r.Tithi
}

// NakshatraRule matches a nakshatra at sunrise co-occurring with a
// required solar month (e.g. Krithika in Karthigai).
type NakshatraRule struct {
	Festival  Festival
	Nakshatra int // [1, 27]
	Month     int // required solar month index [0, 11]
}

func (r NakshatraRule) Details() Festival { return r.Festival }

func (r NakshatraRule) Matches(f DayFacts) bool {
	return f.SolarMonth >= 0 && f.SolarMonth == r.Month && f.Nakshatra == r.Nakshatra
}

// LastFridayBeforeFullMoonRule matches the last Friday of the waxing
// fortnight before the full moon of a lunar month (Varalakshmi Vratam):
// a Friday with at most six waxing days left until tithi 15.
type LastFridayBeforeFullMoonRule struct {
	Festival Festival
	Month    int // lunar month index [0, 11]
}

func (r LastFridayBeforeFullMoonRule) Details() Festival { return r.Festival }

func (r LastFridayBeforeFullMoonRule) Matches(f DayFacts) bool {
	if f.LunarMonth < 0 || f.LunarMonth != r.Month || Paksha(f.Tithi) != 0 {
		return false
	}
	if f.Weekday != time.Friday {
		return false
	}
	daysToFullMoon := 15 - TithiInPaksha(f.Tithi)
	return daysToFullMoon >= 0 && daysToFullMoon < 7
}

// Festivals observed under both regional styles.
var commonRules = []Rule{
	LunarTithiRule{Festival{"Deepavali", "Goddess Lakshmi", "Sweets, Murukku"}, 6, 1, 14},
	LunarTithiRule{Festival{"Vinayaka Chavithi", "Lord Ganesha", "Kozhukattai / Kudumulu"}, 5, 0, 4},
	LunarTithiRule{Festival{"Vijaya Dasami", "Goddess Durga", "Sweets"}, 6, 0, 10},
}

var tamilRules = append(append([]Rule{}, commonRules...),
	SolarDateRule{Festival{"Thai Pongal", "Sun God", "Sakkarai Pongal"}, 9, 1},
	SolarDateRule{Festival{"Tamil Puthandu", "N/A", "Mango Pachadi, Vadai, Payasam"}, 0, 1},
	NakshatraRule{Festival{"Karthigai Deepam", "Lord Shiva/Murugan", "Pori Urundai, Appam"}, 3, 7},
	NakshatraRule{Festival{"Thai Poosam", "Lord Murugan", "Panjamirtham"}, 8, 9},
	NakshatraRule{Festival{"Panguni Uthiram", "Divine Couples", "Neer Mor, Panakam"}, 12, 11},
)

var teluguRules = append(append([]Rule{}, commonRules...),
	LunarTithiRule{Festival{"Ugadi", "N/A", "Ugadi Pachadi"}, 0, 0, 1},
	LunarTithiRule{Festival{"Srirama Navami", "Lord Rama", "Panakam, Vadapappu"}, 0, 0, 9},
	LunarTithiRule{Festival{"Vaikunta Ekadashi", "Lord Vishnu", "Fasting / Light Food"}, 8, 0, 11},
	LastFridayBeforeFullMoonRule{Festival{"Varalakshmi Vratam", "Goddess Lakshmi", "Burelu, Garelu, Pulihora"}, 4},
)

// RulesFor returns the fixed, ordered rule list for a regional style.
// The slice is shared; callers must not modify it.
func RulesFor(style Style) []Rule {
	if style == StyleTelugu {
		return teluguRules
	}
	return tamilRules
}

// FestivalHit records a rule matching a civil day.
type FestivalHit struct {
	Festival Festival
	Date     Date
}

// EvaluateRules matches every rule against the day's facts, in declared
// order. Rules are independent; several may hit the same day.
func EvaluateRules(rules []Rule, f DayFacts) []FestivalHit {
	var hits []FestivalHit
	for _, r := range rules {
		if r.Matches(f) {
			hits = append(hits, FestivalHit{Festival: r.Details(), Date: f.Date})
		}
	}
	return hits
}

// VratamEvent is a timed observance: an exact [Start, End) span rather
// than a civil day.
type VratamEvent struct {
	Name  string
	Start time.Time
	End   time.Time
}

// pradoshamLead is how far before sunset the pradosha kalam midpoint is
// sampled.
const pradoshamLead = 45 * time.Minute

// TimedVratams resolves the timed observances whose governing tithi
// prevails at that observance's reference instant: Ekadashi and Shukla
// Sashti at sunrise, Pradosham close to sunset, Sankatahara Chathurthi
// at 21:00 local. A hit expands to the governing tithi's full span from
// the transition table.
func TimedVratams(sunrise, sunset time.Time, tithi *SteppedSeries) []VratamEvent {
	var out []VratamEvent

	add := func(name string, target int, ref time.Time) {
		if start, end, ok := tithi.SpanOf(target, ref); ok {
			out = append(out, VratamEvent{Name: name, Start: start, End: end})
		}
	}

	// Sunrise rule: Ekadashi of either paksha, and Shukla Sashti.
	switch t := tithi.ValueAt(sunrise); t {
	case 11:
		add("Ekadashi (Shukla)", 11, sunrise)
	case 26:
		add("Ekadashi (Krishna)", 26, sunrise)
	case 6:
		add("Sashti (Shukla)", 6, sunrise)
	}

	// Pradosham: trayodashi prevailing in the pradosha kalam.
	pradosham := sunset.Add(-pradoshamLead)
	switch t := tithi.ValueAt(pradosham); t {
	case 13:
		add("Pradosham (Shukla)", 13, pradosham)
	case 28:
		add("Pradosham (Krishna)", 28, pradosham)
	}

	// Sankatahara Chathurthi: Krishna chathurthi prevailing at night.
	y, m, d := sunset.Date()
	night := time.Date(y, m, d, 21, 0, 0, 0, sunset.Location())
	if tithi.ValueAt(night) == 19 {
		add("Sankatahara Chathurthi", 19, night)
	}

	return out
}
