package panchang

import "time"

// Naming tables for the two supported languages. One-based tables carry
// an "Unknown" sentinel at index 0 so calendrical indexes map directly.

var tithiNames = map[Lang][31]string{
	LangTamil: {
		"Unknown", "Prathamai", "Dwitiyai", "Tritiyai", "Chathurthi", "Panchami", "Shashti", "Saptami", "Ashtami", "Navami", "Dashami", "Ekadashi", "Dwadashi", "Trayodashi", "Chadhurdasi", "Pournami",
		"Prathamai", "Dwitiyai", "Tritiyai", "Chathurthi", "Panchami", "Shashti", "Saptami", "Ashtami", "Navami", "Dashami", "Ekadashi", "Dwadashi", "Trayodashi", "Chadhurdasi", "Amavasai",
	},
	LangTelugu: {
		"Unknown", "Padyami", "Vidiya", "Thadiya", "Chavithi", "Panchami", "Shashti", "Saptami", "Ashtami", "Navami", "Dashami", "Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Pournami",
		"Padyami", "Vidiya", "Thadiya", "Chavithi", "Panchami", "Shashti", "Saptami", "Ashtami", "Navami", "Dashami", "Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Amavasya",
	},
}

var nakshatraNames = map[Lang][28]string{
	LangTamil: {
		"Unknown", "Ashwini", "Bharani", "Karthigai", "Rohini", "Mrigashirsham", "Thiruvathirai", "Punarpoosam", "Poosam", "Aayilyam",
		"Magam", "Pooram", "Uthiram", "Hastham", "Chitthirai", "Swathi", "Visakam", "Anusham", "Kettai", "Moolam", "Pooradam",
		"Uthiradam", "Thiruvonam", "Avittam", "Sathayam", "Poorattathi", "Uthirattathi", "Revathi",
	},
	LangTelugu: {
		"Unknown", "Aswini", "Bharani", "Kruthika", "Rohini", "Mrigashira", "Arudra", "Punarvasu", "Pushyami", "Ashlesha",
		"Makha", "Pubba", "Uttara", "Hasta", "Chitta", "Swathi", "Vishakha", "Anuradha", "Jyeshta", "Moola", "Poorvashada",
		"Uttarashada", "Shravana", "Dhanishta", "Shatabhisham", "Poorvabhadra", "Uttarabhadra", "Revathi",
	},
}

var yogaNames = map[Lang][28]string{
	LangTamil: {
		"Unknown", "Vishkambha", "Priti", "Aayushman", "Saubhagya", "Shobhana", "Atiganda", "Sukarman", "Dhriti", "Shoola", "Ganda",
		"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva", "Siddha",
		"Sadhya", "Shubha", "Shukla", "Brahma", "Indra", "Vaidhriti",
	},
	LangTelugu: {
		"Unknown", "Vishkambha", "Preethi", "Aayushman", "Saubhagya", "Shobhana", "Atiganda", "Sukarman", "Dhruthi", "Shoola", "Ganda",
		"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva", "Siddha",
		"Sadhya", "Shubha", "Shukla", "Brahma", "Indra", "Vaidhriti",
	},
}

var rasiNames = map[Lang][12]string{
	LangTamil:  {"Mesham", "Rishabam", "Mithunam", "Katakam", "Simham", "Kanni", "Thulam", "Virutchigam", "Dhanus", "Makaram", "Kumbham", "Meenam"},
	LangTelugu: {"Mesham", "Vrushabham", "Mithunam", "Karkatakam", "Simham", "Kanya", "Thula", "Vrushchikam", "Dhanu", "Makaram", "Kumbham", "Meenam"},
}

var solarMonthNames = map[Lang][12]string{
	LangTamil:  {"Chithirai", "Vaikasi", "Aani", "Aadi", "Aavani", "Purattasi", "Aippasi", "Karthigai", "Margazhi", "Thai", "Maasi", "Panguni"},
	LangTelugu: {"Mesham", "Vrushabham", "Mithunam", "Karkatakam", "Simham", "Kanya", "Thula", "Vrushchikam", "Dhanu", "Makaram", "Kumbham", "Meenam"},
}

var lunarMonthNames = map[Lang][12]string{
	LangTamil:  {"Chaitra", "Vaisakha", "Jyeshtha", "Ashada", "Sravana", "Bhadrapada", "Asvayuja", "Kartika", "Margashira", "Pushya", "Magha", "Phalguna"},
	LangTelugu: {"Chaitramu", "Vaishakhamu", "Jyeshthamu", "Ashadhamu", "Sravanamu", "Bhadrapadamu", "Ashwayujamu", "Karthikamu", "Margashiramu", "Pushyamu", "Maghamu", "Phalgunamu"},
}

// Weekday names indexed by time.Weekday (Sunday first).
var weekdayNames = map[Lang][7]string{
	LangTamil:  {"Nyayiru", "Thingal", "Sevvai", "Budhan", "Vyazhan", "Velli", "Sani"},
	LangTelugu: {"Bhanuvaram", "Somavaram", "Mangalavaram", "Budhavaram", "Guruvaram", "Shukravaram", "Shanivaram"},
}

var pakshaNames = map[Lang][2]string{
	LangTamil:  {"Shukla Paksham", "Krushna Paksham"},
	LangTelugu: {"Shukla Paksham", "Krishna Paksham"},
}

var rituNames = map[Lang][6]string{
	LangTamil:  {"Vasantha Ruthu", "Grishma Ruthu", "Varsha Ruthu", "Sarath Ruthu", "Hemantha Ruthu", "Shishira Ruthu"},
	LangTelugu: {"Vasantha Ruthuvu", "Grishma Ruthuvu", "Varsha Ruthuvu", "Sarad Ruthuvu", "Hemantha Ruthuvu", "Shishira Ruthuvu"},
}

// Display labels for rendered entries, keyed by a stable English key.
var labels = map[string]map[Lang]string{
	"Year":           {LangTamil: "Varudam", LangTelugu: "Samvatsaram"},
	"Ayanam":         {LangTamil: "Ayanam", LangTelugu: "Ayanam"},
	"Ruthu":          {LangTamil: "Ruthu", LangTelugu: "Ruthuvu"},
	"Month":          {LangTamil: "Masam", LangTelugu: "Masam"},
	"Paksham":        {LangTamil: "Paksham", LangTelugu: "Paksham"},
	"Tithi":          {LangTamil: "Thithi", LangTelugu: "Tithi"},
	"Day":            {LangTamil: "Naal", LangTelugu: "Varam"},
	"Nakshatra":      {LangTamil: "Nakshatthiram", LangTelugu: "Nakshatram"},
	"Yoga":           {LangTamil: "Yogam", LangTelugu: "Yogam"},
	"Karana":         {LangTamil: "Karanam", LangTelugu: "Karanam"},
	"YogaQuality":    {LangTamil: "Yogam Vakai", LangTelugu: "Yogam Type"},
	"Rahu":           {LangTamil: "Raghu Kalam", LangTelugu: "Rahu Kalam"},
	"Yama":           {LangTamil: "Yemakandam", LangTelugu: "Yamagandam"},
	"Kuligai":        {LangTamil: "Kuligai", LangTelugu: "Gulika"},
	"Gowri":          {LangTamil: "Nalla Neram (Gowri)", LangTelugu: "Subha Samayam"},
	"Durmuhurtham":   {LangTamil: "Durmuhurtham", LangTelugu: "Durmuhurtham"},
	"Abhijit":        {LangTamil: "Abhijit", LangTelugu: "Abhijit Muhurtham"},
	"Sunrise":        {LangTamil: "Surya Udhayam", LangTelugu: "Suryodayam"},
	"Sunset":         {LangTamil: "Surya Asthamanam", LangTelugu: "Suryastamayam"},
	"Moonrise":       {LangTamil: "Chandrodayam", LangTelugu: "Chandrodayam"},
	"Chandrashtamam": {LangTamil: "Chandrashtamam", LangTelugu: "Chandrashtamam"},
	"Soolam":         {LangTamil: "Soolam", LangTelugu: "Soola"},
	"Pariharam":      {LangTamil: "Pariharam", LangTelugu: "Pariharam"},
	"Sradhdha":       {LangTamil: "Sradhdha Thithi", LangTelugu: "Taddinam Tithi"},
	"Location":       {LangTamil: "Idam", LangTelugu: "Pradesham"},
	"Pada":           {LangTamil: "Paadham", LangTelugu: "Padam"},
}

// TithiName returns the lunar day name for index [1, 30].
func TithiName(i int, lang Lang) string { return lookup31(tithiNames, i, lang) }

// NakshatraName returns the lunar mansion name for index [1, 27].
func NakshatraName(i int, lang Lang) string {
	if t, ok := nakshatraNames[lang]; ok && i >= 1 && i < len(t) {
		return t[i]
	}
	return "Unknown"
}

// YogaName returns the yoga name for index [1, 27].
func YogaName(i int, lang Lang) string {
	if t, ok := yogaNames[lang]; ok && i >= 1 && i < len(t) {
		return t[i]
	}
	return "Unknown"
}

// RasiName returns the zodiacal sign name for index [0, 11].
func RasiName(i int, lang Lang) string { return lookup12(rasiNames, i, lang) }

// SolarMonthName returns the solar month name for index [0, 11].
func SolarMonthName(i int, lang Lang) string { return lookup12(solarMonthNames, i, lang) }

// LunarMonthName returns the lunar month name for index [0, 11].
func LunarMonthName(i int, lang Lang) string { return lookup12(lunarMonthNames, i, lang) }

// WeekdayName returns the localized weekday name.
func WeekdayName(wd time.Weekday, lang Lang) string {
	if t, ok := weekdayNames[lang]; ok {
		return t[wd]
	}
	return wd.String()
}

// PakshaName returns the fortnight name for paksha 0 (waxing) or 1.
func PakshaName(p int, lang Lang) string {
	if t, ok := pakshaNames[lang]; ok && p >= 0 && p < 2 {
		return t[p]
	}
	return "Unknown"
}

// RituName returns the season name for a month index [0, 11].
func RituName(monthIdx int, lang Lang) string {
	if t, ok := rituNames[lang]; ok {
		return t[Ritu(monthIdx)]
	}
	return "Unknown"
}

// Label returns the localized display label for a stable key, falling
// back to the key itself.
func Label(key string, lang Lang) string {
	if m, ok := labels[key]; ok {
		if v, ok := m[lang]; ok {
			return v
		}
	}
	return key
}

func lookup31(m map[Lang][31]string, i int, lang Lang) string {
	if t, ok := m[lang]; ok && i >= 1 && i < len(t) {
		return t[i]
	}
	return "Unknown"
}

func lookup12(m map[Lang][12]string, i int, lang Lang) string {
	if t, ok := m[lang]; ok && i >= 0 && i < len(t) {
		return t[i]
	}
	return "Unknown"
}
