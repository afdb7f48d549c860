package panchang

// The Jupiter cycle of sixty year names, in order. Prabhava (index 0)
// corresponds to the year beginning in 1987.
var samvatsaraNames = [60]string{
	"Prabhava", "Vibhava", "Shukla", "Pramodadhoota", "Prajapati", "Angirasa", "Srimukha", "Bhava", "Yuva", "Dhatu",
	"Eeswara", "Vehudhanya", "Pramathi", "Vikrama", "Vishu", "Chitrabhanu", "Subhanu", "Dharana", "Parthiba", "Viya",
	"Sarvajit", "Sarvadhari", "Virodhi", "Vikruthi", "Kara", "Nandhana", "Vijaya", "Jaya", "Manmatha", "Dhunmuki",
	"Hevilambi", "Vilambi", "Vikari", "Sarvari", "Plava", "Subhakrit", "Shobakrit", "Krodhi", "Vishvavasu", "Parabhava",
	"Plavanga", "Keelaka", "Soumya", "Sadharana", "Virodhakrit", "Paridhabi", "Pramadhicha", "Anandha", "Rakshasa", "Nala",
	"Pingala", "Kalayukti", "Siddharthi", "Raudhri", "Dhunmathi", "Dhundubhi", "Rudhirothgari", "Rakshasi", "Krodhana", "Akshaya",
}

const baseSamvatsaraYear = 1987

// SamvatsaraName returns the cycle name in force on d. The Hindu year
// rolls over at that Gregorian year's new-year epoch, not on January 1:
// before the epoch the previous year's name still applies.
//
// newYearDates must cover d's Gregorian year; a missing entry falls back
// to the previous-year assignment, which is only correct for dates
// before the (unknown) epoch.
func SamvatsaraName(d Date, newYearDates map[int]Date) string {
	y := d.Year
	ny, ok := newYearDates[y]
	sy := y - 1
	if ok && !d.Before(ny) {
		sy = y
	}
	idx := (sy - baseSamvatsaraYear) % 60
	if idx < 0 {
		idx += 60
	}
	return samvatsaraNames[idx]
}
