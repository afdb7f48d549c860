package panchang

// DefaultLocations returns the built-in generation targets: each city is
// generated under both regional styles.
func DefaultLocations() ([]Location, error) {
	specs := []struct {
		key, name string
		lat, lon  float64
		tz        string
		style     Style
		lang      Lang
	}{
		{"stuttgart-ta", "Stuttgart (Tamil Style)", 48.7758, 9.1829, "Europe/Berlin", StyleTamil, LangTamil},
		{"stuttgart-te", "Stuttgart (Telugu Style)", 48.7758, 9.1829, "Europe/Berlin", StyleTelugu, LangTelugu},
		{"india-ta", "Hyderabad (Tamil Style)", 17.38504, 78.48667, "Asia/Kolkata", StyleTamil, LangTamil},
		{"india-te", "Hyderabad (Telugu Style)", 17.38504, 78.48667, "Asia/Kolkata", StyleTelugu, LangTelugu},
	}

	locs := make([]Location, 0, len(specs))
	for _, s := range specs {
		loc, err := NewLocation(s.key, s.name, s.lat, s.lon, s.tz, s.style, s.lang)
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

// LocationByKey finds a location in locs by its key.
func LocationByKey(locs []Location, key string) (Location, bool) {
	for _, l := range locs {
		if l.Key == key {
			return l, true
		}
	}
	return Location{}, false
}
