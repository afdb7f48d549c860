// Package generator assembles calendar entries from the panchang
// derivation core: one descriptive entry per civil day plus festival,
// vratam and manually maintained events, deduplicated by stable keys.
package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/svaidyanathan/panchangam/internal/panchang"
)

// Kind labels what a calendar entry represents.
type Kind string

const (
	KindPanchangam Kind = "panchangam"
	KindFestival   Kind = "festival"
	KindVratam     Kind = "vratam"
	KindManual     Kind = "manual"
)

// Entry is one emitted calendar item. Day-granular kinds carry Date;
// vratams carry the exact [Start, End) span instead.
type Entry struct {
	LocationKey string
	Kind        Kind
	Date        panchang.Date
	Start       time.Time
	End         time.Time
	Title       string
	Description string
	Key         string // dedup identity, unique per entry
}

// Identity key constructors. Keys are injective per kind by
// construction; the suffix keeps kinds from colliding with each other.

func dailyKey(locKey string, d panchang.Date) string {
	return fmt.Sprintf("%s-%s@panchangam", locKey, d)
}

func festivalKey(locKey string, d panchang.Date, name string) string {
	return fmt.Sprintf("%s-%s-%s@festival", locKey, d, strings.ReplaceAll(name, " ", ""))
}

func vratamKey(locKey string, start time.Time, name string) string {
	return fmt.Sprintf("%s-%s-%s@vratam",
		locKey, start.Format("200601021504"), strings.ReplaceAll(name, " ", ""))
}

func manualKey(locKey, date, name string) string {
	if date == "" {
		date = "nodate"
	}
	return fmt.Sprintf("%s-%s-%s@manual", locKey, date, name)
}

// entrySet accumulates entries in insertion order, dropping duplicate
// keys. Ordering is part of the output contract, not an accident of map
// iteration.
type entrySet struct {
	seen    map[string]bool
	entries []Entry
}

func newEntrySet() *entrySet {
	return &entrySet{seen: make(map[string]bool)}
}

// add inserts e unless its key was already seen; reports whether it was
// inserted.
func (s *entrySet) add(e Entry) bool {
	if s.seen[e.Key] {
		return false
	}
	s.seen[e.Key] = true
	s.entries = append(s.entries, e)
	return true
}
