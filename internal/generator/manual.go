package generator

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/svaidyanathan/panchangam/internal/panchang"
)

// ManualEvent is a human-maintained calendar item loaded from JSON.
// Either Date (all-day) or Start/End (timed) must be present.
type ManualEvent struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Date        string   `json:"date"`  // YYYY-MM-DD, all-day events
	Start       string   `json:"start"` // RFC 3339, timed events
	End         string   `json:"end"`
	Locations   []string `json:"locations"` // empty means every location
}

// LoadManualEvents reads the manual-events file. Entries that fail
// validation are logged and skipped rather than failing the whole run;
// the file is maintained by hand and one bad record should not block
// generation. A missing file is not an error.
func LoadManualEvents(path string, log *slog.Logger) ([]ManualEvent, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("manual events file not found, skipping", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading manual events: %w", err)
	}

	var raw []ManualEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manual events: %w", err)
	}

	events := make([]ManualEvent, 0, len(raw))
	for i, ev := range raw {
		if err := ev.validate(); err != nil {
			log.Warn("skipping invalid manual event", "index", i, "name", ev.Name, "error", err)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func (ev ManualEvent) validate() error {
	if ev.Name == "" {
		return fmt.Errorf("missing name")
	}
	hasDate := ev.Date != ""
	hasSpan := ev.Start != "" || ev.End != ""
	switch {
	case hasDate && hasSpan:
		return fmt.Errorf("date and start/end are mutually exclusive")
	case hasDate:
		if _, err := panchang.ParseDate(ev.Date); err != nil {
			return fmt.Errorf("bad date %q: %w", ev.Date, err)
		}
	case hasSpan:
		if ev.Start == "" || ev.End == "" {
			return fmt.Errorf("timed event needs both start and end")
		}
		start, err := time.Parse(time.RFC3339, ev.Start)
		if err != nil {
			return fmt.Errorf("bad start %q: %w", ev.Start, err)
		}
		end, err := time.Parse(time.RFC3339, ev.End)
		if err != nil {
			return fmt.Errorf("bad end %q: %w", ev.End, err)
		}
		if !end.After(start) {
			return fmt.Errorf("end must be after start")
		}
	default:
		return fmt.Errorf("needs either date or start/end")
	}
	return nil
}

// appliesTo reports whether the event targets the given location key.
func (ev ManualEvent) appliesTo(locKey string) bool {
	if len(ev.Locations) == 0 {
		return true
	}
	for _, k := range ev.Locations {
		if k == locKey {
			return true
		}
	}
	return false
}

// entryFor converts the event into an Entry for one location. The
// event must have passed validate.
func (ev ManualEvent) entryFor(locKey string, tz *time.Location) Entry {
	e := Entry{
		LocationKey: locKey,
		Kind:        KindManual,
		Title:       ev.Name,
		Description: ev.Description,
		Key:         manualKey(locKey, ev.Date, ev.Name),
	}
	if ev.Date != "" {
		d, _ := panchang.ParseDate(ev.Date)
		e.Date = d
		return e
	}
	start, _ := time.Parse(time.RFC3339, ev.Start)
	end, _ := time.Parse(time.RFC3339, ev.End)
	e.Start = start.In(tz)
	e.End = end.In(tz)
	e.Date = panchang.DateOf(e.Start)
	return e
}
