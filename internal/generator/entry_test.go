package generator

import (
	"testing"
	"time"

	"github.com/svaidyanathan/panchangam/internal/panchang"
)

func TestEntryKeys(t *testing.T) {
	d := panchang.NewDate(2024, time.April, 14)

	if got := dailyKey("india-ta", d); got != "india-ta-2024-04-14@panchangam" {
		t.Errorf("dailyKey = %q", got)
	}
	if got := festivalKey("india-ta", d, "Thai Pongal"); got != "india-ta-2024-04-14-ThaiPongal@festival" {
		t.Errorf("festivalKey = %q", got)
	}
	start := time.Date(2024, time.April, 14, 6, 15, 0, 0, time.UTC)
	if got := vratamKey("india-ta", start, "Ekadashi (Shukla)"); got != "india-ta-202404140615-Ekadashi(Shukla)@vratam" {
		t.Errorf("vratamKey = %q", got)
	}
	if got := manualKey("india-ta", "", "Temple Day"); got != "india-ta-nodate-Temple Day@manual" {
		t.Errorf("manualKey without date = %q", got)
	}
	if got := manualKey("india-ta", "2024-04-14", "Temple Day"); got != "india-ta-2024-04-14-Temple Day@manual" {
		t.Errorf("manualKey with date = %q", got)
	}
}

func TestEntrySet_DedupAndOrder(t *testing.T) {
	set := newEntrySet()

	a := Entry{Key: "a", Title: "first"}
	b := Entry{Key: "b", Title: "second"}
	dup := Entry{Key: "a", Title: "duplicate"}

	if !set.add(a) {
		t.Error("first insert should succeed")
	}
	if !set.add(b) {
		t.Error("distinct key should succeed")
	}
	if set.add(dup) {
		t.Error("duplicate key should be rejected")
	}

	if len(set.entries) != 2 {
		t.Fatalf("set holds %d entries, want 2", len(set.entries))
	}
	if set.entries[0].Title != "first" || set.entries[1].Title != "second" {
		t.Error("insertion order not preserved")
	}
}
