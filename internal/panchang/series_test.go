package panchang

import (
	"testing"
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
)

func mustSeries(t *testing.T, entries []astro.Transition) *SteppedSeries {
	t.Helper()
	s, err := NewSteppedSeries(entries)
	if err != nil {
		t.Fatalf("NewSteppedSeries: %v", err)
	}
	return s
}

func testSeries(t *testing.T) *SteppedSeries {
	return mustSeries(t, []astro.Transition{
		{At: utc(2024, time.March, 1, 6, 0), Value: 1},
		{At: utc(2024, time.March, 2, 7, 30), Value: 2},
		{At: utc(2024, time.March, 3, 9, 15), Value: 3},
		{At: utc(2024, time.March, 4, 11, 0), Value: 4},
	})
}

func TestNewSteppedSeries_RejectsUnordered(t *testing.T) {
	_, err := NewSteppedSeries([]astro.Transition{
		{At: utc(2024, time.March, 2, 0, 0), Value: 1},
		{At: utc(2024, time.March, 1, 0, 0), Value: 2},
	})
	if err == nil {
		t.Fatal("expected error for out-of-order transitions")
	}

	_, err = NewSteppedSeries([]astro.Transition{
		{At: utc(2024, time.March, 1, 0, 0), Value: 1},
		{At: utc(2024, time.March, 1, 0, 0), Value: 2},
	})
	if err == nil {
		t.Fatal("expected error for duplicate instants")
	}
}

func TestValueAt(t *testing.T) {
	s := testSeries(t)
	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"before first entry", utc(2024, time.February, 28, 0, 0), 1},
		{"exactly on entry", utc(2024, time.March, 2, 7, 30), 2},
		{"between entries", utc(2024, time.March, 2, 23, 0), 2},
		{"after last entry", utc(2024, time.March, 10, 0, 0), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ValueAt(tt.at); got != tt.want {
				t.Errorf("ValueAt(%s) = %d, want %d", tt.at, got, tt.want)
			}
		})
	}
}

func TestBetween_HalfOpen(t *testing.T) {
	s := testSeries(t)
	got := s.Between(utc(2024, time.March, 2, 7, 30), utc(2024, time.March, 4, 11, 0))
	if len(got) != 2 {
		t.Fatalf("Between returned %d transitions, want 2", len(got))
	}
	if got[0].Value != 2 || got[1].Value != 3 {
		t.Errorf("Between values = [%d %d], want [2 3]", got[0].Value, got[1].Value)
	}
}

func TestSpanOf(t *testing.T) {
	s := testSeries(t)

	start, end, ok := s.SpanOf(2, utc(2024, time.March, 2, 12, 0))
	if !ok {
		t.Fatal("SpanOf(2) not found")
	}
	if !start.Equal(utc(2024, time.March, 2, 7, 30)) || !end.Equal(utc(2024, time.March, 3, 9, 15)) {
		t.Errorf("SpanOf(2) = [%s, %s)", start, end)
	}

	// Reference on the closing boundary still finds the span via the
	// adjacent entry.
	start, _, ok = s.SpanOf(2, utc(2024, time.March, 3, 9, 15))
	if !ok || !start.Equal(utc(2024, time.March, 2, 7, 30)) {
		t.Errorf("SpanOf(2) at boundary: ok=%v start=%s", ok, start)
	}

	// Final entry has an open end a day past the reference.
	ref := utc(2024, time.March, 5, 0, 0)
	_, end, ok = s.SpanOf(4, ref)
	if !ok {
		t.Fatal("SpanOf(4) not found")
	}
	if !end.Equal(ref.Add(24 * time.Hour)) {
		t.Errorf("open-ended span end = %s, want ref+24h", end)
	}

	// Value nowhere near the reference is not found.
	if _, _, ok := s.SpanOf(1, utc(2024, time.March, 4, 12, 0)); ok {
		t.Error("SpanOf(1) far from its span should not match")
	}
}

// A precomputed table must agree with evaluating the index function
// directly, away from the sub-second transition boundaries.
func TestPrecomputeSeries_MatchesDirectEvaluation(t *testing.T) {
	epoch := utc(2024, time.March, 1, 0, 0)
	s := &Sky{Eph: linearEph{sunEpoch: epoch, sunRate: 1, elongEpoch: epoch, elongRate: 12.2}}

	t0 := epoch
	t1 := epoch.Add(20 * 24 * time.Hour)
	series, err := PrecomputeSeries(astro.Provider{}, s.Tithi, t0, t1, 0.04)
	if err != nil {
		t.Fatalf("PrecomputeSeries: %v", err)
	}
	if series.Len() == 0 {
		t.Fatal("no transitions found over 20 days")
	}

	trans := series.Between(t0, t1)
	nearTransition := func(at time.Time) bool {
		for _, tr := range trans {
			if d := at.Sub(tr.At); d > -2*time.Second && d < 2*time.Second {
				return true
			}
		}
		return false
	}

	// Start past the first transition: before it the table has no
	// knowledge of the preceding value.
	for at := trans[0].At.Add(time.Hour); at.Before(t1); at = at.Add(time.Hour) {
		if nearTransition(at) {
			continue
		}
		if got, want := series.ValueAt(at), s.Tithi(at); got != want {
			t.Fatalf("ValueAt(%s) = %d, direct evaluation gives %d", at, got, want)
		}
	}
}

// With the Moon gaining 12.2 degrees per day on the Sun, the tithi must
// start at 1 on the conjunction day, step through 30 one at a time, hit
// the full moon within 14-15 days, and wrap back to 1.
func TestTithi_SynodicCycle(t *testing.T) {
	epoch := utc(2024, time.March, 1, 0, 0)
	s := &Sky{Eph: linearEph{sunEpoch: epoch, sunRate: 1, elongEpoch: epoch, elongRate: 12.2}}

	if got := s.Tithi(epoch); got != 1 {
		t.Fatalf("tithi at conjunction = %d, want 1", got)
	}
	if got := s.Tithi(epoch.Add(14 * 24 * time.Hour)); got != 15 {
		t.Errorf("tithi after 14 days = %d, want 15 (full moon)", got)
	}

	// Half-day sampling over one synodic month: steps of 0 or +1 only,
	// wrapping 30 -> 1 exactly once.
	prev := 1
	wraps := 0
	monthEnd := epoch.Add(30 * 24 * time.Hour)
	for at := epoch; at.Before(monthEnd); at = at.Add(12 * time.Hour) {
		cur := s.Tithi(at)
		switch {
		case cur == prev:
		case cur == prev+1:
		case prev == 30 && cur == 1:
			wraps++
		default:
			t.Fatalf("tithi jumped %d -> %d at %s", prev, cur, at)
		}
		prev = cur
	}
	if wraps != 1 {
		t.Errorf("cycle wrapped %d times over one synodic month, want 1", wraps)
	}
}
