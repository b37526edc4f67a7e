package clock

import (
	"testing"
	"time"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%s): %v", name, err)
	}
	return loc
}

func TestNew(t *testing.T) {
	c, err := New("America/Tegucigalpa")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Location().String() != "America/Tegucigalpa" {
		t.Errorf("Location() = %s", c.Location())
	}

	if _, err := New("Not/AZone"); err == nil {
		t.Error("New with bogus zone did not fail")
	}
}

func TestCivilDate(t *testing.T) {
	loc := mustLocation(t, "America/Tegucigalpa")

	// 23:30 local is already the next day in UTC. The civil date must stay
	// on the local calendar day.
	local := time.Date(2026, 3, 14, 23, 30, 0, 0, loc)
	got := CivilDate(local)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("CivilDate(%v) = %v, want %v", local, got, want)
	}
}

func TestDateString(t *testing.T) {
	loc := mustLocation(t, "America/Tegucigalpa")
	ts := time.Date(2026, 1, 5, 7, 2, 9, 0, loc)
	if got := DateString(ts); got != "2026-01-05" {
		t.Errorf("DateString = %q", got)
	}
}

func TestTimeOfDay(t *testing.T) {
	loc := mustLocation(t, "America/Tegucigalpa")
	ts := time.Date(2026, 1, 5, 7, 2, 9, 0, loc)
	if got := TimeOfDay(ts); got != "07:02:09" {
		t.Errorf("TimeOfDay = %q", got)
	}
}

func TestFixed(t *testing.T) {
	loc := mustLocation(t, "America/Tegucigalpa")
	ts := time.Date(2026, 6, 1, 12, 0, 0, 0, loc)

	c := Fixed(ts)
	if !c.Now().Equal(ts) {
		t.Errorf("Now() = %v, want %v", c.Now(), ts)
	}
	if c.Location() != loc {
		t.Errorf("Location() = %v, want %v", c.Location(), loc)
	}
}
