package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDNI(t *testing.T) {
	valid := []string{"0801199901234", "0000000000000"}
	invalid := []string{"", "080119990123", "08011999012345", "080119990123a", "0801-1999-01234"}
	for _, dni := range valid {
		if !IsValidDNI(dni) {
			t.Errorf("IsValidDNI(%q) = false, want true", dni)
		}
	}
	for _, dni := range invalid {
		if IsValidDNI(dni) {
			t.Errorf("IsValidDNI(%q) = true, want false", dni)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-31", "2024-02-29"}
	invalid := []string{"", "2026-13-01", "2026-02-30", "31-01-2026", "2026/01/31", "yesterday"}
	for _, date := range valid {
		if !IsValidDate(date) {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if IsValidDate(date) {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"ana", "jose.mejia", "scan_station-1", "a1b"}
	invalid := []string{"", "ab", "has space", "ñandu", "a@b.com"}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = false, want true", username)
		}
	}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = true, want false", username)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"admin", "scanner", "viewer"}
	if !IsInSlice("scanner", roles) {
		t.Error("IsInSlice(scanner) = false, want true")
	}
	if IsInSlice("root", roles) {
		t.Error("IsInSlice(root) = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "dni", Message: "dni must be exactly 13 digits"},
		{Field: "name", Message: "name is required"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["dni"] != "dni must be exactly 13 digits" {
		t.Errorf("ToMap()[dni] = %q", m["dni"])
	}
}
