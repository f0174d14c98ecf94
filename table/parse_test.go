package table

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := map[string]struct {
		Raw string
		Val time.Time
	}{
		"iso":      {"2014-02-01", time.Date(2014, time.February, 1, 0, 0, 0, 0, time.UTC)},
		"us":       {"02/01/2014", time.Date(2014, time.February, 1, 0, 0, 0, 0, time.UTC)},
		"us-short": {"2/1/14", time.Date(2014, time.February, 1, 0, 0, 0, 0, time.UTC)},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			v, ok := ParseDate(test.Raw)
			if !ok {
				t.Fatalf("could not parse %q", test.Raw)
			}

			if !v.Equal(test.Val) {
				t.Errorf("expected %v, got %v", test.Val, v)
			}
		})
	}

	if _, ok := ParseDate("not a date"); ok {
		t.Error("expected parse failure")
	}
}

func TestParseDateTime(t *testing.T) {
	v, ok := ParseDateTime("2014-02-01 10:30:00")
	if !ok {
		t.Fatal("could not parse datetime")
	}

	exp := time.Date(2014, time.February, 1, 10, 30, 0, 0, time.UTC)
	if !v.Equal(exp) {
		t.Errorf("expected %v, got %v", exp, v)
	}
}

func TestParseTime(t *testing.T) {
	tests := map[string]struct {
		Raw  string
		Hour int
		Min  int
		Sec  int
	}{
		"24h":         {"14:35", 14, 35, 0},
		"24h-seconds": {"16:20:05", 16, 20, 5},
		"12h":         {"9:15 AM", 9, 15, 0},
		"12h-pm":      {"1:05 PM", 13, 5, 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			v, ok := ParseTime(test.Raw)
			if !ok {
				t.Fatalf("could not parse %q", test.Raw)
			}

			if v.Hour() != test.Hour || v.Minute() != test.Min || v.Second() != test.Sec {
				t.Errorf("expected %02d:%02d:%02d, got %v", test.Hour, test.Min, test.Sec, v)
			}
		})
	}

	if _, ok := ParseTime("25:00"); ok {
		t.Error("expected parse failure")
	}
}

func TestParseNumbers(t *testing.T) {
	if v, ok := ParseFloat("1.20"); !ok || v != 1.20 {
		t.Errorf("expected 1.20, got %v (%v)", v, ok)
	}

	if _, ok := ParseFloat(""); ok {
		t.Error("expected parse failure for empty string")
	}

	if v, ok := ParseInt("10"); !ok || v != 10 {
		t.Errorf("expected 10, got %v (%v)", v, ok)
	}

	if _, ok := ParseInt("10.5"); ok {
		t.Error("expected parse failure for non-integer")
	}

	if v, ok := ParseBool("true"); !ok || !v {
		t.Errorf("expected true, got %v (%v)", v, ok)
	}
}
