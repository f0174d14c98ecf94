package table

import (
	"strconv"
	"strings"
	"time"
)

var (
	dateFormats = []string{
		"2006-01-02",
		"01-02-2006",
		"01-02-06",
		"01/02/2006",
		"01/02/06",
		"1/2/06",
	}

	dateTimeFormats = []string{
		"2006-01-02 15:04",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05Z07:00",
	}

	timeFormats = []string{
		"15:04:05",
		"15:04",
		"3:04:05 PM",
		"3:04 PM",
	}
)

func ParseBool(s string) (bool, bool) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}

	return b, true
}

func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	for _, layout := range dateFormats {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true
		}
	}

	return time.Time{}, false
}

func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	for _, layout := range dateTimeFormats {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true
		}
	}

	return time.Time{}, false
}

// ParseTime parses a time of day. The date part of the result is the
// zero date.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	for _, layout := range timeFormats {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true
		}
	}

	return time.Time{}, false
}

func ParseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func ParseInt(s string) (int64, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}
