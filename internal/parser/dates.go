package parser

import (
	"regexp"
	"strconv"
	"time"
)

// Timestamp formats seen in SAHAL notification blocks.
var (
	// "Tuesday, October 17, 2023 · 11:17 AM". The time may use a narrow
	// no-break space (U+202F) before AM/PM.
	longDatePattern = regexp.MustCompile(
		`(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday), ` +
			`(January|February|March|April|May|June|July|August|September|October|November|December) ` +
			`(\d{1,2}), (\d{4}) · (\d{1,2}):(\d{2})(?:\x{202F}|\s)?(AM|PM)`,
	)
	// "Tar: 17/10/23 13:35:59". DD/MM/YY with a 24-hour clock.
	tarDatePattern = regexp.MustCompile(`Tar: (\d{1,2})/(\d{1,2})/(\d{2}) (\d{1,2}):(\d{2}):(\d{2})`)
)

var monthsByName = map[string]time.Month{
	"January": time.January, "February": time.February, "March": time.March,
	"April": time.April, "May": time.May, "June": time.June,
	"July": time.July, "August": time.August, "September": time.September,
	"October": time.October, "November": time.November, "December": time.December,
}

// ExtractDate recovers an optional timestamp from a block. The long-form
// pattern is tried first, then the "Tar:" pattern; the first successful
// parse wins. Invalid calendar values make the pattern fail silently
// since a block without a date is not an error.
func ExtractDate(block string) (time.Time, bool) {
	if block == "" {
		return time.Time{}, false
	}

	if m := longDatePattern.FindStringSubmatch(block); m != nil {
		if t, ok := parseLongDate(m); ok {
			return t, true
		}
	}

	if m := tarDatePattern.FindStringSubmatch(block); m != nil {
		if t, ok := parseTarDate(m); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseLongDate builds a timestamp from a long-form match, converting the
// 12-hour clock to 24-hour (12 AM becomes 0, 12 PM stays, otherwise PM adds 12).
func parseLongDate(m []string) (time.Time, bool) {
	month := monthsByName[m[1]]
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	if hour < 1 || hour > 12 || minute > 59 {
		return time.Time{}, false
	}
	switch m[6] {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return makeDate(year, month, day, hour, minute, 0)
}

// parseTarDate builds a timestamp from a "Tar:" match. Two-digit years are
// interpreted as 2000+YY.
func parseTarDate(m []string) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	yy, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second, _ := strconv.Atoi(m[6])

	if month < 1 || month > 12 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}

	return makeDate(2000+yy, time.Month(month), day, hour, minute, second)
}

// makeDate constructs a timestamp and rejects out-of-range days, which
// time.Date would otherwise normalize (e.g. February 30 into March 2).
func makeDate(year int, month time.Month, day, hour, minute, second int) (time.Time, bool) {
	if day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
