package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// rangeSeparator is the glyph Notion uses between the two sides of a date
// range property.
const rangeSeparator = "→"

// months is the fixed month-name table for verbose export dates.
var months = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// dateRe matches "Month D, YYYY" anywhere in a verbose value such as
// "November 5, 2025 11:20 AM (GMT+2)".
var dateRe = regexp.MustCompile(`([A-Za-z]+)\s+(\d{1,2}),?\s+(\d{4})`)

// timeRe matches "H:MM AM/PM" anywhere in a verbose value.
var timeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*([AaPp][Mm])`)

// Date extracts a calendar date from a verbose export string. An
// unrecognized month name inside an otherwise well-formed value falls back
// to January, matching the source system. The second return is false when no
// date pattern is present at all; callers substitute their per-entity
// default date.
func Date(text string) (time.Time, bool) {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	month, ok := months[strings.ToLower(m[1])]
	if !ok {
		month = time.January
	}
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// DateRange splits a range value on the range separator glyph and parses
// each side independently. A missing or unparsable end reuses the start. The
// second return is false when the start side is unparsable.
func DateRange(text string) (start, end time.Time, ok bool) {
	first, rest, _ := strings.Cut(text, rangeSeparator)

	start, ok = Date(first)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	end, endOK := Date(rest)
	if !endOK {
		end = start
	}
	return start, end, true
}

// TimeOfDay extracts "H:MM AM/PM" from a verbose value and converts it to
// 24-hour terms: 12 AM → hour 0, 12 PM stays 12, other PM hours get +12.
// The second return is false when no time is present.
func TimeOfDay(text string) (hour, minute int, ok bool) {
	m := timeRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, true
}

// At places a time of day on the given date, in the date's location.
func At(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}
