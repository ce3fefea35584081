package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultLocation is assumed for date shapes that carry no zone of their own.
// The primary target locale is the Philippines, so UTC+8.
var DefaultLocation = time.FixedZone("UTC+8", 8*60*60)

// DateNormalizer tries a fixed priority list of date/time shapes against a
// text fragment and returns the first successful parse as an instant.
type DateNormalizer struct {
	loc *time.Location
}

// NewDateNormalizer returns a normalizer anchored to loc. A nil loc tracks
// DefaultLocation at parse time.
func NewDateNormalizer(loc *time.Location) DateNormalizer {
	return DateNormalizer{loc: loc}
}

var (
	reMonthFirst = regexp.MustCompile(`([A-Za-z]{3,9}) (\d{1,2}), (\d{4})\s+(\d{1,2}:\d{2}) ?([APMapm]{2})`)
	reDayFirst   = regexp.MustCompile(`(\d{1,2}) ([A-Za-z]{3,9}) (\d{4})\s+(\d{1,2}):(\d{2})`)
	reISOLike    = regexp.MustCompile(`(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})[ T](\d{1,2}):(\d{2})`)
	reMDY        = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})\s+(\d{1,2}:\d{2}) ?([APMapm]{2})`)
	reEpoch      = regexp.MustCompile(`(?i)(?:timestamp|unix|epoch)\D{0,10}(\d{10,13})`)

	reDayMonthName = regexp.MustCompile(`([A-Za-z]{3,9}) (\d{1,2}),? (\d{4})`)
	reDayYMD       = regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	reDayMDY       = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
)

func (n DateNormalizer) location() *time.Location {
	if n.loc != nil {
		return n.loc
	}
	return DefaultLocation
}

// Parse returns the first date/time shape found in fragment. Families are
// tried in priority order and the first one whose pattern matches wins; a
// match that is not a valid calendar date yields no result rather than
// falling through to later families.
func (n DateNormalizer) Parse(fragment string) (time.Time, bool) {
	loc := n.location()

	if m := reMonthFirst.FindStringSubmatch(fragment); m != nil {
		s := m[1] + " " + m[2] + ", " + m[3] + " " + m[4] + " " + strings.ToUpper(m[5])
		return tryLayouts(s, loc, "January 2, 2006 3:04 PM", "Jan 2, 2006 3:04 PM")
	}
	if m := reDayFirst.FindStringSubmatch(fragment); m != nil {
		s := m[1] + " " + m[2] + " " + m[3] + " " + m[4] + ":" + m[5]
		return tryLayouts(s, loc, "2 January 2006 15:04", "2 Jan 2006 15:04")
	}
	if m := reISOLike.FindStringSubmatch(fragment); m != nil {
		return calendarDate(loc,
			atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4]), atoi(m[5]))
	}
	if m := reMDY.FindStringSubmatch(fragment); m != nil {
		s := m[1] + "-" + m[2] + "-" + m[3] + " " + m[4] + " " + strings.ToUpper(m[5])
		return tryLayouts(s, loc, "1-2-2006 3:04 PM")
	}
	if m := reEpoch.FindStringSubmatch(fragment); m != nil {
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		// >= 1e12 can only be milliseconds
		if v >= 1_000_000_000_000 {
			return time.UnixMilli(v).In(loc), true
		}
		return time.Unix(v, 0).In(loc), true
	}
	return time.Time{}, false
}

// ParseDay recognizes date-only shapes (birth dates, due dates) that the
// timed families above do not cover.
func (n DateNormalizer) ParseDay(fragment string) (time.Time, bool) {
	loc := n.location()

	if m := reDayMonthName.FindStringSubmatch(fragment); m != nil {
		s := m[1] + " " + m[2] + ", " + m[3]
		return tryLayouts(s, loc, "January 2, 2006", "Jan 2, 2006")
	}
	if m := reDayYMD.FindStringSubmatch(fragment); m != nil {
		return calendarDate(loc, atoi(m[1]), atoi(m[2]), atoi(m[3]), 0, 0)
	}
	if m := reDayMDY.FindStringSubmatch(fragment); m != nil {
		return calendarDate(loc, atoi(m[3]), atoi(m[1]), atoi(m[2]), 0, 0)
	}
	return time.Time{}, false
}

// ParseLoose tries the timed families first, then the date-only ones.
func (n DateNormalizer) ParseLoose(fragment string) (time.Time, bool) {
	if t, ok := n.Parse(fragment); ok {
		return t, true
	}
	return n.ParseDay(fragment)
}

func tryLayouts(s string, loc *time.Location, layouts ...string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// calendarDate builds an instant and rejects values that time.Date would
// silently normalize, e.g. February 30.
func calendarDate(loc *time.Location, y, mo, d, h, mi int) (time.Time, bool) {
	if mo < 1 || mo > 12 || d < 1 || d > 31 || h < 0 || h > 23 || mi < 0 || mi > 59 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(mo), d, h, mi, 0, 0, loc)
	if t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
