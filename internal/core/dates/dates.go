// Package dates parses the date strings found in source records.
//
// Two parsers live here on purpose. ParseRecordDate is the strict splitter
// used by case expansion and display paths; it applies Buddhist-era
// correction and reports the display year. ParseLooseDate is the variant the
// aggregation engine uses; its regex paths assume Gregorian input and apply
// no era correction. The two evolved independently against different source
// sheets and unifying them would shift historical report totals
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// buddhistEraOffset converts a Buddhist-era year to Gregorian
const buddhistEraOffset = 543

// beYearFloor marks years that can only be Buddhist-era
const beYearFloor = 2400

// RecordDate is a parsed record date plus the display year in the input era
type RecordDate struct {
	Time time.Time
	// LocalYear is the Buddhist-era year for display: the input year when it
	// was already Buddhist-era, otherwise input year + 543
	LocalYear int
}

// ParseRecordDate parses dd-mm-yyyy, dd/mm/yyyy, yyyy-mm-dd and yyyy/mm/dd
// with Buddhist-era correction. Time-of-day suffixes are dropped. Returns
// false for anything else, including impossible calendar dates
func ParseRecordDate(raw string) (RecordDate, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return RecordDate{}, false
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}

	var parts []string
	switch {
	case strings.Contains(s, "-"):
		parts = strings.Split(s, "-")
	case strings.Contains(s, "/"):
		parts = strings.Split(s, "/")
	default:
		return RecordDate{}, false
	}
	if len(parts) != 3 {
		return RecordDate{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RecordDate{}, false
		}
		nums[i] = n
	}

	var day, month, year int
	switch {
	case nums[0] > 1000:
		year, month, day = nums[0], nums[1], nums[2]
	case nums[2] > 1000:
		day, month, year = nums[0], nums[1], nums[2]
	default:
		return RecordDate{}, false
	}

	local := year
	if year > beYearFloor {
		year -= buddhistEraOffset
	} else {
		local = year + buddhistEraOffset
	}

	t, ok := makeDate(year, month, day)
	if !ok {
		return RecordDate{}, false
	}
	return RecordDate{Time: t, LocalYear: local}, true
}

var (
	isoRe   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// ParseLooseDate parses bare ISO yyyy-mm-dd and bare dd/mm/yyyy via regex
// extraction, falling back to ParseRecordDate when neither matches.
// The regex paths deliberately skip Buddhist-era correction: the sheets this
// variant reads already carry Gregorian years, and correcting here would
// silently move rows across month buckets
func ParseLooseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}

	if m := isoRe.FindStringSubmatch(s); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := slashRe.FindStringSubmatch(s); m != nil {
		return makeDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}

	rd, ok := ParseRecordDate(raw)
	if !ok {
		return time.Time{}, false
	}
	return rd.Time, true
}

// makeDate builds a UTC midnight date and rejects values that normalize,
// e.g. Feb 30 rolling into March
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
