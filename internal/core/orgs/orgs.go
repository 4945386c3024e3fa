// Package orgs resolves division (OrgUnit) and station numbers from the
// free-text unit fields on source records. There is no authoritative roster
// governing which stations belong to which division, so extraction tolerates
// unknown or absent ids
package orgs

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// UnitCount is the number of divisions
const UnitCount = 8

const (
	unitMarker    = "กก."
	unitPhrase    = "กองกำกับการ "
	stationMarker = "ส.ทล."
	stationPhrase = "สถานีตำรวจทางหลวง "
)

var (
	stationMarkerRe = regexp.MustCompile(`ส\.ทล\.\s*(\d+)`)
	stationPhraseRe = regexp.MustCompile(`สถานีตำรวจทางหลวง\s*(\d+)`)
)

// fold canonicalizes mixed-width input before marker scanning
func fold(s string) string {
	if s == "" {
		return ""
	}
	return norm.NFC.String(width.Fold.String(s))
}

// Unit extracts the division number from free text. Division patterns are
// checked for 1..8 in ascending order and the first match wins; absence
// returns (0, false)
func Unit(text string) (int, bool) {
	s := fold(text)
	if s == "" {
		return 0, false
	}
	for u := 1; u <= UnitCount; u++ {
		id := strconv.Itoa(u)
		if strings.Contains(s, unitMarker+id) || strings.Contains(s, unitPhrase+id) {
			return u, true
		}
	}
	return 0, false
}

// Station extracts the station number from free text, trying the marker form
// then the long phrase form
func Station(text string) (int, bool) {
	s := fold(text)
	if s == "" {
		return 0, false
	}
	if m := stationMarkerRe.FindStringSubmatch(s); m != nil {
		return atoi(m[1])
	}
	if m := stationPhraseRe.FindStringSubmatch(s); m != nil {
		return atoi(m[1])
	}
	return 0, false
}

// MatchesUnit reports whether the text names the given division
func MatchesUnit(text string, unit int) bool {
	if unit < 1 || unit > UnitCount {
		return false
	}
	s := fold(text)
	id := strconv.Itoa(unit)
	return strings.Contains(s, unitMarker+id) || strings.Contains(s, unitPhrase+id)
}

// MatchesStation reports whether the text names the given station id.
// Both the literal id and its integer-normalized form (leading zeros
// stripped) are tried against the marker and phrase forms
func MatchesStation(text string, id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	s := fold(text)
	forms := []string{id}
	if n, err := strconv.Atoi(id); err == nil {
		if stripped := strconv.Itoa(n); stripped != id {
			forms = append(forms, stripped)
		}
	}
	for _, f := range forms {
		if strings.Contains(s, stationMarker+f) || strings.Contains(s, stationPhrase+f) {
			return true
		}
	}
	return false
}

// Label builds the composite "station within division" display label used by
// rankings and the per-station totals map
func Label(station, unit int) string {
	return stationMarker + strconv.Itoa(station) + " " + unitMarker + strconv.Itoa(unit)
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
