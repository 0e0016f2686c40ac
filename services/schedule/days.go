package schedule

import (
	"strings"
)

// CanonicalDays lists the seven weekday keys in week order. Every
// ModalitySchedule produced by this package carries exactly these keys.
var CanonicalDays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

var dayAbbreviations = map[string]string{
	"monday":    "mon",
	"tuesday":   "tue",
	"wednesday": "wed",
	"thursday":  "thu",
	"friday":    "fri",
	"saturday":  "sat",
	"sunday":    "sun",
}

// IsDayKey reports whether key names a weekday under any accepted
// spelling: full or three-letter, any casing.
func IsDayKey(key string) bool {
	lowered := strings.ToLower(strings.TrimSpace(key))
	for _, day := range CanonicalDays {
		if lowered == day || lowered == dayAbbreviations[day] {
			return true
		}
	}
	return false
}

// ResolveDayEntry looks up the raw entry for a canonical day inside a flat
// per-day object, trying historical key spellings in a fixed order: exact
// lowercase, exact uppercase, capitalized full label ("Monday"), then the
// lowercase and uppercase three-letter abbreviation. A miss is not an
// error; the caller materializes an unavailable default.
func ResolveDayEntry(raw map[string]any, day string) (any, bool) {
	abbrev := dayAbbreviations[day]
	candidates := []string{
		day,
		strings.ToUpper(day),
		strings.ToUpper(day[:1]) + day[1:],
		abbrev,
		strings.ToUpper(abbrev),
	}
	for _, key := range candidates {
		if entry, ok := raw[key]; ok {
			return entry, true
		}
	}
	return nil, false
}
