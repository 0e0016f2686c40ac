package schedule

import (
	"strings"

	"mindwell/models"
)

// DefaultSlotDurationMinutes is applied whenever a day entry carries no
// usable slot duration of its own.
const DefaultSlotDurationMinutes = 30

// Field spellings observed across schema generations, in lookup order.
// Keeping them in one place beats scattering casing special-cases through
// the pipeline.
var (
	availableFlagKeys = []string{"is_available", "isAvailable", "available"}
	startTimeKeys     = []string{"start_time", "startTime", "start"}
	endTimeKeys       = []string{"end_time", "endTime", "end"}
	slotDurationKeys  = []string{"slot_duration_minutes", "slotDurationMinutes", "slot_duration", "slotDuration"}
)

// unavailableDay is the fully-unavailable default a day degrades to.
func unavailableDay() models.DayAvailability {
	return models.DayAvailability{
		IsAvailable:         false,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// ValidateDayEntry turns the raw entry for one weekday (or its absence)
// into a strict DayAvailability. The rules favor resilience over schema
// enforcement:
//
//   - a non-object or absent entry is fully unavailable;
//   - an availability flag explicitly false or null wins over any times;
//   - a missing or unparsable boundary time makes the day unavailable
//     regardless of the flag, so half-populated legacy entries never
//     surface as bookable;
//   - times are truncated to "HH:MM"; the slot duration falls back to
//     DefaultSlotDurationMinutes when absent or non-positive.
func ValidateDayEntry(raw any) models.DayAvailability {
	entry, ok := raw.(map[string]any)
	if !ok {
		return unavailableDay()
	}

	if flag, present := lookupField(entry, availableFlagKeys); present && isExplicitlyOff(flag) {
		return unavailableDay()
	}

	start, startOK := lookupClock(entry, startTimeKeys)
	end, endOK := lookupClock(entry, endTimeKeys)
	if !startOK || !endOK {
		return unavailableDay()
	}

	return models.DayAvailability{
		IsAvailable:         true,
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: resolveSlotDuration(entry),
	}
}

// lookupField returns the first present synonym, even when its value is nil.
func lookupField(entry map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if value, ok := entry[key]; ok {
			return value, true
		}
	}
	return nil, false
}

// isExplicitlyOff reports whether a flag value disables the day. Only an
// explicit false (or null) counts; a missing flag leaves the decision to
// the boundary times.
func isExplicitlyOff(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "false")
	default:
		return false
	}
}

// lookupClock finds the first synonym holding a parsable clock value and
// returns it truncated to "HH:MM".
func lookupClock(entry map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		value, ok := entry[key]
		if !ok {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		if normalized, ok := NormalizeClock(s); ok {
			return normalized, true
		}
	}
	return "", false
}

func resolveSlotDuration(entry map[string]any) int {
	value, ok := lookupField(entry, slotDurationKeys)
	if !ok {
		return DefaultSlotDurationMinutes
	}
	minutes, ok := asInt(value)
	if !ok || minutes <= 0 {
		return DefaultSlotDurationMinutes
	}
	return minutes
}

// asInt coerces the numeric encodings seen in persisted records: JSON
// decoding yields float64, bson decoding may yield int32/int64.
func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
