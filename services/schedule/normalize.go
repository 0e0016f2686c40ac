package schedule

import (
	"mindwell/models"
)

// Normalize is the pipeline entry point: it reads an untrusted raw
// availability value (nil, JSON-encoded string, or object under either
// schema generation) and produces a complete NormalizedSchedule. It is a
// total function: no input shape raises an error, and the worst case is
// an Empty result with no modality schedules.
func Normalize(input any) models.NormalizedSchedule {
	format, obj := DetectFormat(input)

	switch format {
	case models.ScheduleFormatModern:
		return models.NormalizedSchedule{
			FormatVersion: models.ScheduleFormatModern,
			Online:        modalityFrom(obj, "online"),
			InPerson:      modalityFrom(obj, "in_person", "inPerson"),
		}
	case models.ScheduleFormatLegacy:
		// The legacy generation predates modality separation; its single
		// schedule is carried on the online channel.
		return models.NormalizedSchedule{
			FormatVersion: models.ScheduleFormatLegacy,
			Online:        buildModality(obj),
		}
	default:
		return models.NormalizedSchedule{FormatVersion: models.ScheduleFormatEmpty}
	}
}

// modalityFrom extracts and normalizes the per-day object stored under
// the first matching modality key, or nil when no such object exists.
func modalityFrom(obj map[string]any, keys ...string) models.ModalitySchedule {
	for _, key := range keys {
		if nested, ok := obj[key].(map[string]any); ok {
			return buildModality(nested)
		}
	}
	return nil
}

// buildModality resolves and validates all seven weekdays of one flat
// per-day object. The result always carries every canonical day key.
func buildModality(raw map[string]any) models.ModalitySchedule {
	resolved := make(models.ModalitySchedule, len(CanonicalDays))
	for _, day := range CanonicalDays {
		entry, _ := ResolveDayEntry(raw, day)
		resolved[day] = ValidateDayEntry(entry)
	}
	return resolved
}
