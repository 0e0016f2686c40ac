package schedule

import (
	"mindwell/models"
)

// CountAvailableDays tallies the days marked available in one modality
// schedule. Availability already implies both boundary times are present,
// so an available day with an inverted window still counts here; only its
// duration label goes blank.
func CountAvailableDays(ms models.ModalitySchedule) int {
	count := 0
	for _, day := range ms {
		if day.IsAvailable {
			count++
		}
	}
	return count
}

// DeriveMetrics computes the summary values for a normalized schedule:
// per-modality available-day counts, the overall total, and a duration
// label for each weekday. Legacy schedules carry a single modality, so
// its count is the total; for modern schedules the total is the larger
// of the two channels.
func DeriveMetrics(ns models.NormalizedSchedule) models.ScheduleMetrics {
	onlineCount := CountAvailableDays(ns.Online)
	inPersonCount := CountAvailableDays(ns.InPerson)

	total := onlineCount
	if ns.FormatVersion == models.ScheduleFormatModern && inPersonCount > total {
		total = inPersonCount
	}

	return models.ScheduleMetrics{
		AvailableDayCount: models.AvailableDayCount{
			Online:   onlineCount,
			InPerson: inPersonCount,
		},
		TotalAvailableDays:  total,
		PerDayDurationLabel: perDayLabels(ns),
	}
}

// perDayLabels renders a duration label for every canonical day from the
// primary modality: online when present, in-person otherwise. Days that
// are unavailable or carry an inverted window map to "".
func perDayLabels(ns models.NormalizedSchedule) map[string]string {
	primary := ns.Online
	if primary == nil {
		primary = ns.InPerson
	}

	labels := make(map[string]string, len(CanonicalDays))
	for _, day := range CanonicalDays {
		entry, ok := primary[day]
		if !ok || !entry.IsAvailable {
			labels[day] = ""
			continue
		}
		labels[day] = DurationLabel(entry.StartTime, entry.EndTime)
	}
	return labels
}
