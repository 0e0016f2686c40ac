package models

// ScheduleFormat identifies which persisted schema generation a raw
// availability value was written under.
type ScheduleFormat string

const (
	// ScheduleFormatEmpty means no usable schedule could be read from the raw value.
	ScheduleFormatEmpty ScheduleFormat = "empty"
	// ScheduleFormatLegacy is the flat per-day layout without modality separation.
	ScheduleFormatLegacy ScheduleFormat = "legacy"
	// ScheduleFormatModern nests a per-day layout under "online" / "in_person".
	ScheduleFormatModern ScheduleFormat = "modern"
)

// DayAvailability is the strict, fully-resolved state of one weekday.
// When IsAvailable is true both boundary times are guaranteed present.
type DayAvailability struct {
	IsAvailable         bool   `bson:"isAvailable" json:"isAvailable"`
	StartTime           string `bson:"startTime,omitempty" json:"startTime,omitempty"` // "HH:MM"
	EndTime             string `bson:"endTime,omitempty" json:"endTime,omitempty"`     // "HH:MM"
	SlotDurationMinutes int    `bson:"slotDurationMinutes" json:"slotDurationMinutes"`
}

// ModalitySchedule maps each canonical weekday key to its resolved state.
// After normalization it always carries exactly the seven weekdays; days
// absent from the raw value materialize as unavailable defaults.
type ModalitySchedule map[string]DayAvailability

// NormalizedSchedule is the total, exception-free reading of a specialist's
// persisted weekly availability. A nil modality means the raw value carried
// no schedule for that consultation channel.
type NormalizedSchedule struct {
	FormatVersion ScheduleFormat   `bson:"formatVersion" json:"formatVersion"`
	Online        ModalitySchedule `bson:"online,omitempty" json:"online,omitempty"`
	InPerson      ModalitySchedule `bson:"inPerson,omitempty" json:"inPerson,omitempty"`
}

// AvailableDayCount splits the available-day tally by consultation channel.
type AvailableDayCount struct {
	Online   int `bson:"online" json:"online"`
	InPerson int `bson:"inPerson" json:"inPerson"`
}

// ScheduleMetrics carries the derived summary values the presentation
// layer renders next to a weekly grid.
type ScheduleMetrics struct {
	AvailableDayCount   AvailableDayCount `bson:"availableDayCount" json:"availableDayCount"`
	TotalAvailableDays  int               `bson:"totalAvailableDays" json:"totalAvailableDays"`
	PerDayDurationLabel map[string]string `bson:"perDayDurationLabel" json:"perDayDurationLabel"`
}

// WeeklyAvailability bundles the normalized schedule with its derived
// metrics; this is what the availability endpoint returns and what the
// external slot generator consumes.
type WeeklyAvailability struct {
	SpecialistID string             `bson:"specialistId" json:"specialistId"`
	Schedule     NormalizedSchedule `bson:"schedule" json:"schedule"`
	Metrics      ScheduleMetrics    `bson:"metrics" json:"metrics"`
}
