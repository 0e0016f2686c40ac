package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeClock validates a wall-clock string in "HH:MM" or "HH:MM:SS"
// form and truncates it to "HH:MM". It reports false for anything it
// cannot read as a time of day.
func NormalizeClock(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return "", false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), true
}

// minutesOfDay converts "HH:MM" into minutes since midnight.
func minutesOfDay(clock string) (int, bool) {
	normalized, ok := NormalizeClock(clock)
	if !ok {
		return 0, false
	}
	hours, _ := strconv.Atoi(normalized[:2])
	minutes, _ := strconv.Atoi(normalized[3:])
	return hours*60 + minutes, true
}

// DurationLabel renders the elapsed time between two "HH:MM" boundaries
// as "{h}h {m}m", omitting zero components ("2h", "45m", "2h 30m").
// Missing, unparsable, or non-positive ranges yield the empty string;
// inverted windows degrade to "no label", never to an error.
func DurationLabel(startTime, endTime string) string {
	start, ok := minutesOfDay(startTime)
	if !ok {
		return ""
	}
	end, ok := minutesOfDay(endTime)
	if !ok {
		return ""
	}
	diff := end - start
	if diff <= 0 {
		return ""
	}

	hours := diff / 60
	minutes := diff % 60
	switch {
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}
