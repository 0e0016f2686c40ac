package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"09:00", "09:00", true},
		{"9:05", "09:05", true},
		{"23:59", "23:59", true},
		{"09:00:30", "09:00", true},
		{" 08:15 ", "08:15", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"noon", "", false},
		{"", "", false},
		{"12", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeClock(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestDurationLabel(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"full hours", "09:00", "17:00", "8h"},
		{"minutes only", "09:00", "09:45", "45m"},
		{"hours and minutes", "09:30", "12:00", "2h 30m"},
		{"inverted range", "09:00", "08:00", ""},
		{"zero range", "09:00", "09:00", ""},
		{"missing start", "", "17:00", ""},
		{"missing end", "09:00", "", ""},
		{"unparsable boundary", "soon", "17:00", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationLabel(tt.start, tt.end))
		})
	}
}
