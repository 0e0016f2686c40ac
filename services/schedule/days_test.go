package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalDaysWeekOrder(t *testing.T) {
	require.Len(t, CanonicalDays, 7)
	assert.Equal(t, "monday", CanonicalDays[0])
	assert.Equal(t, "sunday", CanonicalDays[6])

	seen := map[string]bool{}
	for _, day := range CanonicalDays {
		assert.False(t, seen[day], "duplicate day %s", day)
		seen[day] = true
	}
}

func TestIsDayKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"monday", true},
		{"MONDAY", true},
		{"Tuesday", true},
		{"wed", true},
		{"SUN", true},
		{" friday ", true},
		{"holiday", false},
		{"", false},
		{"online", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDayKey(tt.key), "key %q", tt.key)
	}
}

func TestResolveDayEntry(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		day  string
		want any
		ok   bool
	}{
		{
			name: "exact lowercase",
			raw:  map[string]any{"monday": "low"},
			day:  "monday",
			want: "low",
			ok:   true,
		},
		{
			name: "uppercase fallback",
			raw:  map[string]any{"TUESDAY": "up"},
			day:  "tuesday",
			want: "up",
			ok:   true,
		},
		{
			name: "capitalized label fallback",
			raw:  map[string]any{"Wednesday": "cap"},
			day:  "wednesday",
			want: "cap",
			ok:   true,
		},
		{
			name: "three letter abbreviation",
			raw:  map[string]any{"thu": "abbr"},
			day:  "thursday",
			want: "abbr",
			ok:   true,
		},
		{
			name: "uppercase abbreviation",
			raw:  map[string]any{"FRI": "ABBR"},
			day:  "friday",
			want: "ABBR",
			ok:   true,
		},
		{
			name: "lowercase wins over label",
			raw:  map[string]any{"saturday": "low", "Saturday": "cap"},
			day:  "saturday",
			want: "low",
			ok:   true,
		},
		{
			name: "no match yields absent",
			raw:  map[string]any{"Sunday": "cap"},
			day:  "monday",
			want: nil,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDayEntry(tt.raw, tt.day)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
