package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	return New(&Config{
		Weekday:  time.Wednesday,
		Location: loc,
	})
}

func TestTargetDate(t *testing.T) {
	r := newTestResolver(t)
	loc := r.Location()

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "monday resolves to upcoming wednesday",
			now:  time.Date(2025, 11, 3, 9, 0, 0, 0, loc),
			want: "2025-11-05",
		},
		{
			name: "wednesday morning resolves to today",
			now:  time.Date(2025, 11, 5, 9, 0, 0, 0, loc),
			want: "2025-11-05",
		},
		{
			name: "wednesday just before cutoff resolves to today",
			now:  time.Date(2025, 11, 5, 23, 29, 59, 0, loc),
			want: "2025-11-05",
		},
		{
			name: "wednesday at cutoff rolls to next week",
			now:  time.Date(2025, 11, 5, 23, 30, 0, 0, loc),
			want: "2025-11-12",
		},
		{
			name: "wednesday after cutoff rolls to next week",
			now:  time.Date(2025, 11, 5, 23, 45, 0, 0, loc),
			want: "2025-11-12",
		},
		{
			name: "thursday resolves to next wednesday",
			now:  time.Date(2025, 11, 6, 0, 5, 0, 0, loc),
			want: "2025-11-12",
		},
		{
			name: "sunday resolves to next wednesday",
			now:  time.Date(2025, 11, 9, 12, 0, 0, 0, loc),
			want: "2025-11-12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.TargetDate(tt.now))
		})
	}
}

func TestTargetDateConvertsToLocalTime(t *testing.T) {
	r := newTestResolver(t)

	// 21:00 UTC on Wednesday is 00:00 Thursday in Moscow, so the
	// occurrence being resolved is already the following week's.
	now := time.Date(2025, 11, 5, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-11-12", r.TargetDate(now))
}

func TestCloseTime(t *testing.T) {
	r := newTestResolver(t)

	closeAt, err := r.CloseTime("2025-11-05")
	require.NoError(t, err)

	assert.Equal(t, 23, closeAt.Hour())
	assert.Equal(t, 30, closeAt.Minute())
	assert.Equal(t, "2025-11-05", closeAt.Format(DateLayout))
	assert.Equal(t, r.Location(), closeAt.Location())
}

func TestCloseTimeRejectsMalformedDate(t *testing.T) {
	r := newTestResolver(t)

	_, err := r.CloseTime("05.11.2025")
	assert.Error(t, err)
}
