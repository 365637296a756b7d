package timezone_test

import (
	"staybook/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	loc := timezone.Location()

	require.NotNil(t, loc)
	assert.Same(t, loc, timezone.Location())
	assert.Equal(t, loc, timezone.Now().Location())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "calendar date at utc midnight",
			value: "2026-05-01",
			want:  time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			value: "  2026-05-01 ",
			want:  time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 timestamp keeps its offset",
			value: "2026-05-01T14:00:00+05:30",
			want:  time.Date(2026, time.May, 1, 8, 30, 0, 0, time.UTC),
		},
		{
			name:    "day out of range",
			value:   "2026-02-30",
			wantErr: true,
		},
		{
			name:    "free text",
			value:   "next friday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCalendarDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)

	tests := []struct {
		name  string
		value time.Time
		want  time.Time
	}{
		{
			name:  "late evening keeps its own day",
			value: time.Date(2026, time.March, 10, 22, 45, 12, 99, ist),
			want:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "just after midnight",
			value: time.Date(2026, time.March, 11, 0, 5, 0, 0, ist),
			want:  time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.CalendarDate(tt.value))
		})
	}
}

func TestParseDate_WholeDaysAcrossClockChange(t *testing.T) {
	checkIn, err := timezone.ParseDate("2026-10-24")
	require.NoError(t, err)

	checkOut, err := timezone.ParseDate("2026-10-26")
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, checkOut.Sub(checkIn))
}

func TestFormat(t *testing.T) {
	instant := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, instant.In(timezone.Location()).Format(time.DateOnly), timezone.Format(instant, time.DateOnly))
}
