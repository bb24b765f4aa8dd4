package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToLocal(t *testing.T) {
	assert.Equal(t, time.Local, Location(""))
	assert.Equal(t, time.Local, Location("Nowhere/Invalid"))
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestParseLocal(t *testing.T) {
	got, err := ParseLocal("2099-01-01", "10:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2099, 1, 1, 10, 30, 0, 0, time.UTC), got)
}

func TestParseLocal_RollsOverDayAndMidnight(t *testing.T) {
	cases := []struct {
		date, hm string
		want     time.Time
	}{
		{"2020-02-30", "10:00", time.Date(2020, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"2020-04-31", "09:00", time.Date(2020, 5, 1, 9, 0, 0, 0, time.UTC)},
		{"2020-01-01", "24:00", time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2021-12-31", "24:00", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseLocal(tc.date, tc.hm, time.UTC)
		require.NoError(t, err, "%s %s", tc.date, tc.hm)
		assert.Equal(t, tc.want, got, "%s %s", tc.date, tc.hm)
	}
}

func TestParseLocal_NotAnInstant(t *testing.T) {
	cases := [][2]string{
		{"2024-13-40", "10:00"},
		{"2024-00-10", "10:00"},
		{"2024-01-32", "10:00"},
		{"2024-01-00", "10:00"},
		{"2099-01-01", "25:00"},
		{"2099-01-01", "10:60"},
		{"2099-01-01", "24:01"},
		{"01-01-2099", "10h00"},
	}
	for _, tc := range cases {
		_, err := ParseLocal(tc[0], tc[1], time.UTC)
		assert.ErrorIs(t, err, ErrNotAnInstant, "%s %s", tc[0], tc[1])
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2030, 5, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, at, FixedClock(at)())
}
