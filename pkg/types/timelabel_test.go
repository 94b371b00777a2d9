package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeLabelFromString(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    TimeLabel
		wantErr bool
	}{
		{"canonical morning", "09:00 AM", "09:00 AM", false},
		{"canonical noon", "12:00 PM", "12:00 PM", false},
		{"surrounding spaces", "  10:00 AM ", "10:00 AM", false},
		{"24-hour format", "14:00", "", true},
		{"missing meridiem", "09:00", "", true},
		{"garbage", "nine am", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewTimeLabelFromString(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTimeLabel_Minutes(t *testing.T) {
	cases := []struct {
		label TimeLabel
		want  int
	}{
		{"12:00 AM", 0},
		{"09:00 AM", 540},
		{"12:00 PM", 720},
		{"01:30 PM", 810},
		{"11:59 PM", 1439},
	}

	for _, tc := range cases {
		got, err := tc.label.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "label %q", tc.label)
	}

	_, err := TimeLabel("25:00 XO").Minutes()
	require.ErrorIs(t, err, ErrInvalidTimeLabel)
}

func TestTimeLabel_IsBefore(t *testing.T) {
	assert.True(t, TimeLabel("09:00 AM").IsBefore("10:00 AM"))
	assert.True(t, TimeLabel("11:00 AM").IsBefore("12:00 PM"))
	assert.False(t, TimeLabel("10:00 AM").IsBefore("09:00 AM"))
	assert.False(t, TimeLabel("09:00 AM").IsBefore("09:00 AM"))

	// Некорректные метки несравнимы
	assert.False(t, TimeLabel("bogus").IsBefore("09:00 AM"))
	assert.False(t, TimeLabel("09:00 AM").IsBefore("bogus"))
}

func TestSplitTimeRange(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		wantStart TimeLabel
		wantEnd   TimeLabel
		wantErr   error
	}{
		{"valid morning slot", "09:00 AM - 10:00 AM", "09:00 AM", "10:00 AM", nil},
		{"crosses noon", "11:00 AM - 12:00 PM", "11:00 AM", "12:00 PM", nil},
		{"no separator", "09:00 AM to 10:00 AM", "", "", ErrInvalidTimeRange},
		{"bad start", "9am - 10:00 AM", "", "", ErrInvalidTimeLabel},
		{"bad end", "09:00 AM - ten", "", "", ErrInvalidTimeLabel},
		{"start equals end", "09:00 AM - 09:00 AM", "", "", ErrInvalidTimeRange},
		{"start after end", "10:00 AM - 09:00 AM", "", "", ErrInvalidTimeRange},
		{"empty", "", "", "", ErrInvalidTimeRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := SplitTimeRange(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}
