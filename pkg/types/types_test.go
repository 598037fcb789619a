package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	want := time.Date(2026, 11, 20, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"sql format", "2026-11-20 10:30:00"},
		{"iso without zone", "2026-11-20T10:30:00"},
		{"rfc3339", "2026-11-20T10:30:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v, want %v", got, want)
		})
	}

	_, err := ParseDateTime("20/11/2026 10:30")
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 11, 20, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "2026-11-20 09:05:03", FormatDateTime(ts))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 28, got.Day())

	_, err = ParseDate("28.02.2026")
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", ts.String())

	// Формат без секунд дополняется нулями
	ts, err = NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", ts.String())

	_, err = NewTimeStringFromString("9h30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("10:00:00")

	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30:00"), got)

	got, err = ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30:00"), got)

	// Переход через полночь не поддерживается
	_, err = TimeString("23:45:00").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00:00").IsBefore("10:00:00"))
	assert.False(t, TimeString("10:00:00").IsBefore("10:00:00"))
	assert.True(t, TimeString("10:30:00").IsAfter("10:00:00"))
}

func TestTimeStringAt(t *testing.T) {
	date := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:30:00").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 20, 14, 30, 0, 0, time.UTC), got)
}
