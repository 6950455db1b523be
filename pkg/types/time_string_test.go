package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "9:30", "23:59", "12:05"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), "expected %q to be valid", s)
	}

	invalid := []string{"", "24:00", "12:60", "12", "12:5", "ab:cd", "12:00:00", "-1:00"}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), "expected %q to be invalid", s)
	}
}

func TestNewTimeStringFromString_Normalizes(t *testing.T) {
	ts, err := NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", ts.String())

	_, err = NewTimeStringFromString("25:00")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	ts, err = TimeString("10:00").AddMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), ts)

	// Переход через полночь - ошибка, а не следующий день
	_, err = TimeString("23:30").AddMinutes(45)
	require.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("11:00").IsBefore("10:00"))

	assert.True(t, TimeString("11:00").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_Combine(t *testing.T) {
	day := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	instant := TimeString("09:30").Combine(day)
	assert.Equal(t, time.Date(2025, 11, 10, 9, 30, 0, 0, time.UTC), instant)

	// Время дня в исходной дате игнорируется
	noon := time.Date(2025, 11, 10, 12, 45, 11, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 11, 10, 9, 30, 0, 0, time.UTC), TimeString("09:30").Combine(noon))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Колонка TIME приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:30")))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("9:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("99:99").Value()
	require.Error(t, err)
}
