package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHoursFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "store_hours.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStoreHoursMissingFileMeansAlwaysOpen(t *testing.T) {
	hours, err := LoadStoreHours(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.True(t, hours.IsOpenAt(time.Date(2024, 1, 8, 3, 0, 0, 0, time.UTC)))
}

func TestLoadStoreHoursRejectsBadTimes(t *testing.T) {
	path := writeHoursFile(t, "days:\n  monday:\n    open: \"6am\"\n    close: \"22:00\"\n")

	_, err := LoadStoreHours(path)
	assert.Error(t, err)
}

func TestIsOpenAt(t *testing.T) {
	path := writeHoursFile(t, `days:
  monday:
    open: "06:00"
    close: "22:00"
  sunday:
    closed: true
`)
	hours, err := LoadStoreHours(path)
	require.NoError(t, err)

	// 2024-01-08 is a Monday, 2024-01-07 a Sunday
	assert.True(t, hours.IsOpenAt(time.Date(2024, 1, 8, 6, 0, 0, 0, time.UTC)))
	assert.True(t, hours.IsOpenAt(time.Date(2024, 1, 8, 21, 59, 0, 0, time.UTC)))
	assert.False(t, hours.IsOpenAt(time.Date(2024, 1, 8, 5, 59, 0, 0, time.UTC)))
	assert.False(t, hours.IsOpenAt(time.Date(2024, 1, 8, 22, 0, 0, 0, time.UTC)))
	assert.False(t, hours.IsOpenAt(time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)))

	// Days absent from the file are open all day
	assert.True(t, hours.IsOpenAt(time.Date(2024, 1, 9, 2, 0, 0, 0, time.UTC)))
}

func TestIsOpenAtOvernightWindow(t *testing.T) {
	path := writeHoursFile(t, `days:
  monday:
    open: "22:00"
    close: "06:00"
`)
	hours, err := LoadStoreHours(path)
	require.NoError(t, err)

	// 2024-01-08 is a Monday; the window wraps past midnight
	assert.True(t, hours.IsOpenAt(time.Date(2024, 1, 8, 23, 0, 0, 0, time.UTC)))
	assert.True(t, hours.IsOpenAt(time.Date(2024, 1, 8, 3, 0, 0, 0, time.UTC)))
	assert.True(t, hours.IsOpenAt(time.Date(2024, 1, 8, 5, 59, 0, 0, time.UTC)))
	assert.False(t, hours.IsOpenAt(time.Date(2024, 1, 8, 6, 0, 0, 0, time.UTC)))
	assert.False(t, hours.IsOpenAt(time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)))
	assert.False(t, hours.IsOpenAt(time.Date(2024, 1, 8, 21, 59, 0, 0, time.UTC)))
}

func TestLoadStoreHoursRejectsEqualOpenClose(t *testing.T) {
	path := writeHoursFile(t, "days:\n  monday:\n    open: \"09:00\"\n    close: \"09:00\"\n")

	_, err := LoadStoreHours(path)
	assert.Error(t, err)
}

func TestIsOpenAtNilSchedule(t *testing.T) {
	var hours *StoreHours
	assert.True(t, hours.IsOpenAt(time.Now()))
}
