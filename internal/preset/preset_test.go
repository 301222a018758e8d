package preset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustask/internal/task"
)

// 2026-10-12 is a Monday.
var monday = time.Date(2026, time.October, 12, 9, 0, 0, 0, time.Local)

func TestNew(t *testing.T) {
	p, err := New(Draft{Title: "Olahraga", Priority: task.High, Day: time.Wednesday, Time: monday})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.Active)
	assert.Equal(t, time.Wednesday, p.Day)

	_, err = New(Draft{Title: " ", Time: monday})
	assert.ErrorIs(t, err, task.ErrEmptyTitle)
	_, err = New(Draft{Title: "x", Day: time.Weekday(9), Time: monday})
	assert.ErrorIs(t, err, ErrInvalidDay)
	_, err = New(Draft{Title: "x", Priority: task.Priority(-1), Time: monday})
	assert.ErrorIs(t, err, task.ErrInvalidPriority)
}

func TestList_Transitions(t *testing.T) {
	a, err := New(Draft{Title: "a", Day: time.Monday, Time: monday})
	require.NoError(t, err)
	b, err := New(Draft{Title: "b", Day: time.Friday, Time: monday})
	require.NoError(t, err)

	l := List{}.Add(a).Add(b)
	assert.Len(t, l, 2)

	off := l.ToggleActive(a.ID)
	assert.False(t, off[0].Active)
	assert.True(t, l[0].Active)
	assert.Equal(t, l, off.ToggleActive(a.ID))
	assert.Equal(t, l, l.ToggleActive("missing"))

	gone := l.Remove(a.ID)
	assert.Len(t, gone, 1)
	_, ok := gone.Find(a.ID)
	assert.False(t, ok)
	assert.Len(t, gone.Remove("missing"), 1)
}

func TestParseDay(t *testing.T) {
	for in, want := range map[string]time.Weekday{
		"Senin": time.Monday, "selasa": time.Tuesday, "RABU": time.Wednesday, "Kamis": time.Thursday,
		"jumat": time.Friday, "Sabtu": time.Saturday, "minggu": time.Sunday, "sunday": time.Sunday,
	} {
		got, err := ParseDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDay("someday")
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Senin", DayLabel(time.Monday))
	assert.Equal(t, "Minggu", DayLabel(time.Sunday))
}

func TestMaterialize_OnMonday(t *testing.T) {
	got := Materialize(nil, Illustrative(monday))
	require.Len(t, got, 5)
	assert.Equal(t, "Laporan Mingguan", got[2].Title)
	assert.Equal(t, task.Midnight(monday), got[2].Date)
	assert.Equal(t, task.Midnight(monday.AddDate(0, 0, 1)), got[0].Date)
	assert.Equal(t, task.Midnight(monday.AddDate(0, 0, -1)), got[3].Date)
}

func TestMaterialize_SkipsInactive(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	got := Materialize(nil, Illustrative(tuesday))
	require.Len(t, got, 4)
	for _, tk := range got {
		assert.NotEqual(t, "Laporan Mingguan", tk.Title)
	}
}

func TestMaterialize_Dedup(t *testing.T) {
	first := Materialize(nil, Illustrative(monday))
	again := Materialize(first, Illustrative(monday.Add(3*time.Hour)))
	assert.Equal(t, first, again)

	// Same title on another day is a different candidate.
	next := Materialize(first, Illustrative(monday.AddDate(0, 0, 7)))
	assert.Len(t, next, 10)
}
