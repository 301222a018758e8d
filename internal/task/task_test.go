package task

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2026, time.October, 14, h, m, 0, 0, time.Local)
}

func TestNew(t *testing.T) {
	tk, err := New(Draft{Title: "  Buy milk ", Priority: High, Time: at(18, 0)})
	require.NoError(t, err)

	_, err = uuid.Parse(tk.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Buy milk", tk.Title)
	assert.Equal(t, High, tk.Priority)
	assert.False(t, tk.Completed)
	assert.Equal(t, at(0, 0), tk.Date)
}

func TestNew_NormalizesDate(t *testing.T) {
	tk, err := New(Draft{Title: "x", Time: at(9, 30), Date: at(13, 45).AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, at(0, 0).AddDate(0, 0, 1), tk.Date)
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  error
	}{
		{"empty title", Draft{Title: "", Time: at(8, 0)}, ErrEmptyTitle},
		{"blank title", Draft{Title: "   ", Time: at(8, 0)}, ErrEmptyTitle},
		{"bad priority", Draft{Title: "x", Priority: Priority(7), Time: at(8, 0)}, ErrInvalidPriority},
		{"no time", Draft{Title: "x"}, ErrMissingTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.draft)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_ErrorsCarryContext(t *testing.T) {
	_, err := New(Draft{Title: "Buy milk"})
	assert.ErrorIs(t, err, ErrMissingTime)
	assert.EqualError(t, err, `time is required: task "Buy milk"`)

	_, err = New(Draft{Title: "  ", Time: at(8, 0)})
	assert.EqualError(t, err, `title cannot be empty: got "  "`)
}

func TestNew_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		tk, err := New(Draft{Title: "x", Time: at(8, 0)})
		require.NoError(t, err)
		assert.False(t, seen[tk.ID])
		seen[tk.ID] = true
	}
}

func TestParsePriority(t *testing.T) {
	for in, want := range map[string]Priority{
		"low": Low, "Rendah": Low, "MEDIUM": Medium, "sedang": Medium, "High": High, " tinggi ": High,
	} {
		got, err := ParsePriority(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "Rendah", Low.Label())
	assert.Equal(t, "Sedang", Medium.Label())
	assert.Equal(t, "Tinggi", High.Label())
	assert.Equal(t, "high", High.String())
}

func TestMidnight(t *testing.T) {
	got := Midnight(at(23, 59))
	assert.Equal(t, at(0, 0), got)
	assert.Equal(t, time.Local, got.Location())
}
