package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustask/internal/preset"
	"focustask/internal/task"
)

var now = time.Date(2026, time.October, 14, 15, 4, 5, 0, time.Local)

func mk(t *testing.T, title string, p task.Priority, when time.Time) task.Task {
	t.Helper()
	tk, err := task.New(task.Draft{Title: title, Priority: p, Time: when})
	require.NoError(t, err)
	return tk
}

func titles[T Sortable](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.SortTitle()
	}
	return out
}

func TestTargetDate(t *testing.T) {
	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.Local), TargetDate(Today, now))
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.Local), TargetDate(Tomorrow, now))
	assert.Equal(t, time.Date(2026, 10, 13, 0, 0, 0, 0, time.Local), TargetDate(Yesterday, now))
	assert.Equal(t, TargetDate(Today, now), TargetDate(RelativeDay(42), now))
}

func TestTargetDate_MonthBoundary(t *testing.T) {
	last := time.Date(2026, time.October, 31, 23, 30, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.Local), TargetDate(Tomorrow, last))
}

func TestFilter_TomorrowOnlyInTomorrow(t *testing.T) {
	tomorrowMidnight := TargetDate(Tomorrow, now)
	tk, err := task.New(task.Draft{Title: "x", Time: tomorrowMidnight, Date: tomorrowMidnight})
	require.NoError(t, err)
	tasks := []task.Task{
		mk(t, "today", task.Low, now),
		tk,
		mk(t, "yesterday", task.Low, now.AddDate(0, 0, -1)),
	}

	assert.Equal(t, []task.Task{tk}, Filter(tasks, Tomorrow, now))
	assert.NotContains(t, Filter(tasks, Today, now), tk)
	assert.NotContains(t, Filter(tasks, Yesterday, now), tk)
	assert.Equal(t, []string{"today"}, titles(Filter(tasks, Today, now)))
	assert.Equal(t, []string{"yesterday"}, titles(Filter(tasks, Yesterday, now)))
}

func TestRelativeDay(t *testing.T) {
	assert.Equal(t, "Hari Ini", Today.Label())
	assert.Equal(t, Tomorrow, Today.Next())
	assert.Equal(t, Today, Yesterday.Next())

	d, err := ParseDay("besok")
	require.NoError(t, err)
	assert.Equal(t, Tomorrow, d)
	d, err = ParseDay("yesterday")
	require.NoError(t, err)
	assert.Equal(t, Yesterday, d)
	_, err = ParseDay("later")
	assert.Error(t, err)
}

func TestSort(t *testing.T) {
	base := []task.Task{
		mk(t, "b", task.Medium, now.Add(2*time.Hour)),
		mk(t, "c", task.High, now),
		mk(t, "a", task.Low, now.Add(time.Hour)),
	}
	tests := []struct {
		value SortValue
		want  []string
	}{
		{SortTitleAsc, []string{"a", "b", "c"}},
		{SortTitleDesc, []string{"c", "b", "a"}},
		{SortDateNear, []string{"c", "a", "b"}},
		{SortDateFar, []string{"b", "a", "c"}},
		{SortPriorityLowHigh, []string{"a", "b", "c"}},
		{SortPriorityHighLow, []string{"c", "b", "a"}},
		{SortNone, []string{"b", "c", "a"}},
		{SortValue("bogus"), []string{"b", "c", "a"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Sort(base, tt.value)))
		})
	}
	assert.Equal(t, []string{"b", "c", "a"}, titles(base), "input must not change")
}

func TestSort_Stable(t *testing.T) {
	tasks := []task.Task{mk(t, "b", task.High, now), mk(t, "a", task.High, now)}

	assert.Equal(t, []string{"a", "b"}, titles(Sort(tasks, SortTitleAsc)))
	assert.Equal(t, []string{"b", "a"}, titles(Sort(tasks, SortPriorityHighLow)))
	assert.Equal(t, []string{"b", "a"}, titles(Sort(tasks, SortPriorityLowHigh)))
	assert.Equal(t, []string{"b", "a"}, titles(Sort(tasks, SortDateNear)))
}

func TestSort_Presets(t *testing.T) {
	mkp := func(title string, p task.Priority) preset.Preset {
		pr, err := preset.New(preset.Draft{Title: title, Priority: p, Day: time.Monday, Time: now})
		require.NoError(t, err)
		return pr
	}
	ps := []preset.Preset{mkp("low", task.Low), mkp("high", task.High)}
	assert.Equal(t, []string{"high", "low"}, titles(Sort(ps, SortPriorityHighLow)))
}

func TestOptions(t *testing.T) {
	opts := Options()
	require.Len(t, opts, 6)
	assert.Equal(t, SortPriorityHighLow, opts[0].Value)

	o, ok := OptionFor(SortDateFar)
	assert.True(t, ok)
	assert.Equal(t, "6", o.ID)
	_, ok = OptionFor("nope")
	assert.False(t, ok)

	assert.Equal(t, SortPriorityLowHigh, NextOption(SortPriorityHighLow).Value)
	assert.Equal(t, SortPriorityHighLow, NextOption(SortDateFar).Value)
	assert.Equal(t, SortPriorityHighLow, NextOption(SortNone).Value)
}

func TestSplice(t *testing.T) {
	a := mk(t, "a", task.Low, now)
	hidden := mk(t, "hidden", task.Low, now.AddDate(0, 0, 1))
	b := mk(t, "b", task.Low, now)
	c := mk(t, "c", task.Low, now)
	all := []task.Task{a, hidden, b, c}

	got := Splice(all, []task.Task{c, a, b})
	assert.Equal(t, []string{"c", "hidden", "a", "b"}, titles(got))
	assert.Equal(t, []string{"a", "hidden", "b", "c"}, titles(all))
}
