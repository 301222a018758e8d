package preset

import (
	"time"

	"focustask/internal/task"
)

// Template is a seed candidate. Time carries both the target day and the
// time of day of the task it becomes.
type Template struct {
	Title       string
	Description string
	Priority    task.Priority
	Time        time.Time
	Active      bool
}

// Illustrative returns the fixed first-load seed relative to now.
func Illustrative(now time.Time) []Template {
	tomorrow := now.AddDate(0, 0, 1)
	yesterday := now.AddDate(0, 0, -1)
	return []Template{
		{Title: "Meeting Harian", Description: "Diskusi tim", Priority: task.Medium, Time: tomorrow, Active: true},
		{Title: "Seharian rebahan", Description: "Diskusi tim", Priority: task.Low, Time: tomorrow, Active: true},
		{Title: "Laporan Mingguan", Priority: task.High, Time: now, Active: now.Weekday() == time.Monday},
		{Title: "a test", Priority: task.High, Time: yesterday, Active: true},
		{Title: "b test", Priority: task.Medium, Time: yesterday, Active: true},
	}
}

// Materialize appends a task for every active template unless a task with
// the same title already sits on the template's date.
func Materialize(tasks task.List, templates []Template) task.List {
	out := tasks
	for _, tpl := range templates {
		if !tpl.Active || exists(out, tpl.Title, tpl.Time) {
			continue
		}
		t, err := task.New(task.Draft{
			Title:       tpl.Title,
			Description: tpl.Description,
			Priority:    tpl.Priority,
			Time:        tpl.Time,
		})
		if err != nil {
			continue
		}
		out = out.Add(t)
	}
	return out
}

func exists(tasks task.List, title string, day time.Time) bool {
	for _, t := range tasks {
		if t.Title == title && t.OnDate(day) {
			return true
		}
	}
	return false
}
