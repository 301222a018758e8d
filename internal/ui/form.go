package ui

import (
	"fmt"
	"strings"
)

type formKind int

const (
	formTask formKind = iota
	formPreset
	formLogin
	formRegister
	formProfile
)

// Field positions shared by the task and preset forms.
const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldDay
	fieldTime
)

// Auth form positions; confirm and name only exist when registering.
const (
	fieldEmail = iota
	fieldPassword
	fieldConfirm
	fieldFullName
)

const (
	fieldName = iota
	fieldProfileEmail
	fieldBio
)

type field struct {
	label string
	value string
	// choices makes the field a selector cycled with left/right.
	choices []string
	secret  bool
}

type formState struct {
	kind   formKind
	fields []field
	index  int
}

func (f *formState) current() *field {
	return &f.fields[f.index]
}

func (f *formState) value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return f.fields[i].value
}

func (f *formState) last() bool {
	return f.index >= len(f.fields)-1
}

func (f *formState) move(delta int) {
	f.index = wrapIndex(f.index+delta, len(f.fields))
}

// cycle steps the current selector field; text fields are left alone.
func (f *formState) cycle(delta int) {
	fl := f.current()
	if len(fl.choices) == 0 {
		return
	}
	idx := 0
	for i, c := range fl.choices {
		if c == fl.value {
			idx = i
			break
		}
	}
	fl.value = fl.choices[wrapIndex(idx+delta, len(fl.choices))]
}

func (f *formState) title() string {
	switch f.kind {
	case formTask:
		return "New task"
	case formPreset:
		return "New preset"
	case formLogin:
		return "Sign in"
	case formRegister:
		return "Create account"
	case formProfile:
		return "Edit profile"
	default:
		return ""
	}
}

func (f *formState) prompt() string {
	return fmt.Sprintf("Editing %s (field %d of %d). Enter to advance, Esc to cancel, tab to move.",
		f.current().label, f.index+1, len(f.fields))
}

func (f *formState) render(active string) string {
	var b strings.Builder
	for i, fl := range f.fields {
		prefix := " "
		if i == f.index {
			prefix = ">"
		}
		val := fl.value
		if i == f.index && len(fl.choices) == 0 {
			val = active
		} else if fl.secret {
			val = strings.Repeat("•", len([]rune(fl.value)))
		}
		if len(fl.choices) > 0 {
			val = "‹ " + val + " ›"
		} else if strings.TrimSpace(val) == "" {
			val = dimStyle.Render("(empty)")
		}
		b.WriteString(fmt.Sprintf("%s %-12s : %s\n", prefix, fl.label, val))
	}
	return b.String()
}
