package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPriority is returned when a priority name or label is not recognised.
var ErrInvalidPriority = errors.New("invalid priority")

// Priority represents the urgency level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// AllPriorities returns the selectable priorities in display order.
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Label returns the human-facing label shown in the priority selector.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "Alta"
	case PriorityMedium:
		return "Media"
	case PriorityLow:
		return "Baja"
	default:
		return string(p)
	}
}

// Color returns the name of the color used for the priority dot.
func (p Priority) Color() string {
	switch p {
	case PriorityHigh:
		return "red"
	case PriorityMedium:
		return "yellow"
	case PriorityLow:
		return "green"
	default:
		return ""
	}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority accepts either the English name or the display label,
// case-insensitively.
func ParsePriority(s string) (Priority, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, p := range AllPriorities() {
		if needle == string(p) || needle == strings.ToLower(p.Label()) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of alta, media, baja", ErrInvalidPriority, s)
}

// Task is a single to-do item. Tasks are treated as values: updates produce
// a new Task instead of mutating an existing one.
type Task struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Priority    Priority `yaml:"priority" json:"priority"`
	Completed   bool     `yaml:"completed" json:"completed"`
}

// ShortID returns the first eight characters of the task ID.
func (t Task) ShortID() string {
	if len(t.ID) <= 8 {
		return t.ID
	}
	return t.ID[:8]
}
