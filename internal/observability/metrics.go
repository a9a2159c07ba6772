package observability

import (
	"fmt"
	"time"
)

// Event types counted by the metrics calculator. They match the constants
// written by core.TaskManager.
const (
	eventCompletionToggled = "task.completion_toggled"
	eventPriorityChanged   = "task.priority_changed"
)

// Metrics holds calculated metrics derived from the event log.
type Metrics struct {
	Toggles           int            `json:"toggles"`
	TasksCompleted    int            `json:"tasks_completed"`
	TasksReopened     int            `json:"tasks_reopened"`
	PriorityChanges   int            `json:"priority_changes"`
	ChangesByPriority map[string]int `json:"changes_by_priority"`
	EventCount        int            `json:"event_count"`
	OldestEvent       *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent       *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

// metricsCalculator implements MetricsCalculator by reading from an EventLog.
type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a new MetricsCalculator that reads from the given EventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them into metrics.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{
		ChangesByPriority: make(map[string]int),
	}

	m.EventCount = len(events)

	for i, event := range events {
		if i == 0 {
			t := event.Time
			m.OldestEvent = &t
		}
		t := event.Time
		m.NewestEvent = &t

		switch event.Type {
		case eventCompletionToggled:
			m.Toggles++
			if completed, ok := event.Data["completed"].(bool); ok {
				if completed {
					m.TasksCompleted++
				} else {
					m.TasksReopened++
				}
			}
		case eventPriorityChanged:
			m.PriorityChanges++
			if p, ok := event.Data["new_priority"].(string); ok {
				m.ChangesByPriority[p]++
			}
		}
	}

	return m, nil
}
