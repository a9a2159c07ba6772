package observability

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// For any sequence of toggle events, completions plus reopenings equal the
// number of toggles reported.
func TestProperty_ToggleCountsAddUp(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dir := t.TempDir()
		el, err := NewJSONLEventLog(filepath.Join(dir, "events.jsonl"))
		if err != nil {
			t.Fatalf("creating event log: %v", err)
		}
		defer el.Close()

		n := rapid.IntRange(1, 20).Draw(rt, "n")
		base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
		wantCompleted := 0
		for i := 0; i < n; i++ {
			completed := rapid.Bool().Draw(rt, fmt.Sprintf("completed_%d", i))
			if completed {
				wantCompleted++
			}
			err := el.Write(Event{
				Time:    base.Add(time.Duration(i) * time.Minute),
				Level:   LevelInfo,
				Type:    eventCompletionToggled,
				Message: eventCompletionToggled,
				Data:    map[string]any{"task_id": fmt.Sprintf("t%d", i), "completed": completed},
			})
			if err != nil {
				t.Fatalf("writing event: %v", err)
			}
		}

		m, err := NewMetricsCalculator(el).Calculate(base.Add(-time.Hour))
		if err != nil {
			t.Fatalf("calculating metrics: %v", err)
		}
		if m.Toggles != n {
			rt.Errorf("Toggles = %d, want %d", m.Toggles, n)
		}
		if m.TasksCompleted != wantCompleted {
			rt.Errorf("TasksCompleted = %d, want %d", m.TasksCompleted, wantCompleted)
		}
		if m.TasksCompleted+m.TasksReopened != m.Toggles {
			rt.Errorf("completed %d + reopened %d != toggles %d", m.TasksCompleted, m.TasksReopened, m.Toggles)
		}
	})
}

// For any mix of event types, EventCount equals the number written and the
// per-priority counts sum to PriorityChanges.
func TestProperty_EventCountIsTotal(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		el := NewMemoryEventLog()
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
		types := []string{eventCompletionToggled, eventPriorityChanged, "config.invalid"}
		priorities := []string{"high", "medium", "low"}

		for i := 0; i < n; i++ {
			typ := rapid.SampledFrom(types).Draw(rt, fmt.Sprintf("type_%d", i))
			data := map[string]any{}
			switch typ {
			case eventCompletionToggled:
				data["completed"] = rapid.Bool().Draw(rt, fmt.Sprintf("completed_%d", i))
			case eventPriorityChanged:
				data["new_priority"] = rapid.SampledFrom(priorities).Draw(rt, fmt.Sprintf("priority_%d", i))
			}
			_ = el.Write(Event{Time: base.Add(time.Duration(i) * time.Second), Level: LevelInfo, Type: typ, Data: data})
		}

		m, err := NewMetricsCalculator(el).Calculate(base)
		if err != nil {
			t.Fatalf("calculating metrics: %v", err)
		}
		if m.EventCount != n {
			rt.Errorf("EventCount = %d, want %d", m.EventCount, n)
		}
		sum := 0
		for _, c := range m.ChangesByPriority {
			sum += c
		}
		if sum != m.PriorityChanges {
			rt.Errorf("sum of ChangesByPriority = %d, PriorityChanges = %d", sum, m.PriorityChanges)
		}
	})
}
