package core

import (
	"fmt"
	"sync"
	"testing"

	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// seqIDs returns an ID generator producing id-1, id-2, ...
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// seedTasks builds the default seed with deterministic IDs.
func seedTasks(t *testing.T) []models.Task {
	t.Helper()
	tasks, err := buildTasks(DefaultSeed(), seqIDs())
	if err != nil {
		t.Fatalf("building seed: %v", err)
	}
	return tasks
}

func titles(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func findByTitle(t *testing.T, tasks []models.Task, title string) models.Task {
	t.Helper()
	for _, task := range tasks {
		if task.Title == title {
			return task
		}
	}
	t.Fatalf("task %q not found", title)
	return models.Task{}
}

// recordingLogger captures events written by the task manager.
type recordingLogger struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

type recordedEvent struct {
	eventType string
	data      map[string]any
}

func (r *recordingLogger) LogEvent(eventType string, data map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{eventType: eventType, data: data})
	return r.err
}
