package core

import (
	"errors"
	"fmt"

	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// ErrTaskNotFound is returned when no task has the requested ID.
var ErrTaskNotFound = errors.New("task not found")

// Event types written for every mutation.
const (
	EventCompletionToggled = "task.completion_toggled"
	EventPriorityChanged   = "task.priority_changed"
)

// TaskManager defines the operations the board, the CLI and the MCP server
// perform on the session's tasks.
type TaskManager interface {
	GetAllTasks() ([]models.Task, error)
	GetTask(taskID string) (models.Task, error)
	ResolveTask(ref string) (models.Task, error)
	ToggleCompletion(taskID string) (models.Task, error)
	ChangePriority(taskID string, priority models.Priority) (models.Task, error)
	Snapshot() Snapshot
	Subscribe(fn func(Snapshot)) func()
}

// taskManager implements TaskManager on top of a Store.
type taskManager struct {
	store  *Store
	events EventLogger
}

// NewTaskManager creates a TaskManager backed by store.
// events may be nil if the event log is disabled.
func NewTaskManager(store *Store, events EventLogger) TaskManager {
	return &taskManager{store: store, events: events}
}

func (tm *taskManager) GetAllTasks() ([]models.Task, error) {
	return tm.store.Tasks(), nil
}

func (tm *taskManager) GetTask(taskID string) (models.Task, error) {
	for _, t := range tm.store.Tasks() {
		if t.ID == taskID {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
}

// ResolveTask looks a task up by display position, ID, ID prefix or title.
func (tm *taskManager) ResolveTask(ref string) (models.Task, error) {
	return ResolveTaskRef(tm.store.Tasks(), ref)
}

// ToggleCompletion flips the completion flag of the task with taskID.
func (tm *taskManager) ToggleCompletion(taskID string) (models.Task, error) {
	_, updated, snap, ok := tm.store.Update(taskID, Toggle)
	if !ok {
		return models.Task{}, fmt.Errorf("toggling task: %w: %s", ErrTaskNotFound, taskID)
	}

	tm.logEvent(EventCompletionToggled, map[string]any{
		"task_id":   updated.ID,
		"title":     updated.Title,
		"completed": updated.Completed,
		"version":   snap.Version,
	})
	return updated, nil
}

// ChangePriority sets the priority of the task with taskID.
func (tm *taskManager) ChangePriority(taskID string, priority models.Priority) (models.Task, error) {
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("changing priority: %w %q", models.ErrInvalidPriority, priority)
	}

	previous, updated, snap, ok := tm.store.Update(taskID, func(t models.Task) models.Task {
		return WithPriority(t, priority)
	})
	if !ok {
		return models.Task{}, fmt.Errorf("changing priority: %w: %s", ErrTaskNotFound, taskID)
	}

	tm.logEvent(EventPriorityChanged, map[string]any{
		"task_id":      updated.ID,
		"title":        updated.Title,
		"old_priority": string(previous.Priority),
		"new_priority": string(updated.Priority),
		"version":      snap.Version,
	})
	return updated, nil
}

func (tm *taskManager) Snapshot() Snapshot {
	return tm.store.Snapshot()
}

func (tm *taskManager) Subscribe(fn func(Snapshot)) func() {
	return tm.store.Subscribe(fn)
}

// logEvent writes to the event logger if one is configured. Failures are
// ignored so a broken log never blocks an update.
func (tm *taskManager) logEvent(eventType string, data map[string]any) {
	if tm.events == nil {
		return
	}
	_ = tm.events.LogEvent(eventType, data)
}
