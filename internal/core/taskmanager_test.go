package core

import (
	"errors"
	"sync"
	"testing"

	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

func newTestManager(t *testing.T) (TaskManager, *recordingLogger) {
	t.Helper()
	events := &recordingLogger{}
	return NewTaskManager(NewStore(seedTasks(t)), events), events
}

func TestTaskManager_ToggleCompletion(t *testing.T) {
	mgr, events := newTestManager(t)

	updated, err := mgr.ToggleCompletion("id-3")
	if err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if updated.Completed {
		t.Error("Ejercicio should be pending after toggle")
	}

	tasks, _ := mgr.GetAllTasks()
	pending, completed := Partition(tasks)
	if len(pending) != 3 || len(completed) != 0 {
		t.Errorf("pending=%d completed=%d, want 3/0", len(pending), len(completed))
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	ev := events.events[0]
	if ev.eventType != EventCompletionToggled {
		t.Errorf("event type = %s", ev.eventType)
	}
	if ev.data["completed"] != false || ev.data["task_id"] != "id-3" {
		t.Errorf("unexpected event data %v", ev.data)
	}
}

func TestTaskManager_ChangePriority(t *testing.T) {
	mgr, events := newTestManager(t)

	updated, err := mgr.ChangePriority("id-1", models.PriorityLow)
	if err != nil {
		t.Fatalf("ChangePriority: %v", err)
	}
	if updated.Priority != models.PriorityLow || updated.Completed {
		t.Errorf("unexpected task %+v", updated)
	}

	got, err := mgr.GetTask("id-1")
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Priority != models.PriorityLow {
		t.Errorf("stored priority = %s", got.Priority)
	}

	ev := events.events[0]
	if ev.eventType != EventPriorityChanged || ev.data["old_priority"] != "high" || ev.data["new_priority"] != "low" {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestTaskManager_UnknownTask(t *testing.T) {
	mgr, events := newTestManager(t)

	if _, err := mgr.ToggleCompletion("nope"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("ToggleCompletion error = %v, want ErrTaskNotFound", err)
	}
	if _, err := mgr.ChangePriority("nope", models.PriorityLow); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("ChangePriority error = %v, want ErrTaskNotFound", err)
	}
	if _, err := mgr.GetTask("nope"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("GetTask error = %v, want ErrTaskNotFound", err)
	}
	if len(events.events) != 0 {
		t.Errorf("no events expected, got %d", len(events.events))
	}
}

func TestTaskManager_InvalidPriority(t *testing.T) {
	mgr, _ := newTestManager(t)
	_, err := mgr.ChangePriority("id-1", models.Priority("urgent"))
	if !errors.Is(err, models.ErrInvalidPriority) {
		t.Errorf("error = %v, want ErrInvalidPriority", err)
	}
	if mgr.Snapshot().Version != 1 {
		t.Error("store must not change on invalid priority")
	}
}

func TestTaskManager_EventLogFailureIgnored(t *testing.T) {
	events := &recordingLogger{err: errors.New("disk full")}
	mgr := NewTaskManager(NewStore(seedTasks(t)), events)

	if _, err := mgr.ToggleCompletion("id-1"); err != nil {
		t.Fatalf("event log failure must not fail the update: %v", err)
	}
}

func TestTaskManager_NilEventLogger(t *testing.T) {
	mgr := NewTaskManager(NewStore(seedTasks(t)), nil)
	if _, err := mgr.ToggleCompletion("id-1"); err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
}

func TestTaskManager_SubscribeSeesUpdate(t *testing.T) {
	mgr, _ := newTestManager(t)
	var got Snapshot
	mgr.Subscribe(func(s Snapshot) { got = s })

	if _, err := mgr.ToggleCompletion("id-2"); err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if got.Version != 2 || !got.Tasks[1].Completed {
		t.Errorf("subscriber saw %+v", got)
	}
}

func TestTaskManager_ResolveTask(t *testing.T) {
	mgr, _ := newTestManager(t)
	task, err := mgr.ResolveTask("ejercicio")
	if err != nil {
		t.Fatalf("ResolveTask: %v", err)
	}
	if task.ID != "id-3" {
		t.Errorf("resolved %s, want id-3", task.ID)
	}
}

func TestTaskManager_ConcurrentToggleLosesNothing(t *testing.T) {
	mgr, events := newTestManager(t)

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := mgr.ToggleCompletion("id-1"); err != nil {
				t.Errorf("ToggleCompletion: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := mgr.GetTask("id-1")
	if got.Completed {
		t.Error("an even number of toggles must leave the task pending")
	}
	if v := mgr.Snapshot().Version; v != n+1 {
		t.Errorf("version = %d, want %d", v, n+1)
	}

	completed, reopened := 0, 0
	for _, ev := range events.events {
		if ev.data["completed"] == true {
			completed++
		} else {
			reopened++
		}
	}
	if completed != n/2 || reopened != n/2 {
		t.Errorf("events completed=%d reopened=%d, want %d/%d", completed, reopened, n/2, n/2)
	}
}

func TestTaskManager_ConcurrentPriorityChangesChain(t *testing.T) {
	mgr, events := newTestManager(t)
	levels := models.AllPriorities()

	const n = 90
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(p models.Priority) {
			defer wg.Done()
			if _, err := mgr.ChangePriority("id-2", p); err != nil {
				t.Errorf("ChangePriority: %v", err)
			}
		}(levels[i%len(levels)])
	}
	wg.Wait()

	// Ordered by version, each event's old priority is the previous event's new one.
	byVersion := make(map[uint64]recordedEvent, n)
	for _, ev := range events.events {
		byVersion[ev.data["version"].(uint64)] = ev
	}
	prev := string(models.PriorityMedium)
	for v := uint64(2); v <= n+1; v++ {
		ev, ok := byVersion[v]
		if !ok {
			t.Fatalf("no event for version %d", v)
		}
		if ev.data["old_priority"] != prev {
			t.Fatalf("version %d: old_priority = %v, want %s", v, ev.data["old_priority"], prev)
		}
		prev = ev.data["new_priority"].(string)
	}

	got, _ := mgr.GetTask("id-2")
	if string(got.Priority) != prev {
		t.Errorf("final priority = %s, want %s", got.Priority, prev)
	}
}
