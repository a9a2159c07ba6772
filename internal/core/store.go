// Package core contains the business logic for lista-tareas: the task store,
// the pending/completed view derivation, the record transforms behind each
// user gesture, and configuration loading.
package core

import (
	"sync"

	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// Snapshot is an immutable view of the store at a given version.
type Snapshot struct {
	Version uint64
	Tasks   []models.Task
}

// ReplaceByTitle returns a new sequence where every task whose title equals
// updated.Title is replaced by updated. Order is preserved and the input is
// left untouched. If nothing matches, the result equals the input.
func ReplaceByTitle(tasks []models.Task, updated models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		if t.Title == updated.Title {
			out[i] = updated
			continue
		}
		out[i] = t
	}
	return out
}

// ReplaceByID is ReplaceByTitle keyed on the task ID.
func ReplaceByID(tasks []models.Task, updated models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == updated.ID {
			out[i] = updated
			continue
		}
		out[i] = t
	}
	return out
}

// Store holds the task sequence for one session. The sequence is never
// modified in place: every change swaps in a new slice and bumps the version.
type Store struct {
	mu          sync.Mutex
	version     uint64
	tasks       []models.Task
	subscribers map[int]func(Snapshot)
	nextSubID   int

	// notifyMu serializes delivery so subscribers see versions in order.
	notifyMu sync.Mutex
}

// NewStore creates a store seeded with a copy of tasks at version 1.
func NewStore(tasks []models.Task) *Store {
	seed := make([]models.Task, len(tasks))
	copy(seed, tasks)
	return &Store{
		version:     1,
		tasks:       seed,
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current version and a copy of the tasks.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Tasks returns a copy of the current task sequence.
func (s *Store) Tasks() []models.Task {
	return s.Snapshot().Tasks
}

// Replace swaps in a new sequence where the task sharing updated.ID is
// substituted. It reports whether any task matched; when none does the store
// is left at its current version and subscribers are not notified.
func (s *Store) Replace(updated models.Task) (Snapshot, bool) {
	_, _, snap, ok := s.Update(updated.ID, func(models.Task) models.Task {
		return updated
	})
	return snap, ok
}

// Update applies fn to the task with id and stores the result, all under one
// lock, so concurrent updates of the same task never lose a change. It returns
// the task before and after fn. fn must not call back into the store.
func (s *Store) Update(id string, fn func(models.Task) models.Task) (before, after models.Task, snap Snapshot, ok bool) {
	s.mu.Lock()
	idx := -1
	for i, t := range s.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		snap = s.snapshotLocked()
		s.mu.Unlock()
		return models.Task{}, models.Task{}, snap, false
	}

	before = s.tasks[idx]
	after = fn(before)
	after.ID = before.ID
	s.tasks = ReplaceByID(s.tasks, after)
	s.version++
	snap = s.snapshotLocked()
	subs := s.subscribersLocked()

	// Taking notifyMu before releasing mu keeps delivery in version order.
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	// Subscribers run outside the lock so they may read the store.
	for _, sub := range subs {
		sub(copySnapshot(snap))
	}
	return before, after, snap, true
}

func (s *Store) subscribersLocked() []func(Snapshot) {
	subs := make([]func(Snapshot), 0, len(s.subscribers))
	for id := 0; id < s.nextSubID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

// Subscribe registers fn to be called with every new snapshot, in
// subscription order. Subscribers may read the store but must not change
// it. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return copySnapshot(Snapshot{Version: s.version, Tasks: s.tasks})
}

func copySnapshot(snap Snapshot) Snapshot {
	tasks := make([]models.Task, len(snap.Tasks))
	copy(tasks, snap.Tasks)
	return Snapshot{Version: snap.Version, Tasks: tasks}
}
