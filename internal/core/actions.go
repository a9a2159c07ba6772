package core

import "github.com/valter-silva-au/lista-tareas/pkg/models"

// Toggle returns a copy of t with its completion flag flipped.
func Toggle(t models.Task) models.Task {
	t.Completed = !t.Completed
	return t
}

// WithPriority returns a copy of t with its priority set to p.
func WithPriority(t models.Task, p models.Priority) models.Task {
	t.Priority = p
	return t
}
