package core

import "github.com/valter-silva-au/lista-tareas/pkg/models"

// Partition splits tasks into pending and completed groups, keeping the
// original relative order inside each group.
func Partition(tasks []models.Task) (pending, completed []models.Task) {
	pending = make([]models.Task, 0, len(tasks))
	completed = make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}

// DisplayOrder returns the tasks as the board lists them: pending first,
// then completed.
func DisplayOrder(tasks []models.Task) []models.Task {
	pending, completed := Partition(tasks)
	return append(pending, completed...)
}
