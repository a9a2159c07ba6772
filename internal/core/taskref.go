package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// ErrAmbiguousRef is returned when a task reference matches more than one task.
var ErrAmbiguousRef = errors.New("ambiguous task reference")

// minIDPrefix is the shortest ID prefix accepted as a reference.
const minIDPrefix = 4

// ResolveTaskRef finds the task named by ref. In order of precedence ref may
// be a 1-based position in display order, a full ID, a unique ID prefix of at
// least four characters, or a title (case-insensitive).
func ResolveTaskRef(tasks []models.Task, ref string) (models.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Task{}, fmt.Errorf("%w: empty reference", ErrTaskNotFound)
	}

	if n, err := strconv.Atoi(ref); err == nil {
		ordered := DisplayOrder(tasks)
		if n < 1 || n > len(ordered) {
			return models.Task{}, fmt.Errorf("%w: position %d out of range 1-%d", ErrTaskNotFound, n, len(ordered))
		}
		return ordered[n-1], nil
	}

	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
	}

	if len(ref) >= minIDPrefix {
		var matches []models.Task
		for _, t := range tasks {
			if strings.HasPrefix(t.ID, ref) {
				matches = append(matches, t)
			}
		}
		switch len(matches) {
		case 1:
			return matches[0], nil
		case 0:
		default:
			return models.Task{}, fmt.Errorf("%w: %q matches %d task IDs", ErrAmbiguousRef, ref, len(matches))
		}
	}

	var matches []models.Task
	for _, t := range tasks {
		if strings.EqualFold(t.Title, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref)
	default:
		return models.Task{}, fmt.Errorf("%w: title %q matches %d tasks", ErrAmbiguousRef, ref, len(matches))
	}
}
