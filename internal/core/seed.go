package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// ErrDuplicateTitle is returned when two seed tasks share a title.
var ErrDuplicateTitle = errors.New("duplicate task title")

// SeedEntry is a task as written in a seed file, before it gets an ID.
type SeedEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    string `yaml:"priority"`
	Completed   bool   `yaml:"completed"`
}

// DefaultSeed returns the three entries every session starts with when no
// seed file is configured.
func DefaultSeed() []SeedEntry {
	return []SeedEntry{
		{Title: "Comprar comestibles", Description: "Comprar frutas y verduras.", Priority: string(models.PriorityHigh)},
		{Title: "Estudiar Compose", Description: "Practicar layouts y estados.", Priority: string(models.PriorityMedium)},
		{Title: "Ejercicio", Description: "Salir a correr.", Priority: string(models.PriorityLow), Completed: true},
	}
}

// BuildTasks validates entries and assigns each a fresh ID. Titles must be
// non-empty and unique (case-insensitive, surrounding space ignored).
func BuildTasks(entries []SeedEntry) ([]models.Task, error) {
	return buildTasks(entries, uuid.NewString)
}

func buildTasks(entries []SeedEntry, newID func() string) ([]models.Task, error) {
	seen := make(map[string]int, len(entries))
	tasks := make([]models.Task, 0, len(entries))
	for i, e := range entries {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			return nil, fmt.Errorf("seed entry %d: title is empty", i+1)
		}
		key := strings.ToLower(title)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("seed entry %d: %w %q (first used by entry %d)", i+1, ErrDuplicateTitle, title, prev)
		}
		seen[key] = i + 1

		priority, err := models.ParsePriority(e.Priority)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i+1, err)
		}

		tasks = append(tasks, models.Task{
			ID:          newID(),
			Title:       title,
			Description: e.Description,
			Priority:    priority,
			Completed:   e.Completed,
		})
	}
	return tasks, nil
}
