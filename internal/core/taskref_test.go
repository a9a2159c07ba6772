package core

import (
	"errors"
	"testing"

	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

func refTasks() []models.Task {
	return []models.Task{
		{ID: "aaaa1111", Title: "Comprar comestibles"},
		{ID: "aaaa2222", Title: "Estudiar Compose"},
		{ID: "bbbb3333", Title: "Ejercicio", Completed: true},
		{ID: "cccc4444", Title: "Leer"},
	}
}

func TestResolveTaskRef(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		wantID string
	}{
		{"position first", "1", "aaaa1111"},
		{"position uses display order", "3", "cccc4444"},
		{"position completed group", "4", "bbbb3333"},
		{"full id", "aaaa2222", "aaaa2222"},
		{"unique prefix", "bbbb", "bbbb3333"},
		{"title case-insensitive", "estudiar compose", "aaaa2222"},
		{"title with spaces trimmed", "  Leer ", "cccc4444"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTaskRef(refTasks(), tt.ref)
			if err != nil {
				t.Fatalf("ResolveTaskRef(%q): %v", tt.ref, err)
			}
			if got.ID != tt.wantID {
				t.Errorf("ResolveTaskRef(%q) = %s, want %s", tt.ref, got.ID, tt.wantID)
			}
		})
	}
}

func TestResolveTaskRef_Errors(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want error
	}{
		{"empty", "", ErrTaskNotFound},
		{"position zero", "0", ErrTaskNotFound},
		{"position too large", "9", ErrTaskNotFound},
		{"ambiguous prefix", "aaaa", ErrAmbiguousRef},
		{"short prefix falls through to title", "bbb", ErrTaskNotFound},
		{"unknown title", "Dormir", ErrTaskNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveTaskRef(refTasks(), tt.ref)
			if !errors.Is(err, tt.want) {
				t.Errorf("ResolveTaskRef(%q) error = %v, want %v", tt.ref, err, tt.want)
			}
		})
	}
}

func TestResolveTaskRef_DuplicateTitle(t *testing.T) {
	tasks := []models.Task{
		{ID: "x1", Title: "Leer"},
		{ID: "x2", Title: "leer"},
	}
	if _, err := ResolveTaskRef(tasks, "Leer"); !errors.Is(err, ErrAmbiguousRef) {
		t.Errorf("error = %v, want ErrAmbiguousRef", err)
	}
}
