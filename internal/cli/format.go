package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/valter-silva-au/lista-tareas/internal/core"
	"github.com/valter-silva-au/lista-tareas/pkg/models"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// Group names accepted by --group.
const (
	groupPending   = "pending"
	groupCompleted = "completed"
)

// groupedTasks is the structured form of the two groups.
type groupedTasks struct {
	Pending   []models.Task `json:"pending,omitempty" yaml:"pending,omitempty"`
	Completed []models.Task `json:"completed,omitempty" yaml:"completed,omitempty"`
}

func validateGroup(group string) error {
	switch group {
	case "", groupPending, groupCompleted:
		return nil
	}
	return fmt.Errorf("invalid group %q: must be pending or completed", group)
}

// printTasks writes the pending and completed groups to w. group limits the
// output to one group; an empty group prints both.
func printTasks(w io.Writer, tasks []models.Task, format, group string) error {
	if err := validateGroup(group); err != nil {
		return err
	}

	pending, completed := core.Partition(tasks)
	out := groupedTasks{Pending: pending, Completed: completed}
	switch group {
	case groupPending:
		out.Completed = nil
	case groupCompleted:
		out.Pending = nil
	}

	switch format {
	case "", formatTable:
		labels := boardLabels()
		// Positions match ResolveTaskRef, so completed numbering continues after pending.
		if group != groupCompleted {
			printGroup(w, labels.PendingHeading, pending, 1)
		}
		if group == "" {
			fmt.Fprintln(w)
		}
		if group != groupPending {
			printGroup(w, labels.CompletedHeading, completed, len(pending)+1)
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid format %q: must be table, json or yaml", format)
	}
}

func printGroup(w io.Writer, heading string, tasks []models.Task, firstPos int) {
	fmt.Fprintf(w, "%s (%d)\n", heading, len(tasks))
	fmt.Fprintln(w, strings.Repeat("-", len([]rune(heading))+4))
	if len(tasks) == 0 {
		fmt.Fprintf(w, "  %s\n", emptyGroupLabel)
		return
	}
	fmt.Fprintf(w, "  %-4s %-9s %-6s %s\n", "#", "ID", "PRI", "TITLE")
	for i, t := range tasks {
		fmt.Fprintf(w, "  %-4d %-9s %-6s %s\n", firstPos+i, t.ShortID(), t.Priority.Label(), normalizeTitle(t.Title))
		if t.Description != "" {
			fmt.Fprintf(w, "  %-4s %-9s %-6s %s\n", "", "", "", t.Description)
		}
	}
}

// normalizeTitle replaces newlines so each task stays on one line.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
