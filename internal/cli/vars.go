package cli

import (
	"github.com/valter-silva-au/lista-tareas/internal/core"
	"github.com/valter-silva-au/lista-tareas/internal/logging"
	"github.com/valter-silva-au/lista-tareas/internal/observability"
	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	BasePath    string
	TaskMgr     core.TaskManager
	Labels      = core.DefaultConfig().UI
	Logger      = logging.Discard()
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
)

// boardLabels returns the configured labels, falling back to defaults for
// any that are empty.
func boardLabels() models.UIConfig {
	labels := Labels
	defaults := core.DefaultConfig().UI
	if labels.PendingHeading == "" {
		labels.PendingHeading = defaults.PendingHeading
	}
	if labels.CompletedHeading == "" {
		labels.CompletedHeading = defaults.CompletedHeading
	}
	return labels
}
