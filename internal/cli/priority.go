package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

var priorityCmd = &cobra.Command{
	Use:   "priority <task> <alta|media|baja>",
	Short: "Change a task's priority",
	Long: `Set the priority of a task and print the resulting groups.

<task> is a position as shown by 'lt list', a task ID or unique ID prefix,
or the task title. The priority may be given as its label (alta, media,
baja) or its name (high, medium, low). The change only lasts for this
session.

Examples:
  lt priority 1 baja
  lt priority "Comprar comestibles" low`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		priority, err := models.ParsePriority(args[1])
		if err != nil {
			return err
		}

		task, err := TaskMgr.ResolveTask(args[0])
		if err != nil {
			return fmt.Errorf("resolving task: %w", err)
		}

		updated, err := TaskMgr.ChangePriority(task.ID, priority)
		if err != nil {
			return err
		}

		Logger.Info("priority changed", "task", updated.Title, "from", task.Priority, "to", updated.Priority)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n\n", updated.Title, task.Priority.Label(), updated.Priority.Label())

		tasks, err := TaskMgr.GetAllTasks()
		if err != nil {
			return fmt.Errorf("fetching tasks: %w", err)
		}
		return printTasks(cmd.OutOrStdout(), tasks, formatTable, "")
	},
}

func init() {
	priorityCmd.ValidArgsFunction = completePriorityArgs
	rootCmd.AddCommand(priorityCmd)
}
