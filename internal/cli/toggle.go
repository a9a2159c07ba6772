package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <task>",
	Short: "Mark a task completed, or pending again",
	Long: `Flip the completion state of a task and print the resulting groups.

<task> is a position as shown by 'lt list', a task ID or unique ID prefix,
or the task title. The change only lasts for this session.

Examples:
  lt toggle 3
  lt toggle Ejercicio`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		task, err := TaskMgr.ResolveTask(args[0])
		if err != nil {
			return fmt.Errorf("resolving task: %w", err)
		}

		updated, err := TaskMgr.ToggleCompletion(task.ID)
		if err != nil {
			return err
		}

		label := markPendingLabel
		if updated.Completed {
			label = markCompletedLabel
		}
		Logger.Info("task toggled", "task", updated.Title, "completed", updated.Completed)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n\n", label, updated.Title)

		tasks, err := TaskMgr.GetAllTasks()
		if err != nil {
			return fmt.Errorf("fetching tasks: %w", err)
		}
		return printTasks(cmd.OutOrStdout(), tasks, formatTable, "")
	},
}

func init() {
	toggleCmd.ValidArgsFunction = completeTaskRefs()
	rootCmd.AddCommand(toggleCmd)
}
