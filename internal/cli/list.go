package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listFormat string
	listGroup  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print tasks grouped into pending and completed",
	Long: `Print the session's tasks in two groups, pending first and then completed,
each in its original order.

Use --group to print only one group and --format to choose between a
table (default), json or yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		tasks, err := TaskMgr.GetAllTasks()
		if err != nil {
			return fmt.Errorf("fetching tasks: %w", err)
		}
		return printTasks(cmd.OutOrStdout(), tasks, listFormat, listGroup)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "o", formatTable, "output format: table, json, yaml")
	listCmd.Flags().StringVar(&listGroup, "group", "", "only print one group: pending or completed")
	_ = listCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatTable, formatJSON, formatYAML}, cobra.ShellCompDirectiveNoFileComp))
	_ = listCmd.RegisterFlagCompletionFunc("group", cobra.FixedCompletions(
		[]string{groupPending, groupCompleted}, cobra.ShellCompDirectiveNoFileComp))
	rootCmd.AddCommand(listCmd)
}
