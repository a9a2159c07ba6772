package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/lista-tareas/internal/core"
	"github.com/valter-silva-au/lista-tareas/pkg/models"
)

// completeTaskRefs returns a completion function that lists task positions
// with the title as description.
func completeTaskRefs() func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if TaskMgr == nil || len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		tasks, err := TaskMgr.GetAllTasks()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var refs []string
		for i, task := range core.DisplayOrder(tasks) {
			pos := strconv.Itoa(i + 1)
			if toComplete == "" || strings.HasPrefix(pos, toComplete) {
				refs = append(refs, pos+"\t"+task.Title)
			}
		}
		return refs, cobra.ShellCompDirectiveNoFileComp
	}
}

// completePriorityArgs completes the task for the first argument and the
// priority label for the second.
func completePriorityArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeTaskRefs()(cmd, args, toComplete)
	case 1:
		var labels []string
		for _, p := range models.AllPriorities() {
			label := strings.ToLower(p.Label())
			if strings.HasPrefix(label, strings.ToLower(toComplete)) {
				labels = append(labels, label+"\t"+string(p))
			}
		}
		return labels, cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
