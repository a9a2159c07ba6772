package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	ltmcp "github.com/valter-silva-au/lista-tareas/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the lt MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lt MCP server on stdio",
	Long: `Start the lt MCP server on stdio transport.

The server exposes the session's task list as MCP tools: list_tasks,
get_task, toggle_task, set_task_priority, get_metrics. Changes last until
the server exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		srv := ltmcp.NewServer(TaskMgr, MetricsCalc, Logger, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		Logger.Info("mcp server starting", "transport", "stdio", "version", appVersion)
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}
		Logger.Info("mcp server stopped")

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
