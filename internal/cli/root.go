package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// InitOptions carries the global flags the application is built from.
type InitOptions struct {
	ConfigFile string
	SeedFile   string
	LogLevel   string
}

var (
	initializer func(InitOptions) error
	rootOpts    InitOptions
)

// SetInitializer registers the function that wires services before any
// command runs. It is called once, after flags are parsed.
func SetInitializer(fn func(InitOptions) error) {
	initializer = fn
}

var rootCmd = &cobra.Command{
	Use:   "lt",
	Short: "Lista de Tareas - a small in-memory to-do board",
	Long: `lt shows a fixed set of to-do items split into pending and completed
groups. Mark items done or pending and change their priority from an
interactive terminal board, one-shot commands, or MCP tools.

State lives only in memory for the current session; nothing is saved.
Running lt with no subcommand opens the board.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if initializer == nil {
			return nil
		}
		if err := initializer(rootOpts); err != nil {
			return fmt.Errorf("initializing: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return boardCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lt %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigFile, "config", "", "config file (default: .listarc.yaml in the base path)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.SeedFile, "seed", "", "YAML file with the starting tasks")
	rootCmd.PersistentFlags().StringVar(&rootOpts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&boardLogFile, "log-file", "", "write logs to this file while the board is open")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
