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

var rootCmd = &cobra.Command{
	Use:   "todo-cli",
	Short: "A personal task tracker for the command line",
	Long: `todo-cli tracks personal tasks in a single binary file.

Add tasks with a name, description, deadline, and estimated completion
time; list them sorted by urgency; log incremental progress; edit fields;
and remove them. A task whose logged progress reaches its estimate is
completed and dropped from the file.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("todo-cli %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFlag, "file", "", "Path to the task file (default ./task_list, or store.path from .todo-cli.yaml)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
