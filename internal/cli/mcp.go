package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo-cli/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing the task file as tools",
	Long: `Run a Model Context Protocol server on stdio.

The server exposes list_tasks, get_task, add_task, log_progress, and
remove_task tools over the configured task file, so AI assistants can
read and update the same store as the CLI.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}
		path := resolveStorePath(nil, -1)
		srv := mcp.NewServer(TaskMgr, path, appVersion)
		return srv.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
