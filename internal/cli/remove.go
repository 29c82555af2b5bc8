package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo-cli/internal/render"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id> [file]",
	Short: "Remove a task by id",
	Long: `Remove the task with the given id from the task file.

When the last task is removed the file itself is deleted.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		path := resolveStorePath(args, 1)

		if err := TaskMgr.Remove(path, id); err != nil {
			return err
		}

		fmt.Println(render.Success(fmt.Sprintf("Successfully removed task with id %d", id)))
		return nil
	},
}

// parseTaskID converts a positional id argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: %w", arg, err)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
