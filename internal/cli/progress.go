package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo-cli/internal/render"
)

var progressCmd = &cobra.Command{
	Use:   "progress <id> <amount>...",
	Short: "Log progress on a task",
	Long: `Log progress on the task with the given id.

The amount is either a duration like "2h 30m" (hours, minutes, seconds,
each optional) or a percentage of the estimated time like "50%". All
arguments after the id are joined into one amount, so quoting is not
needed. A task whose progress reaches its estimate is completed and
removed from the file; use --file to target a non-default task file.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		amount := strings.Join(args[1:], " ")
		path := resolveStorePath(nil, -1)

		outcome, err := TaskMgr.LogProgress(path, id, amount)
		if err != nil {
			return err
		}

		if outcome.Completed {
			fmt.Println(render.Success("Task completed"))
		} else {
			fmt.Printf("Task progress updated to %.1f%%\n", outcome.Fraction*100)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
