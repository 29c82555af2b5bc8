package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo-cli/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List all tasks sorted by urgency",
	Long: `List every task in the task file as a card, most urgent first.

Tasks are ordered by time left to the deadline, so overdue tasks come
first; ties are broken by ascending id.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}
		path := resolveStorePath(args, 0)

		tasks, err := TaskMgr.List(path)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, t := range tasks {
			fmt.Printf("%s\n\n", render.Card(t, now))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
