package cli

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo-cli/internal/core"
	"github.com/todo-cli/todo-cli/internal/render"
)

var (
	duePattern     = regexp.MustCompile(core.DuePattern)
	anyTextPattern = regexp.MustCompile(`^(.*)$`)
)

var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Add a new task",
	Long: `Add a new task to the task file, creating the file if needed.

The deadline, estimated completion time, name, and description are read
interactively. The new task gets a fresh id one above the highest id in
the file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}
		path := resolveStorePath(args, 0)

		p := newPrompter(os.Stdin, os.Stdout)

		deadline, err := query(p, "Due (format: YYYY-MM-DD HH:MM:SS or HH:MM:SS): ", duePattern, func(groups []string) (int64, error) {
			return core.DueFromGroups(groups, time.Now())
		})
		if err != nil {
			return err
		}

		estimated, err := query(p, "Estimated time to complete: ", core.DurationPattern, core.DurationFromGroups)
		if err != nil {
			return err
		}

		name, err := query(p, "Name: ", anyTextPattern, requireText("name"))
		if err != nil {
			return err
		}

		description, err := query(p, "Description: ", anyTextPattern, requireText("description"))
		if err != nil {
			return err
		}

		if _, err := TaskMgr.Add(path, core.NewTaskInput{
			Deadline:      deadline,
			EstimatedTime: estimated,
			Name:          name,
			Description:   description,
		}); err != nil {
			return err
		}

		fmt.Println(render.Success("Task added successfully"))
		return nil
	},
}

// requireText validates a free-text prompt answer: trimmed, non-empty.
func requireText(field string) func(groups []string) (string, error) {
	return func(groups []string) (string, error) {
		text := strings.TrimSpace(groups[0])
		if text == "" {
			return "", fmt.Errorf("%s cannot be empty", field)
		}
		return text, nil
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
}
