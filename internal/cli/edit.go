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

// dueKeepPattern is the due-date grammar with empty input allowed, meaning
// "keep the prior value".
var dueKeepPattern = regexp.MustCompile(`^(?:(\d{4}-\d{2}-\d{2})(?: (\d{2}:\d{2}:\d{2}))?|(\d{2}:\d{2}:\d{2}))?$`)

var editCmd = &cobra.Command{
	Use:   "edit <id> [file]",
	Short: "Edit an existing task",
	Long: `Edit the fields of the task with the given id.

Each field is prompted for in turn; pressing Enter keeps the current
value. The id itself cannot be changed.`,
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

		current, err := TaskMgr.Get(path, id)
		if err != nil {
			return err
		}

		p := newPrompter(os.Stdin, os.Stdout)
		var patch core.TaskPatch

		deadline, err := query(p,
			fmt.Sprintf("Due (press Enter to keep %s): ", current.DueString()),
			dueKeepPattern,
			func(groups []string) (*int64, error) {
				if allEmpty(groups) {
					return nil, nil
				}
				due, err := core.DueFromGroups(groups, time.Now())
				if err != nil {
					return nil, err
				}
				return &due, nil
			})
		if err != nil {
			return err
		}
		patch.Deadline = deadline

		estimated, err := query(p,
			fmt.Sprintf("Estimated time (press Enter to keep %s): ", render.FormatDuration(current.EstimatedTime)),
			core.DurationPattern,
			func(groups []string) (*int64, error) {
				if allEmpty(groups) {
					return nil, nil
				}
				secs, err := core.DurationFromGroups(groups)
				if err != nil {
					return nil, err
				}
				return &secs, nil
			})
		if err != nil {
			return err
		}
		patch.EstimatedTime = estimated

		name, err := query(p,
			fmt.Sprintf("Name (press Enter to keep %q): ", current.Name),
			anyTextPattern, keepOrText)
		if err != nil {
			return err
		}
		patch.Name = name

		description, err := query(p,
			fmt.Sprintf("Description (press Enter to keep %q): ", current.Description),
			anyTextPattern, keepOrText)
		if err != nil {
			return err
		}
		patch.Description = description

		updated, err := TaskMgr.Edit(path, id, patch)
		if err != nil {
			return err
		}

		fmt.Println(render.Success("Task updated successfully"))
		fmt.Println(render.Card(*updated, time.Now()))
		return nil
	},
}

// keepOrText maps an empty answer to "keep prior" (nil) and anything else
// to the trimmed text.
func keepOrText(groups []string) (*string, error) {
	text := strings.TrimSpace(groups[0])
	if text == "" {
		return nil, nil
	}
	return &text, nil
}

func allEmpty(groups []string) bool {
	for _, g := range groups {
		if g != "" {
			return false
		}
	}
	return true
}

func init() {
	rootCmd.AddCommand(editCmd)
}
