package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// exportTask is the YAML shape of one exported task. Deadlines are rendered
// both as stored Unix seconds and as the local display string.
type exportTask struct {
	ID               int64   `yaml:"id"`
	Name             string  `yaml:"name"`
	Description      string  `yaml:"description"`
	Due              string  `yaml:"due"`
	DeadlineUnix     int64   `yaml:"deadline_unix"`
	EstimatedSeconds int64   `yaml:"estimated_seconds"`
	ProgressSeconds  int64   `yaml:"progress_seconds"`
	Completion       float64 `yaml:"completion"`
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Dump the task file as YAML",
	Long: `Write every task in the task file to stdout as YAML, most urgent
first. A readable escape hatch for the binary store format.`,
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

		out := make([]exportTask, len(tasks))
		for i, t := range tasks {
			out[i] = exportTask{
				ID:               t.ID,
				Name:             t.Name,
				Description:      t.Description,
				Due:              t.DueString(),
				DeadlineUnix:     t.Deadline,
				EstimatedSeconds: t.EstimatedTime,
				ProgressSeconds:  t.Progress,
				Completion:       t.CompletionFraction(),
			}
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshaling tasks: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
