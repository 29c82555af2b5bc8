package cli

import "github.com/todo-cli/todo-cli/internal/core"

// Service instances, set during app initialization in app.go.
var (
	// TaskMgr drives all task lifecycle operations.
	TaskMgr core.TaskManager

	// DefaultStorePath is the task file used when neither --file nor a
	// positional path is given. Comes from configuration.
	DefaultStorePath = core.DefaultStorePath
)

// storeFlag holds the persistent --file flag value.
var storeFlag string

// resolveStorePath picks the task file for a command: the --file flag wins,
// then the positional path at index pos (when present), then the default.
func resolveStorePath(args []string, pos int) string {
	if storeFlag != "" {
		return storeFlag
	}
	if pos >= 0 && pos < len(args) && args[pos] != "" {
		return args[pos]
	}
	return DefaultStorePath
}
