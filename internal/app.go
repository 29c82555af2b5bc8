// Package internal provides the App struct that wires the task tracker's
// components together and initializes the CLI layer.
package internal

import (
	"github.com/todo-cli/todo-cli/internal/cli"
	"github.com/todo-cli/todo-cli/internal/core"
	"github.com/todo-cli/todo-cli/internal/storage"
)

// App holds the service dependencies of the tracker.
type App struct {
	Config  *core.Config
	Store   storage.TaskFile
	TaskMgr core.TaskManager
}

// NewApp creates and wires all components and publishes them to the CLI
// package. Configuration problems are not fatal: defaults apply.
func NewApp() (*App, error) {
	app := &App{}

	cfg, err := core.LoadConfig()
	if err != nil {
		cfg = &core.Config{StorePath: core.DefaultStorePath}
	}
	app.Config = cfg

	app.Store = storage.NewTaskFile()
	app.TaskMgr = core.NewTaskManager(app.Store)

	cli.TaskMgr = app.TaskMgr
	cli.DefaultStorePath = cfg.StorePath

	return app, nil
}
