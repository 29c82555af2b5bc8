// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the task tracker as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"
	"regexp"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/todo-cli/todo-cli/internal/core"
	"github.com/todo-cli/todo-cli/pkg/models"
)

var duePattern = regexp.MustCompile(core.DuePattern)

// Server wraps the task manager and exposes it as MCP tools. All tools
// operate on a single task file fixed at construction time.
type Server struct {
	server    *gomcp.Server
	taskMgr   core.TaskManager
	storePath string
}

// NewServer creates a new MCP server over the given task manager and file.
func NewServer(taskMgr core.TaskManager, storePath string, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		taskMgr:   taskMgr,
		storePath: storePath,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "todo-cli", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type taskOutput struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Due              string  `json:"due"`
	TimeLeftSeconds  int64   `json:"time_left_seconds"`
	EstimatedSeconds int64   `json:"estimated_seconds"`
	ProgressSeconds  int64   `json:"progress_seconds"`
	Completion       float64 `json:"completion"`
}

type listTasksInput struct{}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type getTaskInput struct {
	ID int64 `json:"id" jsonschema:"required,the numeric task id"`
}

type addTaskInput struct {
	Name        string `json:"name" jsonschema:"required,short task name"`
	Description string `json:"description" jsonschema:"required,task description"`
	Due         string `json:"due" jsonschema:"required,deadline as YYYY-MM-DD HH:MM:SS or YYYY-MM-DD or HH:MM:SS (local time)"`
	Estimated   string `json:"estimated" jsonschema:"required,estimated completion time as a duration like 2h 30m"`
}

type logProgressInput struct {
	ID     int64  `json:"id" jsonschema:"required,the numeric task id"`
	Amount string `json:"amount" jsonschema:"required,progress as a duration like 45m or a percentage of the estimate like 50%"`
}

type logProgressOutput struct {
	Completed  bool    `json:"completed"`
	Completion float64 `json:"completion"`
	Message    string  `json:"message"`
}

type removeTaskInput struct {
	ID int64 `json:"id" jsonschema:"required,the numeric task id"`
}

type removeTaskOutput struct {
	Message string `json:"message"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List all tasks sorted by urgency (most overdue first). Returns derived fields: due string, time left, completion fraction.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_task",
		Description: "Get one task by its numeric id.",
	}, s.handleGetTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "add_task",
		Description: "Add a new task. The id is allocated automatically and progress starts at zero.",
	}, s.handleAddTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "log_progress",
		Description: "Log progress on a task. Reaching the estimated time completes and removes the task.",
	}, s.handleLogProgress)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "remove_task",
		Description: "Remove a task by its numeric id.",
	}, s.handleRemoveTask)
}

// --- Tool handlers ---

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, _ listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	tasks, err := s.taskMgr.List(s.storePath)
	if err != nil {
		return errorResult(fmt.Sprintf("listing tasks: %s", err)), listTasksOutput{}, nil
	}

	now := time.Now()
	out := listTasksOutput{
		Tasks: make([]taskOutput, len(tasks)),
		Count: len(tasks),
	}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t, now)
	}
	return nil, out, nil
}

func (s *Server) handleGetTask(_ context.Context, _ *gomcp.CallToolRequest, input getTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	task, err := s.taskMgr.Get(s.storePath, input.ID)
	if err != nil {
		return errorResult(fmt.Sprintf("getting task %d: %s", input.ID, err)), taskOutput{}, nil
	}
	return nil, taskToOutput(*task, time.Now()), nil
}

func (s *Server) handleAddTask(_ context.Context, _ *gomcp.CallToolRequest, input addTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	m := duePattern.FindStringSubmatch(input.Due)
	if m == nil {
		return errorResult(fmt.Sprintf("invalid due %q: want YYYY-MM-DD HH:MM:SS, YYYY-MM-DD, or HH:MM:SS", input.Due)), taskOutput{}, nil
	}
	deadline, err := core.DueFromGroups(m[1:], time.Now())
	if err != nil {
		return errorResult(fmt.Sprintf("invalid due %q: %s", input.Due, err)), taskOutput{}, nil
	}

	dm := core.DurationPattern.FindStringSubmatch(input.Estimated)
	if dm == nil {
		return errorResult(fmt.Sprintf("invalid estimated time %q: want a duration like 2h 30m", input.Estimated)), taskOutput{}, nil
	}
	estimated, err := core.DurationFromGroups(dm[1:])
	if err != nil {
		return errorResult(fmt.Sprintf("invalid estimated time %q: %s", input.Estimated, err)), taskOutput{}, nil
	}

	task, err := s.taskMgr.Add(s.storePath, core.NewTaskInput{
		Deadline:      deadline,
		EstimatedTime: estimated,
		Name:          input.Name,
		Description:   input.Description,
	})
	if err != nil {
		return errorResult(fmt.Sprintf("adding task: %s", err)), taskOutput{}, nil
	}
	return nil, taskToOutput(*task, time.Now()), nil
}

func (s *Server) handleLogProgress(_ context.Context, _ *gomcp.CallToolRequest, input logProgressInput) (*gomcp.CallToolResult, logProgressOutput, error) {
	outcome, err := s.taskMgr.LogProgress(s.storePath, input.ID, input.Amount)
	if err != nil {
		return errorResult(fmt.Sprintf("logging progress on task %d: %s", input.ID, err)), logProgressOutput{}, nil
	}

	out := logProgressOutput{
		Completed:  outcome.Completed,
		Completion: outcome.Fraction,
	}
	if outcome.Completed {
		out.Completion = 1.0
		out.Message = fmt.Sprintf("task %d completed and removed", input.ID)
	} else {
		out.Message = fmt.Sprintf("task %d progress updated to %.1f%%", input.ID, outcome.Fraction*100)
	}
	return nil, out, nil
}

func (s *Server) handleRemoveTask(_ context.Context, _ *gomcp.CallToolRequest, input removeTaskInput) (*gomcp.CallToolResult, removeTaskOutput, error) {
	if err := s.taskMgr.Remove(s.storePath, input.ID); err != nil {
		return errorResult(fmt.Sprintf("removing task %d: %s", input.ID, err)), removeTaskOutput{}, nil
	}
	return nil, removeTaskOutput{Message: fmt.Sprintf("task %d removed", input.ID)}, nil
}

// --- Helpers ---

func taskToOutput(t models.Task, now time.Time) taskOutput {
	return taskOutput{
		ID:               t.ID,
		Name:             t.Name,
		Description:      t.Description,
		Due:              t.DueString(),
		TimeLeftSeconds:  t.TimeLeft(now),
		EstimatedSeconds: t.EstimatedTime,
		ProgressSeconds:  t.Progress,
		Completion:       t.CompletionFraction(),
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
