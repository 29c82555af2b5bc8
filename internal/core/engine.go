// Package core contains the business logic of the task tracker: id
// allocation, progress accounting, completion detection, display ordering,
// the progress-spec grammar, and the pure input validators used by the
// interactive prompts.
package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/todo-cli/todo-cli/pkg/models"
)

// ErrTaskNotFound is returned when the requested id is absent from the store.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore is the subset of storage.TaskFile that TaskManager needs.
// Defining it here keeps core independent of the storage package.
type TaskStore interface {
	Load(path string) ([]models.Task, error)
	SaveAll(path string, tasks []models.Task) error
	Append(path string, t models.Task) error
	DeleteIfEmpty(path string, tasks []models.Task) error
	Exists(path string) bool
}

// NewTaskInput carries the user-supplied fields for a new task.
type NewTaskInput struct {
	Deadline      int64
	EstimatedTime int64
	Name          string
	Description   string
}

// TaskPatch is a partial update for edit. Nil fields keep the prior value;
// the id is never editable.
type TaskPatch struct {
	Deadline      *int64
	EstimatedTime *int64
	Name          *string
	Description   *string
}

// ProgressOutcome reports what a progress update did. When Completed is true
// the task was removed from the store and Fraction is meaningless.
type ProgressOutcome struct {
	Completed bool
	Fraction  float64
}

// TaskManager defines the task lifecycle operations.
type TaskManager interface {
	Add(path string, in NewTaskInput) (*models.Task, error)
	List(path string) ([]models.Task, error)
	Get(path string, id int64) (*models.Task, error)
	Remove(path string, id int64) error
	LogProgress(path string, id int64, amountSpec string) (*ProgressOutcome, error)
	Edit(path string, id int64, patch TaskPatch) (*models.Task, error)
}

// taskManager implements TaskManager over a TaskStore. The clock is a field
// so tests can pin "now".
type taskManager struct {
	store TaskStore
	now   func() time.Time
}

// NewTaskManager creates a TaskManager backed by the given store.
func NewTaskManager(store TaskStore) TaskManager {
	return &taskManager{store: store, now: time.Now}
}

// Add allocates a fresh id (max existing id + 1, or 0 on a fresh store),
// builds the task with zero progress, and appends it without rewriting
// existing records. A missing file silently starts a fresh store.
func (m *taskManager) Add(path string, in NewTaskInput) (*models.Task, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("adding task: name must not be empty")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("adding task: description must not be empty")
	}

	maxID := models.NoTask
	if m.store.Exists(path) {
		tasks, err := m.store.Load(path)
		if err != nil {
			return nil, fmt.Errorf("adding task: %w", err)
		}
		for _, t := range tasks {
			if t.ID > maxID {
				maxID = t.ID
			}
		}
	}

	task := models.Task{
		ID:            maxID + 1,
		Progress:      0,
		Deadline:      in.Deadline,
		EstimatedTime: in.EstimatedTime,
		Name:          in.Name,
		Description:   in.Description,
	}

	if err := m.store.Append(path, task); err != nil {
		return nil, fmt.Errorf("adding task: %w", err)
	}
	return &task, nil
}

// List loads the store and returns tasks ordered by time left to the
// deadline, most urgent (or most overdue) first, ties broken by ascending id.
func (m *taskManager) List(path string) ([]models.Task, error) {
	tasks, err := m.store.Load(path)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	now := m.now()
	sort.Slice(tasks, func(i, j int) bool {
		li, lj := tasks[i].TimeLeft(now), tasks[j].TimeLeft(now)
		if li != lj {
			return li < lj
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

// Get returns the task with the given id.
func (m *taskManager) Get(path string, id int64) (*models.Task, error) {
	tasks, err := m.store.Load(path)
	if err != nil {
		return nil, fmt.Errorf("getting task %d: %w", id, err)
	}
	i := indexOf(tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("getting task %d: %w", id, ErrTaskNotFound)
	}
	t := tasks[i]
	return &t, nil
}

// Remove drops the task with the given id. The order of surviving records is
// unspecified. When the store becomes empty the file is deleted.
func (m *taskManager) Remove(path string, id int64) error {
	tasks, err := m.store.Load(path)
	if err != nil {
		return fmt.Errorf("removing task %d: %w", id, err)
	}
	i := indexOf(tasks, id)
	if i < 0 {
		return fmt.Errorf("removing task %d: %w", id, ErrTaskNotFound)
	}

	tasks[i] = tasks[len(tasks)-1]
	tasks = tasks[:len(tasks)-1]

	if err := m.store.DeleteIfEmpty(path, tasks); err != nil {
		return fmt.Errorf("removing task %d: %w", id, err)
	}
	return nil
}

// LogProgress resolves amountSpec against the task and adds the result to
// its logged progress. Crossing the estimated time completes the task:
// it is dropped from the store, and an emptied store file is deleted.
func (m *taskManager) LogProgress(path string, id int64, amountSpec string) (*ProgressOutcome, error) {
	tasks, err := m.store.Load(path)
	if err != nil {
		return nil, fmt.Errorf("logging progress on task %d: %w", id, err)
	}
	i := indexOf(tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("logging progress on task %d: %w", id, ErrTaskNotFound)
	}

	delta, err := ResolveProgressSpec(amountSpec, tasks[i].EstimatedTime)
	if err != nil {
		return nil, fmt.Errorf("logging progress on task %d: %w", id, err)
	}

	tasks[i].Progress += delta
	outcome := &ProgressOutcome{}

	if tasks[i].Completed() {
		outcome.Completed = true
		tasks[i] = tasks[len(tasks)-1]
		tasks = tasks[:len(tasks)-1]
	} else {
		outcome.Fraction = tasks[i].CompletionFraction()
	}

	if err := m.store.DeleteIfEmpty(path, tasks); err != nil {
		return nil, fmt.Errorf("logging progress on task %d: %w", id, err)
	}
	return outcome, nil
}

// Edit replaces the patched fields of the task and rewrites the store.
// Fields the patch leaves nil retain their prior value.
func (m *taskManager) Edit(path string, id int64, patch TaskPatch) (*models.Task, error) {
	tasks, err := m.store.Load(path)
	if err != nil {
		return nil, fmt.Errorf("editing task %d: %w", id, err)
	}
	i := indexOf(tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("editing task %d: %w", id, ErrTaskNotFound)
	}

	if patch.Deadline != nil {
		tasks[i].Deadline = *patch.Deadline
	}
	if patch.EstimatedTime != nil {
		tasks[i].EstimatedTime = *patch.EstimatedTime
	}
	if patch.Name != nil {
		tasks[i].Name = *patch.Name
	}
	if patch.Description != nil {
		tasks[i].Description = *patch.Description
	}

	if err := m.store.SaveAll(path, tasks); err != nil {
		return nil, fmt.Errorf("editing task %d: %w", id, err)
	}
	t := tasks[i]
	return &t, nil
}

func indexOf(tasks []models.Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
