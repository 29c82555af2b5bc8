// Package storage provides the file-backed task store. A store is a single
// binary file of concatenated task records; every mutation of a surviving
// store is a full rewrite because records are variable-length.
package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/todo-cli/todo-cli/internal/codec"
	"github.com/todo-cli/todo-cli/pkg/models"
)

// ErrMissing is returned when an operation needs the task file but it does
// not exist. Distinct from codec.ErrCorrupt.
var ErrMissing = errors.New("task file not found")

// TaskFile defines the operations on an on-disk task store.
type TaskFile interface {
	// Load decodes all records from the file at path.
	Load(path string) ([]models.Task, error)
	// SaveAll truncates (or creates) the file and writes every task in order.
	SaveAll(path string, tasks []models.Task) error
	// Append writes one encoded record at the end of the file, creating it
	// if needed. Existing records are not rewritten.
	Append(path string, t models.Task) error
	// DeleteIfEmpty removes the file when tasks is empty, otherwise rewrites it.
	DeleteIfEmpty(path string, tasks []models.Task) error
	// Exists reports whether a store file is present at path.
	Exists(path string) bool
}

type fileTaskStore struct{}

// NewTaskFile creates a TaskFile backed by the local filesystem.
func NewTaskFile() TaskFile {
	return &fileTaskStore{}
}

func (s *fileTaskStore) Load(path string) ([]models.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	tasks, err := codec.DecodeAll(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return tasks, nil
}

func (s *fileTaskStore) SaveAll(path string, tasks []models.Task) error {
	if err := os.WriteFile(path, codec.EncodeAll(tasks), 0o600); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func (s *fileTaskStore) Append(path string, t models.Task) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(codec.Encode(t)); err != nil {
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return nil
}

func (s *fileTaskStore) DeleteIfEmpty(path string, tasks []models.Task) error {
	if len(tasks) == 0 {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		return nil
	}
	return s.SaveAll(path, tasks)
}

func (s *fileTaskStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
