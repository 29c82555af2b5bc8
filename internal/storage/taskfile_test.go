package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/todo-cli/todo-cli/internal/codec"
	"github.com/todo-cli/todo-cli/pkg/models"
)

func testStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "task_list")
}

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 0, Progress: 0, Deadline: 100, EstimatedTime: 1800, Name: "one", Description: "first"},
		{ID: 1, Progress: 60, Deadline: 50, EstimatedTime: 3600, Name: "two", Description: "second"},
	}
}

func TestLoadMissing(t *testing.T) {
	store := NewTaskFile()

	_, err := store.Load(testStorePath(t))
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestSaveAllLoadRoundTrip(t *testing.T) {
	store := NewTaskFile()
	path := testStorePath(t)
	tasks := sampleTasks()

	if err := store.SaveAll(path, tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(tasks) {
		t.Fatalf("expected %d tasks, got %d", len(tasks), len(got))
	}
	for i := range tasks {
		if got[i] != tasks[i] {
			t.Fatalf("task %d mismatch: %+v vs %+v", i, got[i], tasks[i])
		}
	}
}

func TestSaveAllNoTrailingBytes(t *testing.T) {
	store := NewTaskFile()
	path := testStorePath(t)
	tasks := sampleTasks()

	// Write a longer list first; a rewrite must truncate.
	longer := append(sampleTasks(), models.Task{ID: 2, Name: "three", Description: "extra"})
	if err := store.SaveAll(path, longer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.SaveAll(path, tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(data, codec.EncodeAll(tasks)) {
		t.Fatalf("file content has trailing or differing bytes: %d vs %d", len(data), len(codec.EncodeAll(tasks)))
	}
}

func TestAppendCreatesAndExtends(t *testing.T) {
	store := NewTaskFile()
	path := testStorePath(t)
	tasks := sampleTasks()

	if err := store.Append(path, tasks[0]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Append(path, tasks[1]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0] != tasks[0] || got[1] != tasks[1] {
		t.Fatalf("append order not preserved: %+v", got)
	}
}

func TestDeleteIfEmptyRemovesFile(t *testing.T) {
	store := NewTaskFile()
	path := testStorePath(t)

	if err := store.SaveAll(path, sampleTasks()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.DeleteIfEmpty(path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Exists(path) {
		t.Fatal("expected file to be deleted")
	}
}

func TestDeleteIfEmptyRewritesSurvivors(t *testing.T) {
	store := NewTaskFile()
	path := testStorePath(t)
	tasks := sampleTasks()

	if err := store.SaveAll(path, tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.DeleteIfEmpty(path, tasks[:1]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != tasks[0] {
		t.Fatalf("expected surviving task only, got %+v", got)
	}
}

func TestCorruptLoadLeavesFileUntouched(t *testing.T) {
	store := NewTaskFile()
	path := testStorePath(t)

	if err := store.SaveAll(path, sampleTasks()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Truncate the valid file by one byte.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	truncated := data[:len(data)-1]
	if err := os.WriteFile(path, truncated, 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = store.Load(path)
	if !errors.Is(err, codec.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(after, truncated) {
		t.Fatal("failed load modified the file")
	}
}
