package codec

import (
	"errors"
	"testing"

	"github.com/todo-cli/todo-cli/pkg/models"
)

func sampleTask() models.Task {
	return models.Task{
		ID:            3,
		Progress:      900,
		Deadline:      1893499200,
		EstimatedTime: 1800,
		Name:          "buy milk",
		Description:   "2%",
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := sampleTask()

	data := Encode(orig)
	got, n, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(data) {
		t.Fatalf("expected %d bytes consumed, got %d", len(data), n)
	}
	if got != orig {
		t.Fatalf("round-trip mismatch: %+v vs %+v", got, orig)
	}
}

func TestEncodeLayout(t *testing.T) {
	task := models.Task{ID: 1, Name: "a", Description: "bc"}
	data := Encode(task)

	// 4 int64 fields + 2 length prefixes + 1 + 2 string bytes.
	want := 4*8 + 2*8 + 1 + 2
	if len(data) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(data))
	}
	// id is the first big-endian field, name length the fifth.
	if data[7] != 1 {
		t.Fatalf("expected id 1 at offset 7, got %d", data[7])
	}
	if data[39] != 1 {
		t.Fatalf("expected name length 1 at offset 39, got %d", data[39])
	}
	if data[40] != 'a' {
		t.Fatalf("expected name byte at offset 40, got %q", data[40])
	}
}

func TestDecodeEmptyStrings(t *testing.T) {
	orig := models.Task{ID: 0, Deadline: -5}

	got, _, err := Decode(Encode(orig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != orig {
		t.Fatalf("round-trip mismatch: %+v vs %+v", got, orig)
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := Encode(sampleTask())

	for _, cut := range []int{1, 8, 33, len(data) - 1} {
		_, _, err := Decode(data[:cut])
		if !errors.Is(err, ErrCorrupt) {
			t.Fatalf("cut %d: expected ErrCorrupt, got %v", cut, err)
		}
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	data := Encode(models.Task{ID: 1, Name: "ok", Description: "fine"})
	// Clobber the first name byte with an invalid UTF-8 sequence start.
	data[40] = 0xff

	_, _, err := Decode(data)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestDecodeOversizedLength(t *testing.T) {
	data := Encode(models.Task{ID: 1, Name: "ok", Description: "fine"})
	// Inflate the name length prefix far beyond the available bytes.
	data[32] = 0x7f

	_, _, err := Decode(data)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestDecodeAllOrder(t *testing.T) {
	tasks := []models.Task{
		{ID: 0, Name: "first", Description: "a"},
		{ID: 1, Name: "second", Description: "b"},
		{ID: 2, Name: "third", Description: "c"},
	}

	got, err := DecodeAll(EncodeAll(tasks))
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

func TestDecodeAllEmpty(t *testing.T) {
	got, err := DecodeAll(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no tasks, got %d", len(got))
	}
}

func TestDecodeAllNoPartialList(t *testing.T) {
	data := EncodeAll([]models.Task{
		{ID: 0, Name: "whole", Description: "x"},
		{ID: 1, Name: "cut", Description: "y"},
	})

	tasks, err := DecodeAll(data[:len(data)-1])
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if tasks != nil {
		t.Fatalf("expected no partial list, got %d tasks", len(tasks))
	}
}
