package codec

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/todo-cli/todo-cli/pkg/models"
)

func genTask(t *rapid.T) models.Task {
	return models.Task{
		ID:            rapid.Int64Range(0, 1<<40).Draw(t, "id"),
		Progress:      rapid.Int64().Draw(t, "progress"),
		Deadline:      rapid.Int64().Draw(t, "deadline"),
		EstimatedTime: rapid.Int64Range(0, 1<<40).Draw(t, "estimated"),
		Name:          rapid.String().Draw(t, "name"),
		Description:   rapid.String().Draw(t, "description"),
	}
}

// Round-trip: decode(encode(t)) == t for any valid task.
func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		orig := genTask(t)

		got, n, err := Decode(Encode(orig))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != len(Encode(orig)) {
			t.Fatalf("expected full consumption, got %d bytes", n)
		}
		if got != orig {
			t.Fatalf("round-trip mismatch: %+v vs %+v", got, orig)
		}
	})
}

// List round-trip: order and contents survive a full encode/decode cycle.
func TestListRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := rapid.SliceOfN(rapid.Custom(genTask), 0, 20).Draw(t, "tasks")

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
	})
}

// Truncating an encoded stream by any positive amount makes decoding fail.
func TestTruncationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := rapid.SliceOfN(rapid.Custom(genTask), 1, 5).Draw(t, "tasks")
		data := EncodeAll(tasks)

		cut := rapid.IntRange(1, len(data)).Draw(t, "cut")
		_, err := DecodeAll(data[:len(data)-cut])
		// Cutting at an exact record boundary yields a shorter valid list,
		// anything else is corruption.
		if err != nil && !errors.Is(err, ErrCorrupt) {
			t.Fatalf("expected ErrCorrupt, got %v", err)
		}
		if err == nil {
			shorter, _ := DecodeAll(data[:len(data)-cut])
			if len(shorter) >= len(tasks) {
				t.Fatalf("truncated stream decoded %d of %d tasks", len(shorter), len(tasks))
			}
		}
	})
}
