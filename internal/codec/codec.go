// Package codec implements the binary on-disk encoding of task records.
//
// A record is laid out big-endian: four signed 64-bit integers (id, progress,
// deadline, estimated time), then the name and the description, each preceded
// by an 8-byte unsigned length. A task file is a flat concatenation of
// records with no header, trailer, or padding.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/todo-cli/todo-cli/pkg/models"
)

// ErrCorrupt is returned when a task file cannot be decoded: a truncated
// record, a length prefix that does not fit, or string bytes that are not
// valid UTF-8.
var ErrCorrupt = errors.New("corrupt task file")

// fixedHeaderSize is the size of the four leading int64 fields.
const fixedHeaderSize = 4 * 8

// lenPrefixSize is the width of the name and description length prefixes.
const lenPrefixSize = 8

// Encode serializes a single task record.
func Encode(t models.Task) []byte {
	buf := make([]byte, 0, fixedHeaderSize+2*lenPrefixSize+len(t.Name)+len(t.Description))
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.ID))
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Progress))
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Deadline))
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.EstimatedTime))
	buf = appendString(buf, t.Name)
	buf = appendString(buf, t.Description)
	return buf
}

// EncodeAll serializes tasks back to back in the given order.
func EncodeAll(tasks []models.Task) []byte {
	var buf []byte
	for _, t := range tasks {
		buf = append(buf, Encode(t)...)
	}
	return buf
}

// Decode parses one record from the start of data and returns the task and
// the number of bytes consumed.
func Decode(data []byte) (models.Task, int, error) {
	var t models.Task
	off := 0

	var err error
	if t.ID, off, err = readInt64(data, off); err != nil {
		return models.Task{}, 0, fmt.Errorf("reading id: %w", err)
	}
	if t.Progress, off, err = readInt64(data, off); err != nil {
		return models.Task{}, 0, fmt.Errorf("reading progress: %w", err)
	}
	if t.Deadline, off, err = readInt64(data, off); err != nil {
		return models.Task{}, 0, fmt.Errorf("reading deadline: %w", err)
	}
	if t.EstimatedTime, off, err = readInt64(data, off); err != nil {
		return models.Task{}, 0, fmt.Errorf("reading estimated time: %w", err)
	}
	if t.Name, off, err = readString(data, off); err != nil {
		return models.Task{}, 0, fmt.Errorf("reading name: %w", err)
	}
	if t.Description, off, err = readString(data, off); err != nil {
		return models.Task{}, 0, fmt.Errorf("reading description: %w", err)
	}

	return t, off, nil
}

// DecodeAll parses a concatenation of records until the data is exhausted.
// Any failure mid-stream returns an error and no partial list.
func DecodeAll(data []byte) ([]models.Task, error) {
	var tasks []models.Task
	for off := 0; off < len(data); {
		t, n, err := Decode(data[off:])
		if err != nil {
			return nil, fmt.Errorf("record %d at offset %d: %w", len(tasks), off, err)
		}
		tasks = append(tasks, t)
		off += n
	}
	return tasks, nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(s)))
	return append(buf, s...)
}

func readInt64(data []byte, off int) (int64, int, error) {
	if len(data)-off < 8 {
		return 0, off, ErrCorrupt
	}
	v := int64(binary.BigEndian.Uint64(data[off : off+8]))
	return v, off + 8, nil
}

func readString(data []byte, off int) (string, int, error) {
	if len(data)-off < lenPrefixSize {
		return "", off, ErrCorrupt
	}
	n := binary.BigEndian.Uint64(data[off : off+lenPrefixSize])
	off += lenPrefixSize

	if n > math.MaxInt || int(n) > len(data)-off {
		return "", off, ErrCorrupt
	}
	b := data[off : off+int(n)]
	if !utf8.Valid(b) {
		return "", off, fmt.Errorf("%w: invalid UTF-8", ErrCorrupt)
	}
	return string(b), off + int(n), nil
}
