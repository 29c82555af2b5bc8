package core

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrInvalidProgress is returned when a progress amount matches neither the
// duration nor the percent form.
var ErrInvalidProgress = errors.New("invalid progress format")

// DurationPattern matches effort amounts like "2h 30m", "45m", "1h5s" or "90s".
// All components are optional and the empty string resolves to zero seconds.
var DurationPattern = regexp.MustCompile(`^(?:(\d+)h\s*)?(?:(\d+)m\s*)?(?:(\d+)s)?$`)

// percentPattern matches amounts like "50%", resolved against a task's
// estimated time.
var percentPattern = regexp.MustCompile(`^(\d+)%$`)

// ResolveProgressSpec converts an amount spec to signed seconds. The two
// accepted forms are exclusive: a duration ("Nh Nm Ns") or a percentage of
// estimated ("N%", rounded to the nearest second).
func ResolveProgressSpec(spec string, estimated int64) (int64, error) {
	if m := DurationPattern.FindStringSubmatch(spec); m != nil {
		return DurationFromGroups(m[1:])
	}
	if m := percentPattern.FindStringSubmatch(spec); m != nil {
		pct, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing percentage %q: %w", m[1], err)
		}
		return int64(math.Round(float64(estimated) * float64(pct) / 100.0)), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidProgress, spec)
}

// DurationFromGroups converts the captured groups of DurationPattern
// (hours, minutes, seconds; empty means zero) to seconds. It is a pure
// validator usable directly by the interactive prompts.
func DurationFromGroups(groups []string) (int64, error) {
	units := []struct {
		name   string
		factor int64
	}{
		{"hours", 3600},
		{"minutes", 60},
		{"seconds", 1},
	}

	var total int64
	for i, u := range units {
		if i >= len(groups) || groups[i] == "" {
			continue
		}
		v, err := strconv.ParseInt(groups[i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing %s %q: %w", u.name, groups[i], err)
		}
		total += v * u.factor
	}
	return total, nil
}
