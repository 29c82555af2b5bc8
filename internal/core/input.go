package core

import (
	"fmt"
	"time"
)

// DuePattern matches a deadline as "YYYY-MM-DD", "YYYY-MM-DD HH:MM:SS" or
// "HH:MM:SS". Group 1 is the date, group 2 the time following a date, and
// group 3 a bare time.
const DuePattern = `^(?:(\d{4}-\d{2}-\d{2})(?: (\d{2}:\d{2}:\d{2}))?|(\d{2}:\d{2}:\d{2}))$`

// DueFromGroups converts the captured groups of DuePattern to Unix seconds
// in the local time zone. A missing date defaults to today; a missing time
// defaults to the current wall-clock time. It is a pure validator: the
// reference instant is passed in, no I/O.
func DueFromGroups(groups []string, now time.Time) (int64, error) {
	now = now.Local()

	date := now
	if len(groups) > 0 && groups[0] != "" {
		d, err := time.ParseInLocation("2006-01-02", groups[0], time.Local)
		if err != nil {
			return 0, fmt.Errorf("invalid date %q: %w", groups[0], err)
		}
		date = d
	}

	var clock string
	if len(groups) > 1 && groups[1] != "" {
		clock = groups[1]
	} else if len(groups) > 2 && groups[2] != "" {
		clock = groups[2]
	}

	hour, min, sec := now.Hour(), now.Minute(), now.Second()
	if clock != "" {
		t, err := time.Parse("15:04:05", clock)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q: %w", clock, err)
		}
		hour, min, sec = t.Hour(), t.Minute(), t.Second()
	}

	due := time.Date(date.Year(), date.Month(), date.Day(), hour, min, sec, 0, time.Local)
	return due.Unix(), nil
}
