// Package render formats engine output for the terminal with lipgloss.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/todo-cli/todo-cli/pkg/models"
)

// Urgency thresholds, in seconds of time left.
const (
	week    = 7 * 24 * 3600
	twoDays = 2 * 24 * 3600
	day     = 24 * 3600
	fiveHrs = 5 * 3600
)

var (
	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	nameStyle  = lipgloss.NewStyle().Bold(true)
	descStyle  = lipgloss.NewStyle().Italic(true)
	dueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	barDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	barRestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	percentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	farStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	soonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	nearStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	urgentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// Card renders one task as a bordered card.
func Card(t models.Task, now time.Time) string {
	tl := t.TimeLeft(now)

	rows := []struct {
		label string
		value string
	}{
		{"Name:", nameStyle.Render(t.Name)},
		{"Description:", descStyle.Render(t.Description)},
		{"Deadline:", dueStyle.Render(t.DueString())},
		{"Time left:", TimeLeftStyle(tl).Render(FormatDuration(tl))},
		{"Time to complete:", FormatDuration(t.RemainingWork())},
		{"Progress:", ProgressBar(t.CompletionFraction())},
		{"Id:", idStyle.Render(fmt.Sprintf("%d", t.ID))},
	}

	labelWidth := 0
	for _, r := range rows {
		if len(r.label) > labelWidth {
			labelWidth = len(r.label)
		}
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("%s  %s", labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, r.label)), r.value)
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// ProgressBar renders a 25-cell bar followed by the percentage.
func ProgressBar(fraction float64) string {
	const totalLen = 25

	clamped := fraction
	if clamped > 1.0 {
		clamped = 1.0
	}
	if clamped < 0 {
		clamped = 0
	}
	done := int(clamped*totalLen + 0.5)

	return barDoneStyle.Render(strings.Repeat("━", done)) +
		barRestStyle.Render(strings.Repeat("━", totalLen-done)) +
		percentStyle.Render(fmt.Sprintf(" %.0f%%", fraction*100))
}

// FormatDuration renders seconds as "[-][Nmo ][Nd ][Nh ][Nm ]Ns", omitting
// zero units. Months are 30 days.
func FormatDuration(secs int64) string {
	sign := ""
	if secs < 0 {
		sign = "-"
		secs = -secs
	}

	months := secs / (86400 * 30)
	secs -= months * 86400 * 30
	days := secs / 86400
	secs -= days * 86400
	hours := secs / 3600
	secs -= hours * 3600
	minutes := secs / 60
	secs -= minutes * 60

	var b strings.Builder
	b.WriteString(sign)
	if months != 0 {
		fmt.Fprintf(&b, "%dmo ", months)
	}
	if days != 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if hours != 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if minutes != 0 {
		fmt.Fprintf(&b, "%dm ", minutes)
	}
	if secs != 0 || b.Len() == len(sign) {
		fmt.Fprintf(&b, "%ds", secs)
	}
	return strings.TrimRight(b.String(), " ")
}

// TimeLeftStyle returns the urgency color for the given time left.
func TimeLeftStyle(secs int64) lipgloss.Style {
	switch {
	case secs >= week:
		return farStyle
	case secs >= twoDays:
		return soonStyle
	case secs >= day:
		return nearStyle
	case secs >= fiveHrs:
		return urgentStyle
	default:
		return overdueStyle
	}
}

// Success renders a confirmation message.
func Success(msg string) string {
	return successStyle.Render(msg)
}
