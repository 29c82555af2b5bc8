package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/todo-cli/todo-cli/internal/render"
	"github.com/todo-cli/todo-cli/pkg/models"
)

// Dashboard panel indices.
const (
	panelBands = iota
	panelNextUp
	panelCount
)

// Urgency bands, most urgent first.
var bandLabels = []string{"overdue", "< 1 day", "< 2 days", "< 7 days", "later"}

type dashboardModel struct {
	storePath   string
	activePanel int
	width       int
	height      int

	tasks []models.Task
	now   time.Time

	loading bool
	err     error
}

// tasksLoadedMsg carries the reloaded task list back to the model.
type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newDashboardModel(storePath string) dashboardModel {
	return dashboardModel{
		storePath:   storePath,
		activePanel: panelBands,
		loading:     true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadTasks(m.storePath)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "shift+tab":
			m.activePanel = (m.activePanel - 1 + panelCount) % panelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadTasks(m.storePath)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		m.now = time.Now()
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tasks = msg.tasks
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render(" Task Dashboard ")
	help := helpStyle.Render("tab: switch panel | r: reload | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading tasks...\n\n%s", title, help)
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	bandsPanel := m.renderBandsPanel()
	nextUpPanel := m.renderNextUpPanel()

	availableWidth := m.width - 2

	var body string
	if availableWidth > 100 {
		colWidth := availableWidth / 2
		bandsPanel = m.applyPanelStyle(panelBands, bandsPanel, colWidth-4)
		nextUpPanel = m.applyPanelStyle(panelNextUp, nextUpPanel, colWidth-4)
		body = lipgloss.JoinHorizontal(lipgloss.Top, bandsPanel, nextUpPanel)
	} else {
		panelWidth := availableWidth - 4
		if panelWidth < 20 {
			panelWidth = 20
		}
		bandsPanel = m.applyPanelStyle(panelBands, bandsPanel, panelWidth)
		nextUpPanel = m.applyPanelStyle(panelNextUp, nextUpPanel, panelWidth)
		body = lipgloss.JoinVertical(lipgloss.Left, bandsPanel, nextUpPanel)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m dashboardModel) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m dashboardModel) renderBandsPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Urgency"))
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString("  No tasks found.")
		return b.String()
	}

	counts := make([]int, len(bandLabels))
	for _, t := range m.tasks {
		counts[bandIndex(t.TimeLeft(m.now))]++
	}

	for i, label := range bandLabels {
		if counts[i] == 0 {
			continue
		}
		line := fmt.Sprintf("  %-10s %d", label, counts[i])
		b.WriteString(bandStyle(i).Render(line))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n  Total: %d", len(m.tasks)))
	return b.String()
}

func (m dashboardModel) renderNextUpPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Next up"))
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString("  Nothing due.")
		return b.String()
	}

	// The task list arrives sorted by urgency; show the first few.
	limit := 5
	if len(m.tasks) < limit {
		limit = len(m.tasks)
	}
	for _, t := range m.tasks[:limit] {
		tl := t.TimeLeft(m.now)
		left := render.TimeLeftStyle(tl).Render(render.FormatDuration(tl))
		b.WriteString(fmt.Sprintf("  [%d] %s  %s\n", t.ID, t.Name, left))
		b.WriteString(fmt.Sprintf("      %s\n", render.ProgressBar(t.CompletionFraction())))
	}

	return b.String()
}

// bandIndex maps time left to an urgency band.
func bandIndex(secs int64) int {
	switch {
	case secs < 0:
		return 0
	case secs < 24*3600:
		return 1
	case secs < 2*24*3600:
		return 2
	case secs < 7*24*3600:
		return 3
	default:
		return 4
	}
}

func bandStyle(band int) lipgloss.Style {
	switch band {
	case 0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	case 1:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	case 2:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	case 3:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	}
}

func loadTasks(storePath string) tea.Cmd {
	return func() tea.Msg {
		if TaskMgr == nil {
			return tasksLoadedMsg{err: fmt.Errorf("task manager not initialized")}
		}
		tasks, err := TaskMgr.List(storePath)
		if err != nil {
			return tasksLoadedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive urgency dashboard",
	Long: `Launch an interactive terminal dashboard that groups tasks into
urgency bands and shows the most pressing ones with their progress.

Switch panels with Tab, reload with r, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveStorePath(nil, -1)
		p := tea.NewProgram(newDashboardModel(path), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
