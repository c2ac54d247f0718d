package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashboarddto "eduvibe/internal/modules/dashboard/dto"
	"eduvibe/internal/ui/theme"
)

type Port interface {
	Stats(ctx context.Context) (dashboarddto.StatsOutput, error)
	Calendar(ctx context.Context, month string) (dashboarddto.CalendarOutput, error)
}

type LoadedMsg struct {
	Stats    dashboarddto.StatsOutput
	Calendar dashboarddto.CalendarOutput
	Err      error
}

type Model struct {
	port     Port
	month    string
	stats    dashboarddto.StatsOutput
	calendar dashboarddto.CalendarOutput
	goals    progress.Model
	err      error
	width    int
	height   int
}

func New(port Port) Model {
	return Model{
		port:  port,
		goals: progress.New(progress.WithGradient(string(theme.Peach), string(theme.Green)), progress.WithoutPercentage()),
	}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

// Reload fetches stats and the selected month.
func (m Model) Reload() tea.Cmd {
	month := m.month
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := m.port.Stats(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		cal, err := m.port.Calendar(ctx, month)
		return LoadedMsg{Stats: stats, Calendar: cal, Err: err}
	}
}

// ShowMonth switches the calendar to month ("2006-01", empty for current).
func (m *Model) ShowMonth(month string) tea.Cmd {
	m.month = month
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.goals.Width = max(msg.Width/3, 10)
	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.stats = msg.Stats
			m.calendar = msg.Calendar
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Warn.Render("dashboard: " + m.err.Error())
	}
	s := m.stats
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Today") + "\n\n")
	streak := fmt.Sprintf("%d day streak", s.Streak)
	switch {
	case s.StudiedToday:
		sb.WriteString(theme.Done.Render("🔥 "+streak) + "\n")
	case s.AtRisk:
		sb.WriteString(theme.Warn.Render("🔥 "+streak+" (study today to keep it)") + "\n")
	default:
		sb.WriteString(theme.Muted.Render(streak) + "\n")
	}
	sb.WriteString(fmt.Sprintf("%s %d/%d  %s\n\n",
		theme.Muted.Render("goals"), s.GoalsCompleted, s.GoalsTotal,
		m.goals.ViewAs(s.GoalsPercentage/100)))
	sb.WriteString(fmt.Sprintf("%s %d (%d completed)\n", theme.Muted.Render("playlists   "), s.Playlists, s.CompletedPlaylists))
	sb.WriteString(fmt.Sprintf("%s %d/%d\n", theme.Muted.Render("videos      "), s.CompletedVideos, s.TotalVideos))
	sb.WriteString(fmt.Sprintf("%s %.1f h\n", theme.Muted.Render("focus time  "), s.TotalFocusHours))

	left := theme.Pane.Width(max(m.width/2-2, 30)).Render(sb.String())
	right := theme.Pane.Render(m.renderCalendar())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderCalendar() string {
	c := m.calendar
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(c.Month) + theme.Muted.Render(fmt.Sprintf("  %d days studied", c.StudiedDays)) + "\n\n")
	for _, d := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		sb.WriteString(theme.DayPlain.Render(d))
	}
	sb.WriteString("\n")
	col := int(c.Weekday)
	sb.WriteString(strings.Repeat(theme.DayPlain.Render(""), col))
	for _, d := range c.Days {
		style := theme.DayPlain
		switch {
		case d.Today:
			style = theme.DayToday
		case d.Studied:
			style = theme.DayStudied
		}
		sb.WriteString(style.Render(fmt.Sprintf("%d", d.Day)))
		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		}
	}
	return sb.String()
}
