package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	goaldto "eduvibe/internal/modules/goal/dto"
	"eduvibe/internal/ui/theme"
)

type Port interface {
	Today(ctx context.Context) (goaldto.TodayOutput, error)
	Timeline(ctx context.Context, days int, month string) ([]goaldto.DayProgressOutput, error)
	Check(ctx context.Context, id string) (goaldto.CompletionOutput, error)
	Uncheck(ctx context.Context, id string) (goaldto.CompletionOutput, error)
	Delete(ctx context.Context, id string) (goaldto.GoalOutput, error)
}

type LoadedMsg struct {
	Today    goaldto.TodayOutput
	Timeline []goaldto.DayProgressOutput
	Err      error
}

type ToggledMsg struct {
	Out goaldto.CompletionOutput
	Err error
}

type DeletedMsg struct {
	Goal goaldto.GoalOutput
	Err  error
}

type Model struct {
	port     Port
	today    goaldto.TodayOutput
	timeline []goaldto.DayProgressOutput
	cursor   int
	bar      progress.Model
	err      error
	width    int
}

func New(port Port) Model {
	return Model{port: port, bar: progress.New(progress.WithDefaultGradient())}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		today, err := m.port.Today(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		timeline, err := m.port.Timeline(ctx, 7, "")
		return LoadedMsg{Today: today, Timeline: timeline, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = max(msg.Width/2, 10)
	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.today = msg.Today
			m.timeline = msg.Timeline
			if m.cursor >= len(m.today.Goals) {
				m.cursor = max(len(m.today.Goals)-1, 0)
			}
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.today.Goals)-1 {
				m.cursor++
			}
		case " ", "enter", "x":
			return m, m.toggleCmd()
		case "d":
			return m, m.deleteCmd()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Warn.Render("goals: " + m.err.Error())
	}
	var sb strings.Builder
	p := m.today.Progress
	sb.WriteString(theme.Title.Render("Today's goals") + theme.Muted.Render(fmt.Sprintf("  %d/%d", p.Completed, p.Total)) + "\n")
	sb.WriteString(m.bar.ViewAs(p.Percentage/100) + "\n\n")
	if len(m.today.Goals) == 0 {
		sb.WriteString(theme.Muted.Render("No goals for today. Press : and use goal:add.") + "\n")
	}
	for i, g := range m.today.Goals {
		cursor := "  "
		if i == m.cursor {
			cursor = theme.Hot.Render("> ")
		}
		sb.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, theme.Check(g.Completed), g.Title, theme.Muted.Render("#"+g.Category)))
	}
	if len(m.timeline) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Last 7 days") + "\n")
		for _, d := range m.timeline {
			filled := int(d.Percentage / 10)
			bar := theme.Done.Render(strings.Repeat("█", filled)) + theme.Muted.Render(strings.Repeat("░", 10-filled))
			sb.WriteString(fmt.Sprintf("%s %s %3.0f%%\n", d.Date, bar, d.Percentage))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("space: toggle  d: delete  j/k: move"))
	return theme.Pane.Render(sb.String())
}

func (m Model) current() (goaldto.GoalOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.today.Goals) {
		return goaldto.GoalOutput{}, false
	}
	return m.today.Goals[m.cursor], true
}

func (m Model) toggleCmd() tea.Cmd {
	g, ok := m.current()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		var (
			out goaldto.CompletionOutput
			err error
		)
		if g.Completed {
			out, err = m.port.Uncheck(context.Background(), g.ID)
		} else {
			out, err = m.port.Check(context.Background(), g.ID)
		}
		return ToggledMsg{Out: out, Err: err}
	}
}

func (m Model) deleteCmd() tea.Cmd {
	g, ok := m.current()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		out, err := m.port.Delete(context.Background(), g.ID)
		return DeletedMsg{Goal: out, Err: err}
	}
}
