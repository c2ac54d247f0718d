package focus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	focusdomain "eduvibe/internal/modules/focus/domain"
	focusdto "eduvibe/internal/modules/focus/dto"
	apperrors "eduvibe/internal/platform/errors"
	"eduvibe/internal/ui/theme"
)

type Port interface {
	Start(ctx context.Context, task string, minutes int) (focusdto.ActiveSessionOutput, error)
	Stop(ctx context.Context, task string) (focusdto.StopOutput, error)
	GetActive(ctx context.Context) (focusdto.ActiveSessionOutput, error)
	History(ctx context.Context, n int) ([]focusdto.SessionOutput, error)
}

type LoadedMsg struct {
	Active    focusdto.ActiveSessionOutput
	HasActive bool
	History   []focusdto.SessionOutput
	Err       error
}

type StartedMsg struct {
	Active focusdto.ActiveSessionOutput
	Err    error
}

type StoppedMsg struct {
	Out focusdto.StopOutput
	Err error
}

// tickMsg carries the generation it was scheduled for so a paused and
// resumed countdown never runs two tick loops.
type tickMsg struct{ gen int }

var clockStyle = lipgloss.NewStyle().Foreground(theme.Peach).Bold(true).Padding(1, 4)

type Model struct {
	port      Port
	minutes   int
	countdown focusdomain.Countdown
	gen       int
	active    focusdto.ActiveSessionOutput
	hasActive bool
	history   []focusdto.SessionOutput
	bar       progress.Model
	err       error
}

func New(port Port, minutes int) Model {
	return Model{
		port:      port,
		minutes:   minutes,
		countdown: focusdomain.NewCountdown(minutes),
		bar:       progress.New(progress.WithSolidFill(string(theme.Peach)), progress.WithoutPercentage()),
	}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		msg := LoadedMsg{}
		active, err := m.port.GetActive(ctx)
		switch {
		case err == nil:
			msg.Active, msg.HasActive = active, true
		case !errors.Is(err, apperrors.ErrNoActiveSession):
			msg.Err = err
			return msg
		}
		msg.History, msg.Err = m.port.History(ctx, 5)
		return msg
	}
}

// HasActive reports whether a session is being timed.
func (m Model) HasActive() bool { return m.hasActive }

// StartCmd starts a session labelled task unless one is already running.
func (m Model) StartCmd(task string) tea.Cmd {
	minutes := m.minutes
	return func() tea.Msg {
		active, err := m.port.Start(context.Background(), task, minutes)
		return StartedMsg{Active: active, Err: err}
	}
}

// StopCmd records the running session.
func (m Model) StopCmd(task string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Stop(context.Background(), task)
		return StoppedMsg{Out: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(msg.Width/2, 10)

	case LoadedMsg:
		m.err = msg.Err
		m.history = msg.History
		if msg.HasActive && !m.hasActive {
			return m, m.resume(msg.Active)
		}
		if !msg.HasActive && m.hasActive {
			m.hasActive = false
			m.countdown.Reset(m.minutes)
		}

	case StartedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		return m, m.resume(msg.Active)

	case StoppedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.hasActive = false
		m.active = focusdto.ActiveSessionOutput{}
		m.countdown.Reset(m.minutes)
		return m, m.Reload()

	case tickMsg:
		if msg.gen != m.gen || !m.countdown.Running() {
			return m, nil
		}
		if m.countdown.Tick() {
			return m, m.StopCmd("")
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			if !m.hasActive {
				return m, m.StartCmd("")
			}
		case "p", " ":
			if !m.hasActive {
				return m, nil
			}
			if m.countdown.Running() {
				m.countdown.Pause()
				return m, nil
			}
			m.countdown.Start()
			m.gen++
			return m, m.tick()
		case "x":
			if m.hasActive {
				return m, m.StopCmd("")
			}
		case "r":
			if !m.hasActive {
				m.countdown.Reset(m.minutes)
			}
		}
	}
	return m, nil
}

func (m *Model) resume(active focusdto.ActiveSessionOutput) tea.Cmd {
	m.active = active
	m.hasActive = true
	m.countdown.Reset(active.PlannedMinutes)
	m.countdown.Start()
	if m.countdown.Elapse(active.Elapsed) {
		return m.StopCmd("")
	}
	m.gen++
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Focus") + "\n")
	switch {
	case !m.hasActive:
		sb.WriteString(theme.Muted.Render("idle") + "\n")
	case m.countdown.Running():
		sb.WriteString(theme.Done.Render("● "+taskLabel(m.active.Task)) + "\n")
	default:
		sb.WriteString(theme.Gold.Render("❚❚ "+taskLabel(m.active.Task)+" (paused)") + "\n")
	}
	sb.WriteString(clockStyle.Render(m.countdown.Clock()) + "\n")
	sb.WriteString(m.bar.ViewAs(m.countdown.Fraction()) + "\n")
	if m.err != nil {
		sb.WriteString("\n" + theme.Warn.Render(m.err.Error()) + "\n")
	}
	if len(m.history) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Recent sessions") + "\n")
		for _, s := range m.history {
			sb.WriteString(fmt.Sprintf("%s  %-30s %5.0f min\n", s.Date, s.Task, s.Hours*60))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("s: start  p: pause/resume  x: stop and record  r: reset"))
	return theme.Pane.Render(sb.String())
}

func taskLabel(task string) string {
	if strings.TrimSpace(task) == "" {
		return focusdomain.UntitledTask
	}
	return task
}
