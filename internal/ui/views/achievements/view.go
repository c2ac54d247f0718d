package achievements

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	achievementdto "eduvibe/internal/modules/achievement/dto"
	"eduvibe/internal/ui/theme"
)

type Port interface {
	List(ctx context.Context) (achievementdto.ListOutput, error)
}

type LoadedMsg struct {
	List achievementdto.ListOutput
	Err  error
}

// icons maps the catalog's icon names to terminal glyphs.
var icons = map[string]string{
	"fa-fire":           "🔥",
	"fa-trophy":         "🏆",
	"fa-flag":           "🚩",
	"fa-crown":          "👑",
	"fa-star":           "⭐",
	"fa-gem":            "💎",
	"fa-medal":          "🏅",
	"fa-play-circle":    "▶",
	"fa-check-circle":   "✔",
	"fa-book":           "📚",
	"fa-lightbulb":      "💡",
	"fa-graduation-cap": "🎓",
	"fa-clock":          "⏰",
	"fa-bolt":           "⚡",
}

type Model struct {
	port Port
	list achievementdto.ListOutput
	bar  progress.Model
	vp   viewport.Model
	err  error
}

func New(port Port) Model {
	return Model{
		port: port,
		bar:  progress.New(progress.WithGradient(string(theme.Sapphire), string(theme.Green))),
		vp:   viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		list, err := m.port.List(context.Background())
		return LoadedMsg{List: list, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-2, 1)
		m.bar.Width = max(msg.Width/3, 10)
		m.vp.SetContent(m.render())
	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.list = msg.List
		}
		m.vp.SetContent(m.render())
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Warn.Render("achievements: " + m.err.Error())
	}
	header := theme.Title.Render("Achievements") +
		theme.Muted.Render(fmt.Sprintf("  %d of %d earned", m.list.Earned, len(m.list.Items)))
	return header + "\n\n" + m.vp.View()
}

func (m Model) render() string {
	var sb strings.Builder
	for _, it := range m.list.Items {
		icon := icons[it.Icon]
		if icon == "" {
			icon = "•"
		}
		name := theme.Muted.Render(it.Name)
		if it.Earned {
			name = theme.Gold.Render(it.Name)
		}
		sb.WriteString(fmt.Sprintf("%s %s  %s\n", icon, name, theme.Muted.Render(it.Description)))
		sb.WriteString("   " + m.bar.ViewAs(it.Progress) + theme.Muted.Render(fmt.Sprintf("  %.3g/%g", it.Current, it.Target)) + "\n")
	}
	return sb.String()
}
