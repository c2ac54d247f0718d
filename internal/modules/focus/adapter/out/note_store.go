package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	focusout "eduvibe/internal/modules/focus/port/out"
	recorddomain "eduvibe/internal/modules/record/domain"
	"eduvibe/internal/platform/markdown"
)

const journalSchemaVersion = 1

var sessionsBlock = markdown.NewBlock("sessions")

// MarkdownJournal writes one note per study day under
// <dir>/YYYY/MM/YYYY-MM-DD.md. Only the sessions block and the frontmatter
// are regenerated; anything else in the note is kept.
type MarkdownJournal struct {
	dir string
}

func NewMarkdownJournal(dir string) focusout.SessionJournal {
	return &MarkdownJournal{dir: dir}
}

func (j *MarkdownJournal) WriteDay(_ context.Context, day string, sessions []recorddomain.FocusSession) (string, error) {
	if len(day) != len("2006-01-02") {
		return "", fmt.Errorf("journal day %q is not a day key", day)
	}
	dir := filepath.Join(j.dir, day[:4], day[5:7])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}
	path := filepath.Join(dir, day+".md")

	note := markdown.Note{Meta: map[string]any{}, Body: fmt.Sprintf("# Study journal %s\n", day)}
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		parsed, perr := markdown.Parse(string(existing))
		if perr != nil {
			return "", fmt.Errorf("journal %s left unchanged: %w", path, perr)
		}
		note = parsed
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("read journal: %w", err)
	}

	var total float64
	for _, s := range sessions {
		total += s.Duration
	}
	note.Meta["schema_version"] = journalSchemaVersion
	note.Meta["date"] = day
	note.Meta["sessions"] = len(sessions)
	note.Meta["focus_minutes"] = int(total*60 + 0.5)
	note.Body = sessionsBlock.Replace(note.Body, renderSessions(sessions))

	rendered, err := note.Render()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal: %w", err)
	}
	return path, nil
}

// renderSessions lists sessions oldest first.
func renderSessions(sessions []recorddomain.FocusSession) string {
	if len(sessions) == 0 {
		return "_No focus sessions._"
	}
	lines := make([]string, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		lines = append(lines, fmt.Sprintf("- %s-%s %s (%d min)",
			s.StartTime.Format("15:04"), s.EndTime.Format("15:04"), strings.TrimSpace(s.Task), int(s.Duration*60+0.5)))
	}
	return strings.Join(lines, "\n")
}
