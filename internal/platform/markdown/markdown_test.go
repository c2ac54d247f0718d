package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduvibe/internal/platform/markdown"
)

func TestParseAndRender(t *testing.T) {
	t.Parallel()
	note := markdown.Note{Meta: map[string]any{"date": "2026-10-18", "sessions": 2}, Body: "# Today\n"}
	out, err := note.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "2026-10-18")

	parsed, err := markdown.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", parsed.Meta["date"])
	assert.Equal(t, 2, parsed.Meta["sessions"])
	assert.Equal(t, "# Today\n", parsed.Body)
}

func TestParseWithoutFrontmatter(t *testing.T) {
	t.Parallel()
	parsed, err := markdown.Parse("just text")
	require.NoError(t, err)
	assert.Empty(t, parsed.Meta)
	assert.Equal(t, "just text", parsed.Body)

	_, err = markdown.Parse("---\nkey: value\n")
	assert.Error(t, err)
}

func TestBlockReplaceKeepsUserText(t *testing.T) {
	t.Parallel()
	b := markdown.NewBlock("sessions")
	body := b.Replace("My reflections\n", "- one")
	assert.Equal(t, "My reflections\n\n"+b.Start+"\n- one\n"+b.End+"\n", body)

	body = b.Replace(body+"More notes\n", "- one\n- two\n")
	content, ok := b.Content(body)
	require.True(t, ok)
	assert.Equal(t, "- one\n- two", content)
	assert.Contains(t, body, "My reflections")
	assert.Contains(t, body, "More notes")

	_, ok = b.Content("nothing here")
	assert.False(t, ok)
	assert.Equal(t, b.Start+"\n- x\n"+b.End+"\n", b.Replace("", "- x"))
}

func TestParseNullFrontmatterGivesEmptyMeta(t *testing.T) {
	t.Parallel()
	for _, content := range []string{"---\n~\n---\nMy reflections\n", "---\n\n---\nMy reflections\n"} {
		parsed, err := markdown.Parse(content)
		require.NoError(t, err)
		require.NotNil(t, parsed.Meta)
		parsed.Meta["date"] = "2026-10-18"
		assert.Equal(t, "My reflections\n", parsed.Body)
	}
}
