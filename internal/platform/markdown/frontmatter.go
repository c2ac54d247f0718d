// Package markdown reads and writes notes made of a YAML frontmatter header
// and a markdown body.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

type Note struct {
	Meta map[string]any
	Body string
}

// Parse splits content into frontmatter and body. Content without a leading
// fence is all body. The blank line Render puts after the header is dropped.
func Parse(content string) (Note, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, fence) {
		return Note{Meta: map[string]any{}, Body: content}, nil
	}
	rest := strings.TrimPrefix(content, fence)
	end := strings.Index(rest, "\n"+fence)
	if end < 0 {
		return Note{}, fmt.Errorf("frontmatter is not closed")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return Note{}, fmt.Errorf("decode frontmatter: %w", err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	body := strings.TrimPrefix(rest[end+len("\n"+fence):], "\n")
	return Note{Meta: meta, Body: body}, nil
}

func (n Note) Render() (string, error) {
	buf := bytes.Buffer{}
	buf.WriteString(fence)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n.Meta); err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	buf.WriteString(fence)
	if !strings.HasPrefix(n.Body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString(n.Body)
	return buf.String(), nil
}
