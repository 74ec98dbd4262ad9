// Package markdown renders user-authored markdown into HTML.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// CommonMark only; raw HTML in the source is omitted from the output.
var renderer = goldmark.New()

// Render is deterministic and has no side effects.
func Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
