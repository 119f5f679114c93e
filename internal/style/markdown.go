package style

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

var (
	renderersMu sync.Mutex
	renderers   = map[int]*glamour.TermRenderer{}
)

// Markdown renders text with glamour wrapped at width, falling back to plain
// word wrapping when the renderer cannot be built.
func Markdown(text string, width int) string {
	renderersMu.Lock()
	defer renderersMu.Unlock()

	renderer, ok := renderers[width]
	if !ok {
		var err error
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			slog.Warn("Creating markdown renderer failed", slog.String("error", err.Error()))
			return wordwrap.String(text, width)
		}
		renderers[width] = renderer
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return wordwrap.String(text, width)
	}
	// glamour pads both ends with blank lines
	return strings.Trim(rendered, "\n\r")
}
