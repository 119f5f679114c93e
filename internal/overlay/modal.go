package overlay

import (
	"github.com/Kavantix/tuimodal/internal/dom"
	tea "github.com/charmbracelet/bubbletea"
)

// Layer is one open overlay in the stack.
type Layer interface {
	// Node is the container element attached to the document body while
	// the layer is open.
	Node() *dom.Element
	Update(msg tea.Msg) tea.Cmd
	// Composite draws the layer over bg, which is width by height cells.
	Composite(bg string, width, height int) string
}
