package modal

import (
	"github.com/Kavantix/tuimodal/internal/dom"
	"github.com/Kavantix/tuimodal/internal/overlay"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth     = 50
	horizontalMargin = 2
	verticalMargin   = 1
)

// View renders the dialog box for a screen of width by height cells.
func (m *Modal) View(width, height int) string {
	if m.dialog == nil {
		return ""
	}
	sheet := m.overlays.Sheet()

	boxWidth := m.config.Width
	if boxWidth <= 0 {
		boxWidth = defaultWidth
		if w := sheet.Rule(m.dialog.Classes()...).Width; w != nil {
			boxWidth = *w
		}
	}
	boxWidth = max(1, min(boxWidth, width-2*horizontalMargin))

	box := sheet.Render(m.dialog, boxWidth, m.mark)
	return lipgloss.NewStyle().
		MaxHeight(max(1, height-2*verticalMargin)).
		Render(box)
}

// Composite implements overlay.Layer: the backdrop dims everything below
// and the dialog is centered on top.
func (m *Modal) Composite(bg string, width, height int) string {
	if m.dialog == nil {
		return bg
	}
	backdrop := m.overlays.Sheet().Style(m.dialog.Parent().Classes()...)
	return overlay.Center(
		m.View(width, height),
		overlay.Dim(bg, width, height, backdrop),
	)
}

func (m *Modal) mark(el *dom.Element, rendered string) string {
	zones := m.overlays.Zones()
	if zones == nil || !el.HasClass(buttonClass) {
		return rendered
	}
	id, _ := el.Data(buttonKey)
	return zones.Mark(m.prefix+id, rendered)
}
