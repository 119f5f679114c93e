package style

import (
	"github.com/Kavantix/tuimodal/internal/dom"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// MarkFunc lets the caller wrap the rendered output of an element, which is
// how buttons get their click zones.
type MarkFunc func(el *dom.Element, rendered string) string

const inlineGap = " "

// Render draws el and its subtree into a block of the given width. Block
// elements fill the width; inline elements keep their natural width and
// flow into rows. Empty blocks render as nothing.
func (s *Sheet) Render(el *dom.Element, width int, mark MarkFunc) string {
	st := s.Style(el.Classes()...)
	inner := max(0, width-st.GetHorizontalFrameSize())

	var content string
	if children := el.Children(); len(children) > 0 {
		content = s.renderChildren(children, inner, mark)
	} else {
		content = s.renderText(el, inner)
	}
	if content == "" && !el.Inline() {
		return ""
	}

	if !el.Inline() {
		st = st.Width(max(0, width-st.GetHorizontalBorderSize()-st.GetHorizontalMargins()))
	}
	out := st.Render(content)
	if mark != nil {
		out = mark(el, out)
	}
	return out
}

func (s *Sheet) renderChildren(children []*dom.Element, width int, mark MarkFunc) string {
	var blocks []string
	var row []string
	rowWidth := 0
	flush := func() {
		if len(row) > 0 {
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
		row = nil
		rowWidth = 0
	}

	for _, child := range children {
		rendered := s.Render(child, width, mark)
		if !child.Inline() {
			flush()
			if rendered != "" {
				blocks = append(blocks, rendered)
			}
			continue
		}

		w := lipgloss.Width(rendered)
		if len(row) > 0 && rowWidth+len(inlineGap)+w > width {
			flush()
		}
		if len(row) > 0 {
			row = append(row, inlineGap)
			rowWidth += len(inlineGap)
		}
		row = append(row, rendered)
		rowWidth += w
	}
	flush()

	if len(blocks) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (s *Sheet) renderText(el *dom.Element, width int) string {
	text := el.Text()
	if text == "" || el.Inline() {
		return text
	}
	if format, _ := el.Data("format"); format == "markdown" {
		return Markdown(text, width)
	}
	return wordwrap.String(text, width)
}
