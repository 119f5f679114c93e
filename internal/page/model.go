// Package page is the scrollable content behind the dialogs.
package page

import (
	"github.com/Kavantix/tuimodal/internal/dom"
	"github.com/Kavantix/tuimodal/internal/style"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

type Model struct {
	doc      *dom.Document
	viewport *viewport.Model

	content  string
	markdown bool
}

var (
	frame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("239"))
)

func New(doc *dom.Document) Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return Model{
		doc:      doc,
		viewport: &vp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) SetSize(width, height int) {
	styleX, styleY := frame.GetFrameSize()
	m.viewport.Width = max(0, width-styleX)
	m.viewport.Height = max(0, height-styleY)
	m.render()
}

// SetContent replaces the page text. Markdown content is rendered with
// glamour at the current width.
func (m *Model) SetContent(content string, markdown bool) {
	m.content = content
	m.markdown = markdown
	m.render()
}

func (m Model) render() {
	width := m.viewport.Width
	var content string
	switch {
	case width <= 0:
		content = m.content
	case m.markdown:
		content = style.Markdown(m.content, width)
	default:
		content = wordwrap.String(m.content, width)
	}
	m.viewport.SetContent(content)
}

// Locked reports whether scrolling is currently suppressed by an open dialog.
func (m Model) Locked() bool {
	return m.doc != nil && m.doc.Overflow() == dom.OverflowHidden
}

func (m Model) YOffset() int {
	return m.viewport.YOffset
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		if m.Locked() {
			return m, nil
		}
	}
	newViewport, cmd := m.viewport.Update(msg)
	m.viewport = &newViewport
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return frame.
		Width(m.viewport.Width).
		Height(m.viewport.Height).
		Render(m.viewport.View())
}
