// Package notify shows short lived messages stacked in a corner of the
// screen. Every message removes itself after Lifetime.
package notify

import (
	"time"

	"github.com/Kavantix/tuimodal/internal/dom"
	"github.com/Kavantix/tuimodal/internal/style"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lifetime is how long a message stays on screen.
var Lifetime = time.Second

type Level uint

const (
	LevelInfo Level = iota
	LevelAlert
)

// Class is the style class used for the level.
func (l Level) Class() string {
	switch l {
	case LevelAlert:
		return "alert"
	default:
		return "info"
	}
}

type Msg struct {
	Text  string
	Level Level
}

type expiredMsg struct {
	id int
}

func Show(text string, level Level) tea.Cmd {
	return func() tea.Msg {
		return Msg{Text: text, Level: level}
	}
}

func Info(text string) tea.Cmd {
	return Show(text, LevelInfo)
}

type toast struct {
	id   int
	node *dom.Element
}

type Model struct {
	sheet  *style.Sheet
	nextID int
	toasts []toast
}

func New(sheet *style.Sheet) Model {
	if sheet == nil {
		sheet = style.Default()
	}
	return Model{sheet: sheet}
}

func (m *Model) SetSheet(sheet *style.Sheet) {
	if sheet != nil {
		m.sheet = sheet
	}
}

func (m Model) Len() int {
	return len(m.toasts)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Msg:
		m.nextID++
		id := m.nextID
		box := dom.New("div", "log-box", msg.Level.Class())
		box.Append(dom.New("div", "log-body").SetText(msg.Text))
		m.toasts = append(m.toasts, toast{id: id, node: box})
		return m, tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return expiredMsg{id: id}
		})
	case expiredMsg:
		toasts := make([]toast, 0, len(m.toasts))
		for _, t := range m.toasts {
			if t.id != msg.id {
				toasts = append(toasts, t)
			}
		}
		m.toasts = toasts
	}
	return m, nil
}

// View stacks the visible messages, oldest on top.
func (m Model) View() string {
	if len(m.toasts) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		width := 30
		if w := m.sheet.Rule(t.node.Classes()...).Width; w != nil {
			width = *w
		}
		boxes = append(boxes, m.sheet.Render(t.node, width, nil))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}
