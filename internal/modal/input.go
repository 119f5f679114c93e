package modal

import (
	"github.com/Kavantix/tuimodal/internal/dom"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Press key.Binding
	Close key.Binding
}

var Keys = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab", "previous"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "press"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Press, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Press, k.Close}}
}

// Update implements overlay.Layer. Only the top modal receives input.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		zones := m.overlays.Zones()
		if zones == nil {
			return nil
		}
		for _, el := range m.Buttons() {
			id, _ := el.Data(buttonKey)
			if zones.Get(m.prefix + id).InBounds(msg) {
				return m.Click(el)
			}
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Next):
			m.moveFocus(1)
		case key.Matches(msg, Keys.Prev):
			m.moveFocus(-1)
		case key.Matches(msg, Keys.Press):
			return m.Click(m.Focused())
		case key.Matches(msg, Keys.Close):
			return m.Dispatch(CloseButton)
		}
	}
	return nil
}

// Focused returns the button element that enter would press.
func (m *Modal) Focused() *dom.Element {
	buttons := m.Buttons()
	if m.focus < len(buttons) {
		return buttons[m.focus]
	}
	return nil
}
