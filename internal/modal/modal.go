package modal

import (
	"fmt"
	"log/slog"

	"github.com/Kavantix/tuimodal/internal/dom"
	"github.com/Kavantix/tuimodal/internal/notify"
	"github.com/Kavantix/tuimodal/internal/overlay"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	buttonClass = "modal-btn"
	buttonKey   = "button"
)

type button struct {
	id      ButtonID
	label   string
	classes []string
}

type Modal struct {
	overlays *overlay.Manager
	config   Config
	buttons  []button
	actions  map[ButtonID]Action
	prefix   string
	focus    int

	container *dom.Element
	dialog    *dom.Element
}

// assert
var _ overlay.Layer = &Modal{}

// New builds a modal for cfg. Nothing is attached until Show.
func New(overlays *overlay.Manager, cfg Config) *Modal {
	cfg = cfg.withDefaults()
	m := &Modal{
		overlays: overlays,
		config:   cfg,
		actions:  map[ButtonID]Action{},
	}
	if zones := overlays.Zones(); zones != nil {
		m.prefix = zones.NewPrefix()
	}

	switch cfg.Kind {
	case Confirm:
		if len(cfg.Buttons) == 0 {
			m.addButton(ConfirmButton, cfg.ConfirmLabel, []string{"confirm"}, confirmAndHide)
		}
		for i, b := range cfg.Buttons {
			m.addButton(ButtonID(fmt.Sprintf("button-%d", i)), b.Label, b.Classes, b.Action)
		}
	default:
		if len(cfg.Buttons) > 0 {
			slog.Warn("Ignoring buttons configured for an alert",
				slog.String("title", cfg.Title),
				slog.Int("buttons", len(cfg.Buttons)),
			)
		}
	}
	m.addButton(CloseButton, cfg.CloseLabel, []string{"cancel"}, closeAction(cfg.OnClose))
	return m
}

func closeAction(onClose Action) Action {
	if onClose == nil {
		return nil
	}
	return func(m *Modal) tea.Cmd {
		m.Hide()
		return onClose(m)
	}
}

func confirmAndHide(m *Modal) tea.Cmd {
	cmd := notify.Info("confirm")
	m.Hide()
	return cmd
}

func (m *Modal) addButton(id ButtonID, label string, classes []string, action Action) {
	m.buttons = append(m.buttons, button{id: id, label: label, classes: classes})
	m.actions[id] = action
}

func (m *Modal) Title() string {
	return m.config.Title
}

func (m *Modal) Kind() Kind {
	return m.config.Kind
}

// Node implements overlay.Layer.
func (m *Modal) Node() *dom.Element {
	return m.container
}

func (m *Modal) IsOpen() bool {
	return m.overlays.Contains(m)
}

// Show builds a fresh element tree and puts the modal on top of the stack.
// Showing an open modal rebuilds it in place of the old tree.
func (m *Modal) Show() {
	if m.container != nil {
		m.container.Remove()
	}
	m.build()
	m.overlays.Register(m)
	slog.Info("Showing modal",
		slog.String("title", m.config.Title),
		slog.String("kind", m.config.Kind.String()),
		slog.Int("open", m.overlays.Len()),
	)
}

// Hide detaches the modal. Hiding a closed modal does nothing.
func (m *Modal) Hide() {
	if !m.overlays.Unregister(m) {
		return
	}
	slog.Info("Hid modal",
		slog.String("title", m.config.Title),
		slog.Int("open", m.overlays.Len()),
	)
}

func (m *Modal) build() {
	m.container = dom.New("div", "modal-container")
	wrapper := dom.New("div", "wrapper", "dimmer")
	m.dialog = dom.New("div", "modal").AddClass(m.config.Classes...)

	title := dom.New("div", "modal-title").SetText(m.config.Title)
	body := dom.New("div", "modal-body").SetText(m.config.Content)
	if m.config.Markdown {
		body.SetData("format", "markdown")
	}

	footer := dom.New("div", "modal-footer")
	for _, b := range m.buttons {
		footer.Append(
			dom.New("button", buttonClass).
				AddClass(b.classes...).
				SetText(b.label).
				SetData(buttonKey, string(b.id)),
		)
	}

	m.dialog.Append(title, body, footer)
	wrapper.Append(m.dialog)
	m.container.Append(wrapper)

	m.focus = 0
	m.applyFocus()
}

// Buttons returns the rendered button elements in footer order.
func (m *Modal) Buttons() []*dom.Element {
	if m.dialog == nil {
		return nil
	}
	return m.dialog.Find(buttonClass)
}

// Click is the delegated handler for the whole modal: any element inside it
// may be passed, only buttons do something.
func (m *Modal) Click(el *dom.Element) tea.Cmd {
	if el == nil || !m.IsOpen() || !m.container.Contains(el) || !el.HasClass(buttonClass) {
		return nil
	}
	id, ok := el.Data(buttonKey)
	if !ok {
		return nil
	}
	return m.Dispatch(ButtonID(id))
}

// Dispatch runs the action registered for id. Buttons without an action
// hide the modal; unknown ids are ignored.
func (m *Modal) Dispatch(id ButtonID) tea.Cmd {
	action, ok := m.actions[id]
	if !ok {
		return nil
	}
	if action == nil {
		m.Hide()
		return nil
	}
	return action(m)
}

func (m *Modal) moveFocus(delta int) {
	n := len(m.buttons)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.applyFocus()
}

func (m *Modal) applyFocus() {
	for i, el := range m.Buttons() {
		if i == m.focus {
			el.AddClass("focus")
		} else {
			el.RemoveClass("focus")
		}
	}
}
