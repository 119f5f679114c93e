package modal

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Kind uint

const (
	Alert Kind = iota
	Confirm
)

func (k Kind) String() string {
	switch k {
	case Confirm:
		return "confirm"
	default:
		return "alert"
	}
}

// ParseKind maps a type name to a Kind. Anything unrecognized is an alert.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirm":
		return Confirm
	default:
		return Alert
	}
}

// ButtonID identifies a rendered button. It is stored on the button
// element and keys the modal's handler table.
type ButtonID string

const (
	ConfirmButton ButtonID = "confirm"
	CloseButton   ButtonID = "close"
)

// Action runs when its button is pressed. The modal stays open unless the
// action hides it.
type Action func(m *Modal) tea.Cmd

type Button struct {
	Label   string
	Action  Action
	Classes []string
}

type Config struct {
	Kind         Kind
	Content      string
	Title        string
	ConfirmLabel string
	CloseLabel   string
	Classes      []string
	// Buttons are only rendered for Confirm modals.
	Buttons  []Button
	Markdown bool
	// Width of the dialog box; zero uses the sheet's modal width.
	Width int
	// OnClose runs after the close button hid the modal.
	OnClose Action
}

const (
	DefaultContent      = "no contents"
	DefaultConfirmLabel = "confirm"
	DefaultCloseLabel   = "cancel"
)

func (c Config) withDefaults() Config {
	if c.Content == "" {
		c.Content = DefaultContent
	}
	if c.ConfirmLabel == "" {
		c.ConfirmLabel = DefaultConfirmLabel
	}
	if c.CloseLabel == "" {
		c.CloseLabel = DefaultCloseLabel
	}
	c.Classes = slices.Clone(c.Classes)
	c.Buttons = slices.Clone(c.Buttons)
	for i := range c.Buttons {
		c.Buttons[i].Classes = slices.Clone(c.Buttons[i].Classes)
	}
	return c
}

type OpenMsg struct {
	Config Config
}

// Open asks the application to build and show a modal for cfg.
func Open(cfg Config) tea.Cmd {
	return func() tea.Msg {
		return OpenMsg{Config: cfg}
	}
}
