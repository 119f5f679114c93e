package confirm

import (
	"github.com/Kavantix/tuimodal/internal/modal"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	YesLabel = "yes"
	NoLabel  = "no"
)

// Config returns the modal configuration for a yes/no question. Pressing yes
// hides the dialog and runs onConfirm.
func Config(question string, onConfirm tea.Cmd) modal.Config {
	return modal.Config{
		Kind:       modal.Confirm,
		Title:      "Confirm",
		Content:    question,
		CloseLabel: NoLabel,
		Classes:    []string{"info"},
		Buttons: []modal.Button{{
			Label:   YesLabel,
			Classes: []string{"confirm"},
			Action: func(m *modal.Modal) tea.Cmd {
				m.Hide()
				return onConfirm
			},
		}},
	}
}

func Show(question string, onConfirm tea.Cmd) tea.Cmd {
	return modal.Open(Config(question, onConfirm))
}
