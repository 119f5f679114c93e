package messages

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CloseModalMsg hides the top most dialog.
type CloseModalMsg struct{}

func CloseModal() tea.Msg {
	return CloseModalMsg{}
}

type QuitMsg struct{}

func Quit() tea.Msg {
	return QuitMsg{}
}

type CriticalFailureMsg struct {
	Err          error
	FriendlyText string
}

// Failure wraps err so the app can show it before quitting.
func Failure(friendlyText string, err error) tea.Msg {
	return CriticalFailureMsg{
		Err:          err,
		FriendlyText: friendlyText,
	}
}
