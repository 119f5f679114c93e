package app

import (
	"log/slog"

	"github.com/Kavantix/tuimodal/internal/confirm"
	"github.com/Kavantix/tuimodal/internal/dom"
	"github.com/Kavantix/tuimodal/internal/messages"
	"github.com/Kavantix/tuimodal/internal/modal"
	"github.com/Kavantix/tuimodal/internal/notify"
	"github.com/Kavantix/tuimodal/internal/overlay"
	"github.com/Kavantix/tuimodal/internal/page"
	"github.com/Kavantix/tuimodal/internal/style"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type Model struct {
	spinner      spinner.Model
	loaded       bool
	windowWidth  int
	windowHeight int
	quitting     bool

	zones    *zone.Manager
	overlays *overlay.Manager
	page     page.Model
	toasts   notify.Model
	help     help.Model

	load          Loader
	quitWhenEmpty bool
	// closing is set once the last dialog closed; the app quits when the
	// remaining toasts are gone too.
	closing bool

	criticalFailure messages.CriticalFailureMsg
}

var _ tea.Model = Model{}

// LoadedMsg carries everything the app needs before it can show dialogs.
type LoadedMsg struct {
	Sheet      *style.Sheet
	Background string
	Markdown   bool
	Dialogs    []modal.Config
}

// Loader runs once from Init and returns a LoadedMsg or a
// messages.CriticalFailureMsg.
type Loader func() tea.Msg

// emptyMsg is sent after the commands of the action that closed the last
// dialog, so that its notifications are already queued.
type emptyMsg struct{}

type Option func(*Model)

// QuitWhenEmpty quits the program as soon as the last dialog is closed.
func QuitWhenEmpty() Option {
	return func(m *Model) {
		m.quitWhenEmpty = true
	}
}

// New creates the root model. zones may be nil when mouse support is not
// needed.
func New(zones *zone.Manager, load Loader, opts ...Option) Model {
	doc := dom.NewDocument()
	sheet := style.Default()
	m := Model{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		zones:    zones,
		overlays: overlay.NewManager(doc, zones, sheet),
		page:     page.New(doc),
		toasts:   notify.New(sheet),
		help:     help.New(),
		load:     load,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Overlays() *overlay.Manager {
	return m.overlays
}

// Failure returns the error that stopped the app, if any.
func (m Model) Failure() error {
	return m.criticalFailure.Err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.load == nil {
		return func() tea.Msg { return LoadedMsg{} }
	}
	return tea.Batch(m.spinner.Tick, tea.Cmd(m.load))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.criticalFailure.Err != nil {
		return m, tea.Quit
	}

	var toastCmd tea.Cmd
	m.toasts, toastCmd = m.toasts.Update(msg)

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case LoadedMsg:
		m.overlays.SetSheet(msg.Sheet)
		m.toasts.SetSheet(msg.Sheet)
		m.page.SetContent(msg.Background, msg.Markdown)
		m.loaded = true
		for _, cfg := range msg.Dialogs {
			modal.New(m.overlays, cfg).Show()
		}
		slog.Info("Loaded", slog.Int("dialogs", len(msg.Dialogs)))
		return m, m.whenEmpty()
	case emptyMsg:
		if !m.quitWhenEmpty || m.overlays.Open() {
			return m, nil
		}
		m.closing = true
	case messages.CriticalFailureMsg:
		slog.Error("Critical failure",
			slog.String("text", msg.FriendlyText),
			slog.Any("error", msg.Err),
		)
		m.criticalFailure = msg
		return m, tea.ExitAltScreen
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		m.page.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case messages.QuitMsg:
		slog.Info("Quitting")
		m.quitting = true
		return m, tea.Quit
	case modal.OpenMsg:
		m.closing = false
		modal.New(m.overlays, msg.Config).Show()
		return m, toastCmd
	}

	if m.closing && !m.overlays.Open() && m.toasts.Len() == 0 {
		slog.Info("Last dialog closed")
		return m, messages.Quit
	}

	if !m.loaded {
		return m, toastCmd
	}

	if top := m.overlays.Top(); top != nil {
		switch msg := msg.(type) {
		case messages.CloseModalMsg:
			if top, ok := top.(*modal.Modal); ok {
				top.Hide()
			}
			return m, tea.Batch(toastCmd, m.whenEmpty())
		case tea.KeyMsg:
			if key.Matches(msg, keys.Quit) {
				return m, confirm.Show("Are you sure you want to quit?", messages.Quit)
			}
		}
		cmd = top.Update(msg)
		return m, tea.Batch(toastCmd, tea.Sequence(cmd, m.whenEmpty()))
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, messages.Quit
		}
	}

	m.page, cmd = m.page.Update(msg)
	return m, tea.Batch(toastCmd, cmd)
}

func (m Model) whenEmpty() tea.Cmd {
	if !m.quitWhenEmpty || m.overlays.Open() {
		return nil
	}
	return func() tea.Msg {
		return emptyMsg{}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.criticalFailure.Err != nil {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color("9")).
			Margin(1, 0)

		title := "Failed"
		if m.criticalFailure.FriendlyText != "" {
			title = m.criticalFailure.FriendlyText
		}
		title = style.Render(title)
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			lipgloss.NewStyle().
				Width(m.windowWidth).
				Render(m.criticalFailure.Err.Error()+"\n"),
		)
	}

	if !m.loaded {
		return m.spinner.View() + " Loading"
	}

	var helpKeys help.KeyMap = keys
	if m.overlays.Open() {
		helpKeys = modalKeys{KeyMap: modal.Keys, quit: keys.Quit}
	}
	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.page.View(),
		m.help.View(helpKeys),
	)
	screen = m.overlays.Composite(screen, m.windowWidth, m.windowHeight)

	if m.toasts.Len() > 0 {
		toasts := m.toasts.View()
		screen = overlay.Place(
			m.windowWidth-lipgloss.Width(toasts)-1, 0,
			toasts, screen,
			false,
		)
	}

	if m.zones == nil {
		return screen
	}
	return m.zones.Scan(screen)
}
