// Package cli wires the dialogs into cobra commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Kavantix/tuimodal/internal/app"
	"github.com/Kavantix/tuimodal/internal/flags"
	"github.com/Kavantix/tuimodal/internal/messages"
	"github.com/Kavantix/tuimodal/internal/modal"
	"github.com/Kavantix/tuimodal/internal/style"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
)

// ErrNoResult is returned when every dialog was closed without pressing a
// result button.
var ErrNoResult = errors.New("closed without a result")

// NewRootCmd builds the command tree. The UI is drawn on stderr so that the
// result written to stdout can be captured.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tuimodal",
		Short:         "Show alert and confirm dialogs in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	ctx := flags.New(root.PersistentFlags())

	root.AddCommand(
		newAlertCmd(ctx),
		newConfirmCmd(ctx),
		newShowCmd(ctx),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := NewRootCmd().Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNoResult):
		return 1
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
}

// result records the value of the pressed button. It is only touched from
// the program's update loop and read after the program has exited.
type result struct {
	value string
	set   bool
}

func (r *result) Set(value string) {
	r.value = value
	r.set = true
}

// Err is ErrNoResult until a result button was pressed.
func (r *result) Err() error {
	if !r.set {
		return ErrNoResult
	}
	return nil
}

// dialogSource produces the dialogs once the program is running.
type dialogSource func(onResult func(string)) (dialogs []modal.Config, sheet *style.Sheet, background string, err error)

func run(cmd *cobra.Command, ctx *flags.Context, source dialogSource) error {
	if ctx.Debug() {
		f, err := tea.LogToFile(ctx.LogFile(), "debug")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	zones := zone.New()
	defer zones.Close()

	res := &result{}
	model := app.New(zones, load(ctx, res, source), app.QuitWhenEmpty())
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithContext(cmd.Context()),
	)

	slog.Info("Starting", slog.String("command", cmd.Name()))
	final, err := program.Run()
	if err != nil {
		slog.Error("Running program failed: ", slog.String("error", err.Error()))
		return err
	}
	if m, ok := final.(app.Model); ok && m.Failure() != nil {
		return m.Failure()
	}
	if err := res.Err(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.value)
	return nil
}

func load(ctx *flags.Context, res *result, source dialogSource) app.Loader {
	return func() tea.Msg {
		dialogs, sheet, background, err := source(res.Set)
		if err != nil {
			return messages.Failure("Failed to load dialogs", err)
		}
		if path := ctx.StylesPath(); path != "" {
			rules, err := style.LoadRules(path)
			if err != nil {
				return messages.Failure("Failed to load styles", err)
			}
			if sheet == nil {
				sheet = style.Default()
			}
			sheet = sheet.Clone()
			sheet.Extend(rules)
		}
		if path := ctx.Background(); path != "" {
			content, err := os.ReadFile(path)
			if err != nil {
				return messages.Failure("Failed to read background", err)
			}
			background = string(content)
		}
		return app.LoadedMsg{
			Sheet:      sheet,
			Background: background,
			Markdown:   ctx.MarkdownBackground(),
			Dialogs:    dialogs,
		}
	}
}
