package cli

import (
	"github.com/Kavantix/tuimodal/internal/config"
	"github.com/Kavantix/tuimodal/internal/flags"
	"github.com/Kavantix/tuimodal/internal/modal"
	"github.com/Kavantix/tuimodal/internal/style"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newAlertCmd(ctx *flags.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert CONTENT",
		Short: "Show a message with a single close button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := dialogFlags(cmd, modal.Alert, args[0])
			if err != nil {
				return err
			}
			return run(cmd, ctx, func(onResult func(string)) ([]modal.Config, *style.Sheet, string, error) {
				return []modal.Config{alertConfig(cfg, onResult)}, nil, "", nil
			})
		},
	}
	addDialogFlags(cmd)
	return cmd
}

// alertConfig reports the close label as the result once the close button
// is pressed: an acknowledged alert is not a cancellation.
func alertConfig(cfg modal.Config, onResult func(string)) modal.Config {
	cfg.Buttons = nil
	cfg.Kind = modal.Alert
	label := cfg.CloseLabel
	if label == "" {
		label = modal.DefaultCloseLabel
	}
	cfg.OnClose = func(*modal.Modal) tea.Cmd {
		onResult(label)
		return nil
	}
	return cfg
}

func newConfirmCmd(ctx *flags.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirm CONTENT",
		Short: "Ask a question and print the label of the pressed button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := dialogFlags(cmd, modal.Confirm, args[0])
			if err != nil {
				return err
			}
			labels, err := cmd.Flags().GetStringArray("button")
			if err != nil {
				return err
			}
			return run(cmd, ctx, func(onResult func(string)) ([]modal.Config, *style.Sheet, string, error) {
				return []modal.Config{confirmConfig(cfg, labels, onResult)}, nil, "", nil
			})
		},
	}
	addDialogFlags(cmd)
	cmd.Flags().String("confirm-label", "", "label of the confirm button")
	cmd.Flags().StringArray("button", nil, "add a button that prints its label when pressed (repeatable)")
	return cmd
}

// confirmConfig turns every button into a result button. Without --button
// the default confirm button reports the confirm label.
func confirmConfig(cfg modal.Config, labels []string, onResult func(string)) modal.Config {
	if len(labels) == 0 {
		label := cfg.ConfirmLabel
		if label == "" {
			label = modal.DefaultConfirmLabel
		}
		labels = []string{label}
	}
	for _, label := range labels {
		cfg.Buttons = append(cfg.Buttons, modal.Button{
			Label:   label,
			Classes: []string{"confirm"},
			Action: func(m *modal.Modal) tea.Cmd {
				onResult(label)
				m.Hide()
				return nil
			},
		})
	}
	return cfg
}

func newShowCmd(ctx *flags.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Show the dialogs described in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			return run(cmd, ctx, func(onResult func(string)) ([]modal.Config, *style.Sheet, string, error) {
				f, err := config.LoadFile(path)
				if err != nil {
					return nil, nil, "", err
				}
				return f.Configs(onResult), f.Sheet(), f.Background, nil
			})
		},
	}
}

func addDialogFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "dialog title")
	cmd.Flags().String("close-label", "", "label of the close button")
	cmd.Flags().StringSlice("class", nil, "extra class for the dialog (repeatable)")
	cmd.Flags().Bool("markdown", false, "render the content as markdown")
	cmd.Flags().Int("width", 0, "width of the dialog")
}

func dialogFlags(cmd *cobra.Command, kind modal.Kind, content string) (modal.Config, error) {
	fs := cmd.Flags()
	cfg := modal.Config{Kind: kind, Content: content}
	var err error
	if cfg.Title, err = fs.GetString("title"); err != nil {
		return cfg, err
	}
	if cfg.CloseLabel, err = fs.GetString("close-label"); err != nil {
		return cfg, err
	}
	if cfg.Classes, err = fs.GetStringSlice("class"); err != nil {
		return cfg, err
	}
	if cfg.Markdown, err = fs.GetBool("markdown"); err != nil {
		return cfg, err
	}
	if cfg.Width, err = fs.GetInt("width"); err != nil {
		return cfg, err
	}
	if fs.Lookup("confirm-label") != nil {
		if cfg.ConfirmLabel, err = fs.GetString("confirm-label"); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
