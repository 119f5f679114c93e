// Package config reads dialog files: a list of dialogs to open, optional
// style overrides and the page shown behind them.
package config

import (
	"fmt"
	"os"

	"github.com/Kavantix/tuimodal/internal/modal"
	"github.com/Kavantix/tuimodal/internal/notify"
	"github.com/Kavantix/tuimodal/internal/style"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

type File struct {
	Dialogs    []Dialog              `yaml:"dialogs"`
	Styles     map[string]style.Rule `yaml:"styles"`
	Background string                `yaml:"background"`
}

type Dialog struct {
	Type         string   `yaml:"type"`
	Content      string   `yaml:"content"`
	Title        string   `yaml:"title"`
	ConfirmLabel string   `yaml:"confirmLabel"`
	CloseLabel   string   `yaml:"closeLabel"`
	Classes      []string `yaml:"classes"`
	Markdown     bool     `yaml:"markdown"`
	Width        int      `yaml:"width"`
	Buttons      []Button `yaml:"buttons"`
}

type Button struct {
	Content string   `yaml:"content"`
	Classes []string `yaml:"classes"`
	// Value is reported as the result when the button is pressed.
	Value string `yaml:"value"`
	// Notify shows a notification when the button is pressed.
	Notify   string `yaml:"notify"`
	KeepOpen bool   `yaml:"keepOpen"`
}

// ResultFunc receives the value of a pressed result button.
type ResultFunc func(value string)

func Parse(content []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parse dialogs: %w", err)
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Sheet is the default stylesheet extended with the file's styles.
func (f *File) Sheet() *style.Sheet {
	s := style.Default()
	s.Extend(f.Styles)
	return s
}

func (f *File) Configs(onResult ResultFunc) []modal.Config {
	configs := make([]modal.Config, 0, len(f.Dialogs))
	for _, d := range f.Dialogs {
		configs = append(configs, d.Config(onResult))
	}
	return configs
}

func (d Dialog) Config(onResult ResultFunc) modal.Config {
	cfg := modal.Config{
		Kind:         modal.ParseKind(d.Type),
		Content:      d.Content,
		Title:        d.Title,
		ConfirmLabel: d.ConfirmLabel,
		CloseLabel:   d.CloseLabel,
		Classes:      d.Classes,
		Markdown:     d.Markdown,
		Width:        d.Width,
	}
	for _, b := range d.Buttons {
		cfg.Buttons = append(cfg.Buttons, modal.Button{
			Label:   b.Content,
			Classes: b.Classes,
			Action:  b.action(onResult),
		})
	}
	return cfg
}

// action is nil for plain buttons so that they just close the dialog.
func (b Button) action(onResult ResultFunc) modal.Action {
	if b.Value == "" && b.Notify == "" && !b.KeepOpen {
		return nil
	}
	return func(m *modal.Modal) tea.Cmd {
		if b.Value != "" && onResult != nil {
			onResult(b.Value)
		}
		if !b.KeepOpen {
			m.Hide()
		}
		if b.Notify != "" {
			return notify.Info(b.Notify)
		}
		return nil
	}
}
