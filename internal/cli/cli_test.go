package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Kavantix/tuimodal/internal/app"
	"github.com/Kavantix/tuimodal/internal/dom"
	"github.com/Kavantix/tuimodal/internal/flags"
	"github.com/Kavantix/tuimodal/internal/messages"
	"github.com/Kavantix/tuimodal/internal/modal"
	"github.com/Kavantix/tuimodal/internal/overlay"
	"github.com/Kavantix/tuimodal/internal/style"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

func TestCommands(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"alert", "confirm", "show"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not found", name)
		}
	}
	for _, name := range []string{"debug", "log-file", "styles", "background", "markdown-background"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("flag --%s missing", name)
		}
	}
}

func TestArgsAreValidated(t *testing.T) {
	for _, args := range [][]string{{"alert"}, {"confirm", "a", "b"}, {"show"}} {
		root := NewRootCmd()
		root.SetArgs(args)
		if err := root.Execute(); err == nil {
			t.Errorf("%v should fail", args)
		}
	}
}

func TestDialogFlags(t *testing.T) {
	cmd := newConfirmCmd(nil)
	err := cmd.ParseFlags([]string{
		"--title", "Delete",
		"--close-label", "keep",
		"--confirm-label", "sure",
		"--class", "danger",
		"--width", "40",
	})
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := dialogFlags(cmd, modal.Confirm, "Really?")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Delete" || cfg.CloseLabel != "keep" || cfg.ConfirmLabel != "sure" ||
		cfg.Width != 40 || len(cfg.Classes) != 1 || cfg.Content != "Really?" {
		t.Errorf("config = %+v", cfg)
	}
}

func show(cfg modal.Config) *modal.Modal {
	m := modal.New(overlay.NewManager(dom.NewDocument(), nil, nil), cfg)
	m.Show()
	return m
}

func TestConfirmConfig(t *testing.T) {
	res := &result{}
	m := show(confirmConfig(modal.Config{Kind: modal.Confirm}, []string{"a", "b"}, res.Set))

	buttons := m.Buttons()
	if len(buttons) != 3 {
		t.Fatalf("%d buttons, want a, b and close", len(buttons))
	}
	m.Click(buttons[1])
	if !res.set || res.value != "b" {
		t.Errorf("result = %+v, want b", res)
	}
	if m.IsOpen() {
		t.Error("result buttons should close the dialog")
	}

	res = &result{}
	m = show(confirmConfig(modal.Config{Kind: modal.Confirm}, nil, res.Set))
	m.Click(m.Buttons()[0])
	if res.value != modal.DefaultConfirmLabel {
		t.Errorf("result = %q, want the confirm label", res.value)
	}

	res = &result{}
	m = show(confirmConfig(modal.Config{Kind: modal.Confirm}, nil, res.Set))
	m.Dispatch(modal.CloseButton)
	if res.set {
		t.Error("closing should not produce a result")
	}
}

func TestAlertConfig(t *testing.T) {
	res := &result{}
	cfg := alertConfig(modal.Config{CloseLabel: "ok"}, res.Set)
	if cfg.Kind != modal.Alert || cfg.Buttons != nil {
		t.Errorf("config = %+v", cfg)
	}
	if res.set {
		t.Fatal("building the alert should not produce a result")
	}

	m := show(cfg)
	m.Click(m.Buttons()[0])
	if res.value != "ok" || res.Err() != nil {
		t.Errorf("result = %+v, want ok", res)
	}
}

func TestAlertQuitWithoutResult(t *testing.T) {
	res := &result{}
	var model tea.Model = app.New(nil, nil)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, _ = model.Update(app.LoadedMsg{
		Dialogs: []modal.Config{alertConfig(modal.Config{Content: "hi"}, res.Set)},
	})

	// q asks first, enter answers yes
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should ask before quitting")
	}
	model, _ = model.Update(cmd())
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if overlays := model.(app.Model).Overlays(); overlays.Len() != 1 {
		t.Fatalf("%d dialogs open, want only the alert", overlays.Len())
	}
	if !errors.Is(res.Err(), ErrNoResult) {
		t.Errorf("Err() = %v, want ErrNoResult", res.Err())
	}
}

func newContext(t *testing.T, args ...string) *flags.Context {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	ctx := flags.New(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return ctx
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	stylesPath := filepath.Join(dir, "styles.yaml")
	backgroundPath := filepath.Join(dir, "page.md")
	if err := os.WriteFile(stylesPath, []byte("styles:\n  modal:\n    width: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(backgroundPath, []byte("# Page"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := newContext(t, "--styles", stylesPath, "--background", backgroundPath, "--markdown-background")
	source := func(func(string)) ([]modal.Config, *style.Sheet, string, error) {
		return []modal.Config{{Title: "x"}}, nil, "ignored", nil
	}
	msg, ok := load(ctx, &result{}, source)().(app.LoadedMsg)
	if !ok {
		t.Fatal("load should produce a LoadedMsg")
	}
	if len(msg.Dialogs) != 1 || msg.Background != "# Page" || !msg.Markdown {
		t.Errorf("loaded = %+v", msg)
	}
	if w := msg.Sheet.Rule("modal").Width; w == nil || *w != 30 {
		t.Error("style overrides should be applied")
	}
	if msg.Sheet.Rule("modal").Border == nil {
		t.Error("default rules should be kept")
	}
}

func TestLoadFailures(t *testing.T) {
	failing := func(func(string)) ([]modal.Config, *style.Sheet, string, error) {
		return nil, nil, "", errors.New("boom")
	}
	if _, ok := load(newContext(t), &result{}, failing)().(messages.CriticalFailureMsg); !ok {
		t.Error("source errors should be critical failures")
	}

	ok := func(func(string)) ([]modal.Config, *style.Sheet, string, error) {
		return nil, nil, "", nil
	}
	ctx := newContext(t, "--styles", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, isFailure := load(ctx, &result{}, ok)().(messages.CriticalFailureMsg); !isFailure {
		t.Error("a missing styles file should be a critical failure")
	}
}
