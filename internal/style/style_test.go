package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Kavantix/tuimodal/internal/dom"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func useAsciiProfile(t *testing.T) {
	t.Helper()
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })
}

func TestRuleMergeLaterWins(t *testing.T) {
	base := Rule{Foreground: String("1"), Padding: []int{1}}
	over := Rule{Foreground: String("2"), Bold: Bool(true)}

	merged := base.Merge(over)
	if *merged.Foreground != "2" {
		t.Errorf("Foreground = %q, want 2", *merged.Foreground)
	}
	if merged.Bold == nil || !*merged.Bold {
		t.Error("Bold should come from the override")
	}
	if len(merged.Padding) != 1 || merged.Padding[0] != 1 {
		t.Errorf("Padding = %v, want the base value", merged.Padding)
	}
}

func TestSheetRuleFollowsClassOrder(t *testing.T) {
	s := NewSheet()
	s.Set("a", Rule{Background: String("1")})
	s.Set("b", Rule{Background: String("2")})

	if got := *s.Rule("a", "b").Background; got != "2" {
		t.Errorf("Rule(a, b).Background = %q, want 2", got)
	}
	if got := *s.Rule("b", "a").Background; got != "1" {
		t.Errorf("Rule(b, a).Background = %q, want 1", got)
	}
	if s.Rule("unknown").Background != nil {
		t.Error("unknown classes should contribute nothing")
	}
}

func TestRuleStyleFrame(t *testing.T) {
	r := Rule{Padding: []int{1, 2}, Border: String("rounded")}
	st := r.Style()
	top, right, bottom, left := st.GetPadding()
	if top != 1 || right != 2 || bottom != 1 || left != 2 {
		t.Errorf("padding = %d %d %d %d, want 1 2 1 2", top, right, bottom, left)
	}
	if st.GetHorizontalBorderSize() != 2 {
		t.Errorf("horizontal border size = %d, want 2", st.GetHorizontalBorderSize())
	}

	unknown := Rule{Border: String("wavy")}.Style()
	if unknown.GetHorizontalBorderSize() != 0 {
		t.Error("unknown border names should not draw a border")
	}
}

func TestParseExtendsDefaults(t *testing.T) {
	s, err := Parse([]byte(`
styles:
  modal:
    border-foreground: "200"
  custom:
    bold: true
ignored: true
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	modal := s.Rule("modal")
	if *modal.BorderForeground != "200" {
		t.Errorf("modal border foreground = %q, want 200", *modal.BorderForeground)
	}
	if modal.Border == nil || *modal.Border != "rounded" {
		t.Error("default modal border should survive the override")
	}
	if b := s.Rule("custom").Bold; b == nil || !*b {
		t.Error("custom class should be added")
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("styles: [")); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	content := "styles:\n  danger:\n    background: \"160\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error = %v", err)
	}
	if len(rules) != 1 || *rules["danger"].Background != "160" {
		t.Errorf("rules = %+v, want only danger", rules)
	}
	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadRules() should fail for a missing file")
	}
}

func TestRenderFlowsInlineChildren(t *testing.T) {
	useAsciiProfile(t)
	s := NewSheet()

	footer := dom.New("div", "footer")
	footer.Append(
		dom.New("button").SetText("ok"),
		dom.New("button").SetText("cancel"),
	)
	out := s.Render(footer, 20, nil)

	lines := strings.Split(out, "\n")
	if len(lines) != 1 {
		t.Fatalf("expected buttons on one line, got %q", out)
	}
	if !strings.Contains(lines[0], "ok cancel") {
		t.Errorf("expected inline buttons separated by a gap, got %q", lines[0])
	}
	if lipgloss.Width(out) != 20 {
		t.Errorf("block width = %d, want 20", lipgloss.Width(out))
	}
}

func TestRenderWrapsInlineRows(t *testing.T) {
	useAsciiProfile(t)
	s := NewSheet()

	footer := dom.New("div")
	footer.Append(
		dom.New("button").SetText("first"),
		dom.New("button").SetText("second"),
	)
	out := s.Render(footer, 8, nil)
	if got := lipgloss.Height(out); got != 2 {
		t.Fatalf("expected two rows, got %d: %q", got, out)
	}
}

func TestRenderSkipsEmptyBlocks(t *testing.T) {
	useAsciiProfile(t)
	s := Default()

	dialog := dom.New("div", "modal")
	dialog.Append(
		dom.New("div", "modal-title"),
		dom.New("div", "modal-body").SetText("hello"),
	)
	out := s.Render(dialog, 30, nil)
	if !strings.Contains(out, "hello") {
		t.Fatalf("body text missing from %q", out)
	}
	// border, padding, body, body margin, padding, border
	if got := lipgloss.Height(out); got != 6 {
		t.Errorf("height = %d, want 6:\n%s", got, out)
	}
	if got := lipgloss.Width(out); got != 30 {
		t.Errorf("width = %d, want 30", got)
	}
}

func TestRenderWrapsText(t *testing.T) {
	useAsciiProfile(t)
	s := NewSheet()

	body := dom.New("div").SetText("one two three four")
	out := s.Render(body, 10, nil)
	if got := lipgloss.Height(out); got != 2 {
		t.Errorf("height = %d, want 2: %q", got, out)
	}
}

func TestRenderCallsMark(t *testing.T) {
	useAsciiProfile(t)
	s := NewSheet()

	root := dom.New("div")
	button := dom.New("button", "modal-btn").SetText("ok")
	root.Append(button)

	var marked []*dom.Element
	s.Render(root, 10, func(el *dom.Element, rendered string) string {
		marked = append(marked, el)
		return rendered
	})
	found := false
	for _, el := range marked {
		if el == button {
			found = true
		}
	}
	if !found {
		t.Error("mark was not called for the button")
	}
}
