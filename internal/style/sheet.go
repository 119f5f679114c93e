// Package style resolves element class names to lipgloss styles and renders
// dom trees with them.
package style

import (
	"fmt"
	"maps"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

type Sheet struct {
	rules map[string]Rule
}

func NewSheet() *Sheet {
	return &Sheet{rules: map[string]Rule{}}
}

// Default is the built in sheet covering every class the modal and
// notification widgets emit.
func Default() *Sheet {
	s := NewSheet()
	s.Set("modal", Rule{
		Border:           String("rounded"),
		BorderForeground: String("63"),
		Padding:          []int{1, 2},
		Width:            Int(50),
	})
	s.Set("modal-title", Rule{
		Bold:       Bool(true),
		Foreground: String("212"),
		Margin:     []int{0, 0, 1, 0},
	})
	s.Set("modal-body", Rule{
		Margin: []int{0, 0, 1, 0},
	})
	s.Set("modal-footer", Rule{
		Align: String("right"),
	})
	s.Set("modal-btn", Rule{
		Foreground: String("252"),
		Background: String("238"),
		Padding:    []int{0, 2},
	})
	s.Set("danger", Rule{
		Background: String("203"),
	})
	s.Set("focus", Rule{
		Foreground: String("255"),
		Background: String("212"),
		Bold:       Bool(true),
	})
	s.Set("dimmer", Rule{
		Foreground: String("241"),
	})
	s.Set("log-box", Rule{
		Border:     String("thick"),
		Padding:    []int{0, 1},
		Background: String("236"),
		Width:      Int(30),
	})
	s.Set("info", Rule{
		BorderForeground: String("45"),
	})
	s.Set("alert", Rule{
		BorderForeground: String("196"),
	})
	return s
}

// Set merges rule into whatever the sheet already has for class.
func (s *Sheet) Set(class string, rule Rule) {
	s.rules[class] = s.rules[class].Merge(rule)
}

func (s *Sheet) Extend(rules map[string]Rule) {
	for class, rule := range rules {
		s.Set(class, rule)
	}
}

func (s *Sheet) Clone() *Sheet {
	return &Sheet{rules: maps.Clone(s.rules)}
}

// Rule merges the rules of classes in order; later classes win.
func (s *Sheet) Rule(classes ...string) Rule {
	var merged Rule
	for _, class := range classes {
		if rule, ok := s.rules[class]; ok {
			merged = merged.Merge(rule)
		}
	}
	return merged
}

func (s *Sheet) Style(classes ...string) lipgloss.Style {
	return s.Rule(classes...).Style()
}

type sheetFile struct {
	Styles map[string]Rule `yaml:"styles"`
}

// Parse extends the default sheet with the `styles` section of a YAML
// document. Other top level keys are ignored.
func Parse(content []byte) (*Sheet, error) {
	rules, err := ParseRules(content)
	if err != nil {
		return nil, err
	}
	s := Default()
	s.Extend(rules)
	return s, nil
}

// ParseRules returns only the rules found in the `styles` section.
func ParseRules(content []byte) (map[string]Rule, error) {
	var f sheetFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parse styles: %w", err)
	}
	return f.Styles, nil
}

func LoadRules(path string) (map[string]Rule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRules(content)
}
