package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rule is the set of properties one class contributes. Unset fields leave
// whatever an earlier class in the list decided.
type Rule struct {
	Foreground       *string `yaml:"foreground"`
	Background       *string `yaml:"background"`
	Bold             *bool   `yaml:"bold"`
	Italic           *bool   `yaml:"italic"`
	Underline        *bool   `yaml:"underline"`
	Faint            *bool   `yaml:"faint"`
	Padding          []int   `yaml:"padding"`
	Margin           []int   `yaml:"margin"`
	Border           *string `yaml:"border"`
	BorderForeground *string `yaml:"border-foreground"`
	Width            *int    `yaml:"width"`
	Align            *string `yaml:"align"`
}

// Merge returns r with every field set in o taking precedence.
func (r Rule) Merge(o Rule) Rule {
	if o.Foreground != nil {
		r.Foreground = o.Foreground
	}
	if o.Background != nil {
		r.Background = o.Background
	}
	if o.Bold != nil {
		r.Bold = o.Bold
	}
	if o.Italic != nil {
		r.Italic = o.Italic
	}
	if o.Underline != nil {
		r.Underline = o.Underline
	}
	if o.Faint != nil {
		r.Faint = o.Faint
	}
	if o.Padding != nil {
		r.Padding = o.Padding
	}
	if o.Margin != nil {
		r.Margin = o.Margin
	}
	if o.Border != nil {
		r.Border = o.Border
	}
	if o.BorderForeground != nil {
		r.BorderForeground = o.BorderForeground
	}
	if o.Width != nil {
		r.Width = o.Width
	}
	if o.Align != nil {
		r.Align = o.Align
	}
	return r
}

// Style builds the lipgloss style for the rule. Width is left to the
// renderer, which knows how much room the element actually gets.
func (r Rule) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if r.Foreground != nil {
		s = s.Foreground(lipgloss.Color(*r.Foreground))
	}
	if r.Background != nil {
		s = s.Background(lipgloss.Color(*r.Background))
	}
	if r.Bold != nil {
		s = s.Bold(*r.Bold)
	}
	if r.Italic != nil {
		s = s.Italic(*r.Italic)
	}
	if r.Underline != nil {
		s = s.Underline(*r.Underline)
	}
	if r.Faint != nil {
		s = s.Faint(*r.Faint)
	}
	if sides := boxSides(r.Padding); sides != nil {
		s = s.Padding(sides...)
	}
	if sides := boxSides(r.Margin); sides != nil {
		s = s.Margin(sides...)
	}
	if r.Border != nil {
		if border, ok := borderByName(*r.Border); ok {
			s = s.Border(border)
			if r.BorderForeground != nil {
				s = s.BorderForeground(lipgloss.Color(*r.BorderForeground))
			}
		}
	}
	if r.Align != nil {
		s = s.Align(alignByName(*r.Align))
	}
	return s
}

// boxSides accepts the one, two, three or four value shorthand lipgloss
// uses for padding and margins.
func boxSides(values []int) []int {
	if len(values) == 0 || len(values) > 4 {
		return nil
	}
	return values
}

func borderByName(name string) (lipgloss.Border, bool) {
	switch strings.ToLower(name) {
	case "normal":
		return lipgloss.NormalBorder(), true
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "block":
		return lipgloss.BlockBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}

func alignByName(name string) lipgloss.Position {
	switch strings.ToLower(name) {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func String(v string) *string { return &v }
func Bool(v bool) *bool       { return &v }
func Int(v int) *int          { return &v }
