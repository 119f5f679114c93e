package overlay

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charmansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

type whitespace struct {
	style termenv.Style
	chars string
}

func (w whitespace) render(width int) string {
	if w.chars == "" {
		w.chars = " "
	}

	r := []rune(w.chars)
	j := 0
	b := strings.Builder{}

	for i := 0; i < width; {
		b.WriteRune(r[j])
		i += ansi.PrintableRuneWidth(string(r[j]))
		j++
		if j >= len(r) {
			j = 0
		}
	}

	// the last rune may have been wide enough to leave a gap
	short := width - ansi.PrintableRuneWidth(b.String())
	if short > 0 {
		b.WriteString(strings.Repeat(" ", short))
	}

	return w.style.Styled(b.String())
}

type WhitespaceOption func(*whitespace)

func WithWhitespaceChars(s string) WhitespaceOption {
	return func(w *whitespace) {
		w.chars = s
	}
}

func WithWhitespaceStyle(s termenv.Style) WhitespaceOption {
	return func(w *whitespace) {
		w.style = s
	}
}

// Place draws fg over bg with its top left corner at x, y. Both may contain
// ANSI sequences. The position is clamped so fg stays inside bg; when fg is
// at least as large as bg in both directions fg is returned as is.
func Place(x, y int, fg, bg string, shadow bool, opts ...WhitespaceOption) string {
	fgLines, fgWidth := getLines(fg)
	bgLines, bgWidth := getLines(bg)
	bgHeight := len(bgLines)
	fgHeight := len(fgLines)

	if shadow {
		shadowChar := lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Render("░")
		var shadowBg strings.Builder
		for i := 0; i <= fgHeight; i++ {
			if i == 0 {
				shadowBg.WriteString(" " + strings.Repeat(" ", fgWidth) + "\n")
			} else {
				shadowBg.WriteString(" " + strings.Repeat(shadowChar, fgWidth) + "\n")
			}
		}
		fg = Place(0, 0, fg, shadowBg.String(), false, opts...)
		fgLines, fgWidth = getLines(fg)
		fgHeight = len(fgLines)
	}

	if fgWidth >= bgWidth && fgHeight >= bgHeight {
		return fg
	}

	x = clamp(x, 0, bgWidth-fgWidth)
	y = clamp(y, 0, bgHeight-fgHeight)

	ws := &whitespace{}
	for _, opt := range opts {
		opt(ws)
	}

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := truncate.String(bgLine, uint(x))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(ws.render(x - pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		right := cutLeft(bgLine, pos)
		bgLineWidth := ansi.PrintableRuneWidth(bgLine)
		rightWidth := ansi.PrintableRuneWidth(right)
		if rightWidth <= bgLineWidth-pos {
			b.WriteString(ws.render(bgLineWidth - rightWidth - pos))
		}
		b.WriteString(right)
	}

	return b.String()
}

// Center places fg in the middle of bg.
func Center(fg, bg string, opts ...WhitespaceOption) string {
	_, fgWidth := getLines(fg)
	_, bgWidth := getLines(bg)
	x := (bgWidth - fgWidth) / 2
	y := (lipgloss.Height(bg) - lipgloss.Height(fg)) / 2
	return Place(x, y, fg, bg, false, opts...)
}

// Dim fits bg to width by height, strips its styling so inner colors cannot
// override the scrim, and renders it with st.
func Dim(bg string, width, height int, st lipgloss.Style) string {
	plain := charmansi.Strip(bg)
	plain = lipgloss.NewStyle().
		Width(width).MaxWidth(width).
		Height(height).MaxHeight(height).
		Render(plain)
	lines := strings.Split(plain, "\n")
	for i, line := range lines {
		lines[i] = st.Render(line)
	}
	return strings.Join(lines, "\n")
}

// cutLeft drops the first cutWidth printable cells of s, keeping the ANSI
// state that was active at the cut.
func cutLeft(s string, cutWidth int) string {
	var (
		pos     int
		inAnsi  bool
		started bool
		pending bytes.Buffer
		b       bytes.Buffer
	)
	for _, c := range s {
		if c == ansi.Marker || inAnsi {
			inAnsi = !ansi.IsTerminator(c)
			if started {
				b.WriteRune(c)
				continue
			}
			pending.WriteRune(c)
			if !inAnsi && bytes.HasSuffix(pending.Bytes(), []byte("[0m")) {
				pending.Reset()
			}
			continue
		}

		w := runewidth.RuneWidth(c)
		if pos >= cutWidth {
			if !started {
				started = true
				b.Write(pending.Bytes())
				// a wide rune split by the cut leaves a gap
				b.WriteString(strings.Repeat(" ", pos-cutWidth))
			}
			b.WriteRune(c)
		}
		pos += w
	}
	return b.String()
}

func getLines(s string) (lines []string, widest int) {
	lines = strings.Split(s, "\n")
	for _, l := range lines {
		w := ansi.PrintableRuneWidth(l)
		if widest < w {
			widest = w
		}
	}
	return lines, widest
}

func clamp(v, lower, upper int) int {
	return max(min(v, upper), lower)
}
