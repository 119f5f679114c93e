package overlay

import (
	"log/slog"
	"slices"

	"github.com/Kavantix/tuimodal/internal/dom"
	"github.com/Kavantix/tuimodal/internal/style"
	zone "github.com/lrstanley/bubblezone"
)

// Manager is the registry of open layers. It owns the scroll lock: the
// document overflow is hidden exactly while the registry is non-empty, and
// the overflow seen when the first layer opened is put back when the last
// one closes.
type Manager struct {
	doc    *dom.Document
	zones  *zone.Manager
	sheet  *style.Sheet
	layers []Layer
	saved  dom.Overflow
}

// NewManager creates a registry for doc. zones may be nil, in which case
// buttons are rendered without click zones.
func NewManager(doc *dom.Document, zones *zone.Manager, sheet *style.Sheet) *Manager {
	if sheet == nil {
		sheet = style.Default()
	}
	return &Manager{
		doc:   doc,
		zones: zones,
		sheet: sheet,
	}
}

func (m *Manager) Document() *dom.Document {
	return m.doc
}

func (m *Manager) Zones() *zone.Manager {
	return m.zones
}

func (m *Manager) Sheet() *style.Sheet {
	return m.sheet
}

func (m *Manager) SetSheet(sheet *style.Sheet) {
	if sheet != nil {
		m.sheet = sheet
	}
}

// Register attaches the layer's container to the body and puts it on top of
// the stack. A layer that is already registered is moved to the top.
func (m *Manager) Register(l Layer) {
	if i := m.index(l); i >= 0 {
		m.layers = slices.Delete(m.layers, i, i+1)
	} else if len(m.layers) == 0 {
		m.saved = m.doc.Overflow()
	}
	m.layers = append(m.layers, l)
	m.doc.Body.Append(l.Node())
	m.doc.SetOverflow(dom.OverflowHidden)
	slog.Debug("Layer registered", slog.Int("open", len(m.layers)))
}

// Unregister detaches the layer. It reports false when the layer was not
// open, which leaves everything untouched.
func (m *Manager) Unregister(l Layer) bool {
	i := m.index(l)
	if i < 0 {
		return false
	}
	m.layers = slices.Delete(m.layers, i, i+1)
	if node := l.Node(); node != nil {
		node.Remove()
	}
	if len(m.layers) == 0 {
		m.doc.SetOverflow(m.saved)
		slog.Debug("Scroll lock released", slog.String("overflow", string(m.saved)))
	}
	return true
}

func (m *Manager) Contains(l Layer) bool {
	return m.index(l) >= 0
}

func (m *Manager) Len() int {
	return len(m.layers)
}

func (m *Manager) Open() bool {
	return len(m.layers) > 0
}

func (m *Manager) ScrollLocked() bool {
	return m.Open()
}

// Top returns the layer receiving input, or nil.
func (m *Manager) Top() Layer {
	if len(m.layers) == 0 {
		return nil
	}
	return m.layers[len(m.layers)-1]
}

// Layers returns the open layers bottom to top.
func (m *Manager) Layers() []Layer {
	return slices.Clone(m.layers)
}

// Composite draws every open layer over bg, bottom layer first.
func (m *Manager) Composite(bg string, width, height int) string {
	for _, l := range m.Layers() {
		bg = l.Composite(bg, width, height)
	}
	return bg
}

func (m *Manager) index(l Layer) int {
	return slices.Index(m.layers, l)
}
