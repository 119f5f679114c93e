// Package dom is a small element tree the modal widgets build their
// structure in. Rendering walks the tree and resolves class names against a
// style sheet, so the class layout is the styling and testing contract.
package dom

// Overflow mirrors the page level overflow style. The zero value is the
// page default, which lets the background scroll.
type Overflow string

const (
	OverflowDefault Overflow = ""
	OverflowAuto    Overflow = "auto"
	OverflowHidden  Overflow = "hidden"
)

type Document struct {
	Body     *Element
	overflow Overflow
}

func NewDocument() *Document {
	return &Document{Body: New("body")}
}

func (d *Document) Overflow() Overflow {
	return d.overflow
}

func (d *Document) SetOverflow(overflow Overflow) {
	d.overflow = overflow
}

// QueryAll returns every element under the body carrying class.
func (d *Document) QueryAll(class string) []*Element {
	return d.Body.Find(class)
}

// Attached reports whether e is currently part of the document.
func (d *Document) Attached(e *Element) bool {
	return e != nil && d.Body.Contains(e)
}
