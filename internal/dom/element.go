package dom

import "slices"

type Element struct {
	tag      string
	classes  []string
	text     string
	data     map[string]string
	parent   *Element
	children []*Element
}

// New creates a detached element with the given classes applied.
// Empty and repeated class names are skipped.
func New(tag string, classes ...string) *Element {
	e := &Element{tag: tag}
	e.AddClass(classes...)
	return e
}

func (e *Element) Tag() string {
	return e.tag
}

func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

func (e *Element) AddClass(classes ...string) *Element {
	for _, class := range classes {
		if class == "" || e.HasClass(class) {
			continue
		}
		e.classes = append(e.classes, class)
	}
	return e
}

func (e *Element) RemoveClass(class string) *Element {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return c == class
	})
	return e
}

func (e *Element) Text() string {
	return e.text
}

func (e *Element) SetText(text string) *Element {
	e.text = text
	return e
}

func (e *Element) Data(key string) (string, bool) {
	value, ok := e.data[key]
	return value, ok
}

func (e *Element) SetData(key, value string) *Element {
	if e.data == nil {
		e.data = map[string]string{}
	}
	e.data[key] = value
	return e
}

// Inline reports whether the element flows horizontally next to its
// siblings instead of starting a new block.
func (e *Element) Inline() bool {
	switch e.tag {
	case "button", "span":
		return true
	default:
		return false
	}
}

func (e *Element) Parent() *Element {
	return e.parent
}

func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// Append attaches children in order, detaching them from any previous
// parent first.
func (e *Element) Append(children ...*Element) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}
		child.Remove()
		child.parent = e
		e.children = append(e.children, child)
	}
	return e
}

// Remove detaches the element from its parent. It reports false when the
// element was not attached.
func (e *Element) Remove() bool {
	if e.parent == nil {
		return false
	}
	parent := e.parent
	e.parent = nil
	i := slices.Index(parent.children, e)
	if i < 0 {
		return false
	}
	parent.children = slices.Delete(parent.children, i, i+1)
	return true
}

// Find returns every descendant carrying class, in document order.
func (e *Element) Find(class string) []*Element {
	var found []*Element
	for _, child := range e.children {
		if child.HasClass(class) {
			found = append(found, child)
		}
		found = append(found, child.Find(class)...)
	}
	return found
}

// First returns the first descendant carrying class, or nil.
func (e *Element) First(class string) *Element {
	for _, child := range e.children {
		if child.HasClass(class) {
			return child
		}
		if found := child.First(class); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}
