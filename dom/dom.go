package dom

import (
	"slices"

	"github.com/oklog/ulid/v2"
)

// Element is a single node of the document tree: a tag, a class set,
// attributes, inline styles and an ordered list of children. Every element
// has at most one parent; moving an element between containers goes through
// AppendChild, which detaches it from its previous parent first.
type Element struct {
	Tag  string
	Id   ulid.ULID
	Text string

	parent   *Element
	children []*Element
	classes  []string
	attrs    map[string]string
	styles   map[string]string
}

func newElement(tag string, classes ...string) *Element {
	return &Element{
		Tag:     tag,
		Id:      ulid.Make(),
		classes: slices.Clone(classes),
		attrs:   map[string]string{},
		styles:  map[string]string{},
	}
}

func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children in document order.
func (e *Element) Children() []*Element { return e.children }

// AppendChild makes e the parent of child, detaching child from its
// previous parent first. A node is therefore never reachable from two
// containers at once. Appending an element to itself or to one of its
// own descendants is a no-op, so the tree stays acyclic.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child.Contains(e) {
		return
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
}

// Remove detaches the element from its parent. Detached elements are a
// no-op to remove again.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	siblings := e.parent.children
	for i, c := range siblings {
		if c == e {
			e.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	e.parent = nil
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

func (e *Element) AddClass(name string) {
	if !e.HasClass(name) {
		e.classes = append(e.classes, name)
	}
}

func (e *Element) RemoveClass(name string) {
	for i, c := range e.classes {
		if c == name {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

// ToggleClass flips the class and reports whether it is now present.
func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

func (e *Element) Classes() []string { return e.classes }

func (e *Element) Attr(name string) string { return e.attrs[name] }

func (e *Element) SetAttr(name, value string) { e.attrs[name] = value }

func (e *Element) Style(prop string) string { return e.styles[prop] }

func (e *Element) SetStyle(prop, value string) { e.styles[prop] = value }

// Closest walks up from the element itself through its ancestors and
// returns the first one matching the selector, or nil.
func (e *Element) Closest(selector string) *Element {
	sel, err := Compile(selector)
	if err != nil {
		return nil
	}
	for cur := e; cur != nil; cur = cur.parent {
		if sel.Matches(cur) {
			return cur
		}
	}
	return nil
}

// Contains reports whether other is e or a descendant of e.
func (e *Element) Contains(other *Element) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == e {
			return true
		}
	}
	return false
}

// walk visits the element and its descendants depth-first in document
// order until fn returns false.
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// RemoveChildren detaches all children of the element.
func (e *Element) RemoveChildren() {
	for len(e.children) > 0 {
		e.children[len(e.children)-1].Remove()
	}
}

// Document owns a tree of elements rooted at a body element.
type Document struct {
	root *Element
}

func NewDocument() *Document {
	return &Document{root: newElement("body")}
}

func (d *Document) Body() *Element { return d.root }

// CreateElement makes a detached element owned by no container yet.
func (d *Document) CreateElement(tag string, classes ...string) *Element {
	return newElement(tag, classes...)
}

// GetElementByID returns the first attached element whose id attribute
// matches, or nil.
func (d *Document) GetElementByID(id string) *Element {
	var found *Element
	d.root.walk(func(e *Element) bool {
		if e.attrs["id"] == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// Query returns all attached elements matching the compiled selector in
// document order.
func (d *Document) Query(sel Selector) []*Element {
	var out []*Element
	d.root.walk(func(e *Element) bool {
		if sel.Matches(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// FindAll is Query with an inline selector. It panics on a malformed
// selector, so it is meant for package-constant selectors; use Compile
// for anything user supplied.
func (d *Document) FindAll(selector string) []*Element {
	return d.Query(MustCompile(selector))
}
