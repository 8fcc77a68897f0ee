// Package scene is a small retained vector scene graph.
//
// A scene is a tree of Elements. Group elements carry a translation and
// children; Rect, Line, Text and Path elements are leaves. Elements are
// addressed the way a document is: by tag and class, either directly below a
// parent or anywhere below it in document order. Elements are mutated in
// place by their owners between passes; Join binds a list of keys to the
// children of a group so that repeated passes create, keep and remove
// elements by identity instead of rebuilding the tree.
//
// A scene can be serialized to SVG (WriteSVG) or painted onto a gonum
// draw.Canvas (Paint).
package scene

import (
	"image/color"
	"math"
)

// Tag selects the kind of an Element.
type Tag int

const (
	Group Tag = iota
	Rect
	Line
	Text
	Path
)

// String returns the SVG element name of t.
func (t Tag) String() string {
	return []string{"g", "rect", "line", "text", "path"}[int(t)]
}

// Geometry is the positional state of an element. Rect uses X, Y, Width and
// Height; Line uses X1, Y1, X2 and Y2; Text uses X and Y.
type Geometry struct {
	X, Y          float64
	Width, Height float64
	X1, Y1        float64
	X2, Y2        float64
}

// Point is a point in scene coordinates (y grows downwards).
type Point struct {
	X, Y float64
}

// Style is the presentational state of an element. A nil color means the
// attribute is not set.
type Style struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
	Crisp       bool   // shape-rendering: crispEdges
	Anchor      string // text-anchor: "start", "middle" or "end"
	DY          string // text baseline shift, e.g. ".71em"
}

// ClickEvent describes a pointer click delivered to an element.
type ClickEvent struct {
	Ctrl bool
}

// An Element is one node of the scene tree.
type Element struct {
	Tag   Tag
	Class string

	// Key is the join key the element is bound to.
	Key string

	// Owner names the renderer which produced the element's content.
	Owner string

	// TX and TY translate a Group and all of its descendants.
	TX, TY float64

	Geometry
	Style

	Text     string  // content of Text elements
	Points   []Point // polyline of Path elements
	Title    string  // tooltip
	ClipPath string  // e.g. "url(#SetLabelClipPath)"

	// Hidden elements and their descendants are not drawn.
	Hidden bool

	// Animated is set by Animate and cleared by Settle. It marks elements
	// whose last change should be shown as a transition.
	Animated bool

	OnClick func(ev ClickEvent)

	parent   *Element
	children []*Element
}

// New returns an empty root group.
func New() *Element {
	return &Element{Tag: Group}
}

// Append creates a new element with the given tag and class as the last
// child of e and returns it.
func (e *Element) Append(tag Tag, class string) *Element {
	c := &Element{Tag: tag, Class: class, parent: e}
	e.children = append(e.children, c)
	return c
}

// Parent returns the parent of e or nil for a root or detached element.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the children of e in document order. The returned slice
// must not be modified.
func (e *Element) Children() []*Element { return e.children }

// Remove detaches e from its parent.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Clear removes all children of e.
func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

func (e *Element) matches(tag Tag, class string) bool {
	return e.Tag == tag && (class == "" || e.Class == class)
}

// Child returns the first direct child of e with the given tag and class, or
// nil. An empty class matches every class.
func (e *Element) Child(tag Tag, class string) *Element {
	for _, c := range e.children {
		if c.matches(tag, class) {
			return c
		}
	}
	return nil
}

// ChildrenOf returns the direct children of e with the given tag and class.
func (e *Element) ChildrenOf(tag Tag, class string) []*Element {
	var list []*Element
	for _, c := range e.children {
		if c.matches(tag, class) {
			list = append(list, c)
		}
	}
	return list
}

// Select returns the first descendant of e in document order with the given
// tag and class, or nil.
func (e *Element) Select(tag Tag, class string) *Element {
	for _, c := range e.children {
		if c.matches(tag, class) {
			return c
		}
		if d := c.Select(tag, class); d != nil {
			return d
		}
	}
	return nil
}

// SelectAll returns all descendants of e in document order with the given
// tag and class.
func (e *Element) SelectAll(tag Tag, class string) []*Element {
	var list []*Element
	e.Walk(func(d *Element) bool {
		if d != e && d.matches(tag, class) {
			list = append(list, d)
		}
		return true
	})
	return list
}

// RemoveAll removes all descendants of e with the given tag and class and
// reports how many were removed.
func (e *Element) RemoveAll(tag Tag, class string) int {
	list := e.SelectAll(tag, class)
	for _, d := range list {
		d.Remove()
	}
	return len(list)
}

// Walk calls fn for e and its descendants in document order. If fn returns
// false the descendants of that element are skipped.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// Animate applies fn to e and marks e as animated.
func (e *Element) Animate(fn func(*Element)) {
	fn(e)
	e.Animated = true
}

// Settle clears the animation marker of e and all its descendants.
func (e *Element) Settle() {
	e.Walk(func(d *Element) bool {
		d.Animated = false
		return true
	})
}

// Translate sets the translation of e.
func (e *Element) Translate(x, y float64) {
	e.TX, e.TY = x, y
}

// Click delivers ev to the click handler of e, if any.
func (e *Element) Click(ev ClickEvent) {
	if e.OnClick != nil {
		e.OnClick(ev)
	}
}

// Defined reports whether all coordinates used by e's tag are numbers.
func (e *Element) Defined() bool {
	g := e.Geometry
	switch e.Tag {
	case Rect:
		return finite(g.X, g.Y, g.Width, g.Height)
	case Line:
		return finite(g.X1, g.Y1, g.X2, g.Y2)
	case Text:
		return finite(g.X, g.Y)
	case Path:
		for _, p := range e.Points {
			if !finite(p.X, p.Y) {
				return false
			}
		}
	}
	return finite(e.TX, e.TY)
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
