// Package focus provides keyboard focus traversal and modal focus
// trapping over a [tree.Document].
package focus

import (
	"sort"

	"github.com/go-drift/a11y/pkg/tree"
)

// Key identifies a logical keyboard key.
type Key int

const (
	// KeyTab is the forward traversal key. Combined with shift it
	// traverses backward.
	KeyTab Key = iota

	// KeyEscape dismisses a dismissible dialog.
	KeyEscape

	// KeyEnter activates the focused control.
	KeyEnter

	// KeySpace toggles or activates the focused control.
	KeySpace
)

// KeyEvent represents a keyboard event delivered to the toolkit.
type KeyEvent struct {
	Key   Key
	Shift bool
}

// KeyEventResult indicates how a key event was handled.
type KeyEventResult int

const (
	// KeyEventIgnored indicates the event was not handled and the host
	// should process it normally.
	KeyEventIgnored KeyEventResult = iota

	// KeyEventHandled indicates the event was consumed, including any
	// focus move it caused.
	KeyEventHandled
)

// CanTakeFocus reports whether a node participates in focus traversal.
// Buttons, text fields, checkboxes, and links with a navigable target
// take focus by role; any other node only with an explicit Focusable
// marker. Disabled nodes never take focus.
func CanTakeFocus(n *tree.Node) bool {
	if n == nil || n.Disabled {
		return false
	}
	switch n.Role {
	case tree.RoleButton, tree.RoleTextField, tree.RoleCheckbox:
		return true
	case tree.RoleLink:
		return n.Target != ""
	}
	return n.Focusable
}

// Collect returns the ordered focusable element set of container.
// Order is reading order, except that nodes with a positive TabOrder
// sort earlier (ascending, stable among equals).
func Collect(container *tree.Node) []*tree.Node {
	if container == nil {
		return nil
	}
	var set []*tree.Node
	container.Walk(func(n *tree.Node) bool {
		if CanTakeFocus(n) {
			set = append(set, n)
		}
		return true
	})
	sort.SliceStable(set, func(i, j int) bool {
		a, b := set[i].TabOrder, set[j].TabOrder
		switch {
		case a > 0 && b > 0:
			return a < b
		case a > 0:
			return true
		default:
			return false
		}
	})
	return set
}

// Move moves document focus by delta positions within container's
// focusable set, wrapping at the boundaries. When nothing in the set
// holds focus, forward movement lands on the first element and backward
// movement on the last. Reports whether focus moved.
func Move(doc *tree.Document, container *tree.Node, delta int) bool {
	set := Collect(container)
	if doc == nil || len(set) == 0 {
		return false
	}
	current := indexOf(set, doc.Focused())
	if current < 0 {
		if delta < 0 {
			return doc.Focus(set[len(set)-1])
		}
		return doc.Focus(set[0])
	}
	return doc.Focus(set[wrapIndex(current+delta, len(set))])
}

// indexOf returns the index of n in set, or -1 if absent.
func indexOf(set []*tree.Node, n *tree.Node) int {
	for i, candidate := range set {
		if candidate == n {
			return i
		}
	}
	return -1
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
