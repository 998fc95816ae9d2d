// Package tree models a headless interface tree: the DOM-equivalent
// surface the a11y toolkit reads focusable elements from and mutates
// when moving focus or committing live announcements.
package tree

// Role classifies what kind of control a node represents.
type Role int

const (
	// RoleGeneric is a non-interactive node with no intrinsic behavior.
	RoleGeneric Role = iota

	// RoleRegion is a grouping landmark (document body, main content).
	RoleRegion

	// RoleButton is an activatable control.
	RoleButton

	// RoleLink is a navigation control. A link only takes focus when it
	// has a navigable Target.
	RoleLink

	// RoleTextField is an editable text control.
	RoleTextField

	// RoleCheckbox is a toggleable control.
	RoleCheckbox

	// RoleDialog is a modal dialog container.
	RoleDialog

	// RoleStatus is a polite live region.
	RoleStatus

	// RoleAlert is an assertive live region.
	RoleAlert
)

func (r Role) String() string {
	switch r {
	case RoleRegion:
		return "region"
	case RoleButton:
		return "button"
	case RoleLink:
		return "link"
	case RoleTextField:
		return "textfield"
	case RoleCheckbox:
		return "checkbox"
	case RoleDialog:
		return "dialog"
	case RoleStatus:
		return "status"
	case RoleAlert:
		return "alert"
	default:
		return "generic"
	}
}

// Liveness is the live-region announcement mode of a node.
type Liveness int

const (
	// LiveOff disables live announcements for the node.
	LiveOff Liveness = iota

	// LivePolite defers announcements until the user is idle.
	LivePolite

	// LiveAssertive interrupts the user immediately.
	LiveAssertive
)

func (l Liveness) String() string {
	switch l {
	case LivePolite:
		return "polite"
	case LiveAssertive:
		return "assertive"
	default:
		return "off"
	}
}

// Node is a single element in the interface tree.
//
// Configure a node with a struct literal and attach it with
// [Node.Append]. The parent/child links are managed by the tree; only
// the semantic fields are exported.
type Node struct {
	// Role classifies the control.
	Role Role

	// Label is the accessible name of the node.
	Label string

	// Text is the node's visible text content. Live regions carry their
	// current announcement here.
	Text string

	// Disabled excludes the node from focus traversal.
	Disabled bool

	// Focusable explicitly marks a node as focusable regardless of role,
	// the equivalent of an explicit non-negative tab-order marker.
	Focusable bool

	// TabOrder pulls the node earlier in traversal when positive. Zero
	// means natural reading order. Traversal order is reading order by
	// default; TabOrder is an opt-in override.
	TabOrder int

	// Target is the navigation destination of a link. Links without a
	// target are not focusable.
	Target string

	// Live is the node's live-region mode.
	Live Liveness

	// OnFocusChange is invoked when the node gains or loses document
	// focus, so hosts can render focus indicators.
	OnFocusChange func(hasFocus bool)

	parent   *Node
	children []*Node
}

// Parent returns the node's parent, or nil for a detached or root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in reading order.
func (n *Node) Children() []*Node {
	return n.children
}

// Append attaches children to the node in reading order and returns the
// node for chaining. Appending a node that already has a parent moves it.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child == nil || child == n {
			continue
		}
		if child.parent != nil {
			child.parent.detach(child)
		}
		child.parent = n
		n.children = append(n.children, child)
	}
	return n
}

// Walk visits the node and its descendants in reading order (pre-order).
// The visit function returns false to stop the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, child := range n.children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// contains reports whether target is n or a descendant of n.
func (n *Node) contains(target *Node) bool {
	found := false
	n.Walk(func(node *Node) bool {
		if node == target {
			found = true
			return false
		}
		return true
	})
	return found
}

// detach removes child from n's child list without touching focus.
func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Document owns an interface tree, its body landmark, and the current
// focus register.
type Document struct {
	root *Node
	body *Node
	main *Node

	focused *Node
}

// NewDocument creates a document with a root node and a body landmark.
func NewDocument() *Document {
	body := &Node{Role: RoleRegion, Label: "body"}
	root := (&Node{Role: RoleRegion, Label: "document"}).Append(body)
	return &Document{root: root, body: body}
}

// Root returns the document root.
func (d *Document) Root() *Node {
	return d.root
}

// Body returns the body landmark, the fallback focus destination.
func (d *Document) Body() *Node {
	return d.body
}

// SetMain designates the main content landmark used by [Document.SkipToMain].
func (d *Document) SetMain(n *Node) {
	d.main = n
}

// Main returns the main content landmark, or nil if none is set.
func (d *Document) Main() *Node {
	return d.main
}

// Contains reports whether n is attached to the document.
func (d *Document) Contains(n *Node) bool {
	if n == nil {
		return false
	}
	return d.root.contains(n)
}

// Focused returns the node holding document focus, or nil.
func (d *Document) Focused() *Node {
	return d.focused
}

// Focus moves document focus to n and reports whether it did. Focus is
// refused for nil or detached nodes. Focus change callbacks fire on the
// node losing focus first, then on the node gaining it.
func (d *Document) Focus(n *Node) bool {
	if n == nil || !d.Contains(n) {
		return false
	}
	if d.focused == n {
		return true
	}
	d.setFocus(n)
	return true
}

// Blur clears document focus.
func (d *Document) Blur() {
	d.setFocus(nil)
}

// SkipToMain moves focus to the main content landmark, the behavior
// behind a skip-to-content link. Reports whether a landmark was focused.
func (d *Document) SkipToMain() bool {
	if d.main == nil {
		return false
	}
	return d.Focus(d.main)
}

// Remove detaches n's subtree from the document. If the subtree holds
// document focus, focus is cleared; dialog teardown then falls back to
// the body landmark.
func (d *Document) Remove(n *Node) {
	if n == nil || n == d.root || n.parent == nil {
		return
	}
	if d.focused != nil && n.contains(d.focused) {
		d.setFocus(nil)
	}
	n.parent.detach(n)
}

func (d *Document) setFocus(n *Node) {
	if d.focused == n {
		return
	}
	old := d.focused
	d.focused = n
	if old != nil && old.OnFocusChange != nil {
		old.OnFocusChange(false)
	}
	if n != nil && n.OnFocusChange != nil {
		n.OnFocusChange(true)
	}
}
