package focus

import (
	a11yerrors "github.com/go-drift/a11y/pkg/errors"
	"github.com/go-drift/a11y/pkg/tree"
)

// Register tracks the single active trap session. Only one trap may be
// live at a time; nested or stacked dialogs are not supported. The
// register starts empty and is cleared again when the active trap is
// released.
type Register struct {
	active *Trap
}

// NewRegister creates an empty trap register. Hosts that embed the
// toolkit once can use [DefaultRegister] instead.
func NewRegister() *Register {
	return &Register{}
}

var defaultRegister = NewRegister()

// DefaultRegister returns the process-wide trap register.
func DefaultRegister() *Register {
	return defaultRegister
}

// Activate scans container for its focusable element set and opens a
// trap session over it.
//
// It fails with a KindEmptyTrap error when the set is empty: a dialog
// with no focusable descendant is a caller defect and must not silently
// no-op. It fails with KindTrapActive when another session is live.
// Activation performs no focus change; the dialog lifecycle moves focus
// once the trap is established.
//
// The returned Trap is a subscription object: every successful Activate
// must be paired with [Trap.Release] on all exit paths.
func (r *Register) Activate(doc *tree.Document, container *tree.Node) (*Trap, error) {
	const op = "focus.Register.Activate"
	if doc == nil {
		return nil, a11yerrors.Newf(op, a11yerrors.KindUnknown,
			"activation requires a document")
	}
	if r.active != nil {
		return nil, a11yerrors.Newf(op, a11yerrors.KindTrapActive,
			"trap already active on container %q", r.active.container.Label)
	}
	set := Collect(container)
	if len(set) == 0 {
		label := ""
		if container != nil {
			label = container.Label
		}
		return nil, a11yerrors.Newf(op, a11yerrors.KindEmptyTrap,
			"container %q has no focusable descendants", label)
	}
	t := &Trap{doc: doc, container: container, register: r}
	r.active = t
	return t, nil
}

// Active returns the live trap session, or nil.
func (r *Register) Active() *Trap {
	return r.active
}

// Trap is one focus-trap session: keyboard traversal is confined to the
// focusable element set of a single container until released.
//
// The set is re-collected on every key event, so containers whose
// content changes while trapped stay correct.
type Trap struct {
	doc       *tree.Document
	container *tree.Node
	register  *Register
	released  bool
}

// HandleKey processes one keyboard event for the session. Only Tab is
// intercepted; every other key is ignored and passes through to the
// host untouched.
//
// Forward Tab on the last set element wraps focus to the first, and
// Shift+Tab on the first wraps to the last. Interior Tab moves one
// element through the set in reading order. Focus that has somehow
// settled outside the set is pulled back to the boundary element, since
// focus must never rest outside an active trap. Each handled event
// causes exactly one focus move.
func (t *Trap) HandleKey(ev KeyEvent) KeyEventResult {
	if t.Released() || ev.Key != KeyTab {
		return KeyEventIgnored
	}
	set := Collect(t.container)
	if len(set) == 0 {
		return KeyEventIgnored
	}

	current := indexOf(set, t.doc.Focused())
	var next *tree.Node
	if ev.Shift {
		if current <= 0 {
			next = set[len(set)-1]
		} else {
			next = set[current-1]
		}
	} else {
		if current < 0 || current == len(set)-1 {
			next = set[0]
		} else {
			next = set[current+1]
		}
	}
	t.doc.Focus(next)
	return KeyEventHandled
}

// Container returns the trapped container.
func (t *Trap) Container() *tree.Node {
	return t.container
}

// First returns the first element of the current focusable set.
func (t *Trap) First() *tree.Node {
	set := Collect(t.container)
	if len(set) == 0 {
		return nil
	}
	return set[0]
}

// Last returns the last element of the current focusable set.
func (t *Trap) Last() *tree.Node {
	set := Collect(t.container)
	if len(set) == 0 {
		return nil
	}
	return set[len(set)-1]
}

// Released reports whether the session has been torn down.
func (t *Trap) Released() bool {
	return t == nil || t.released
}

// Release tears the session down and clears the register. Idempotent:
// releasing an already-released trap is a no-op, not an error.
func (t *Trap) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	if t.register != nil && t.register.active == t {
		t.register.active = nil
	}
}
