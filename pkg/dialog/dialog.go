// Package dialog manages the modal dialog lifecycle: focus trapping
// while open, and focus restoration on close.
package dialog

import (
	a11yerrors "github.com/go-drift/a11y/pkg/errors"
	"github.com/go-drift/a11y/pkg/focus"
	"github.com/go-drift/a11y/pkg/tree"
)

// Phase is the lifecycle phase of a dialog.
type Phase int

const (
	// PhaseClosed is the resting phase; no trap session exists.
	PhaseClosed Phase = iota

	// PhaseOpening means the open was requested and the return target
	// recorded, but the dialog is not yet present.
	PhaseOpening

	// PhaseOpen means the dialog is present with an active trap session.
	PhaseOpen

	// PhaseClosing means dismissal was requested but the dialog is not
	// yet fully hidden.
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Options configures a dialog [Controller].
type Options struct {
	// Persistent prevents Escape and the backdrop from dismissing the
	// dialog. The user must make an explicit in-dialog choice. Default
	// is false (dismissible).
	Persistent bool

	// SkipInitialFocus leaves document focus untouched when the dialog
	// opens instead of moving it to the first trapped element. The trap
	// pulls focus inside on the first Tab either way.
	SkipInitialFocus bool

	// Register overrides the process-wide trap register. Nil uses
	// [focus.DefaultRegister].
	Register *focus.Register
}

// event drives the lifecycle state machine.
type event int

const (
	// eventShow requests the open; the return target is recorded here.
	eventShow event = iota
	// eventShown fires when the dialog is present in the document.
	eventShown
	// eventDismiss requests the close.
	eventDismiss
	// eventHidden fires when the dialog is fully hidden.
	eventHidden
)

// Controller runs one dialog through Closed → Opening → Open → Closing
// → Closed cycles. Transitions are driven by an internal event queue so
// the lifecycle is testable without a renderer.
//
// A controller owns at most one trap session at a time and never shares
// it: opening a second dialog while one is open fails with a
// KindTrapActive error from the register.
type Controller struct {
	doc       *tree.Document
	container *tree.Node
	opts      Options

	phase        Phase
	returnTarget *tree.Node
	trap         *focus.Trap

	queue    []event
	draining bool
	openErr  error
}

// NewController creates a controller for the dialog container. The
// container is typically a [tree.RoleDialog] node already attached to
// the document.
func NewController(doc *tree.Document, container *tree.Node, opts Options) *Controller {
	if opts.Register == nil {
		opts.Register = focus.DefaultRegister()
	}
	return &Controller{doc: doc, container: container, opts: opts}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// ReturnTarget returns the element focus will be restored to on close,
// or nil outside an open cycle.
func (c *Controller) ReturnTarget() *tree.Node {
	return c.returnTarget
}

// Open drives Closed → Opening → Open: it records the current focus
// holder as the return target, activates the focus trap, and moves
// focus to the first trapped element.
//
// Open fails with a KindEmptyTrap error when the container has no
// focusable descendant — the dialog must not silently appear unfocused
// — and with KindTrapActive when another dialog holds the trap. On
// failure the controller returns to Closed and no focus change occurs.
func (c *Controller) Open() error {
	const op = "dialog.Controller.Open"
	if c.phase != PhaseClosed {
		return a11yerrors.Newf(op, a11yerrors.KindLifecycle,
			"cannot open from phase %s", c.phase)
	}
	c.openErr = nil
	c.dispatch(eventShow, eventShown)
	return c.openErr
}

// Dismiss drives Open → Closing → Closed: it releases the trap session
// and restores focus to the return target, falling back to the body
// landmark when the target has left the document. Dismiss is the
// explicit in-dialog choice and works on persistent dialogs too.
// Reports whether a transition happened; dismissing a dialog that is
// not open is a no-op.
func (c *Controller) Dismiss() bool {
	if c.phase != PhaseOpen {
		return false
	}
	c.dispatch(eventDismiss, eventHidden)
	return true
}

// DismissFromBarrier dismisses in response to a backdrop action,
// honoring Persistent. Reports whether the dialog was dismissed.
func (c *Controller) DismissFromBarrier() bool {
	if c.opts.Persistent {
		return false
	}
	return c.Dismiss()
}

// HandleKey routes one keyboard event while the dialog is open. Escape
// dismisses unless the dialog is persistent; Tab traversal goes to the
// trap session; everything else passes through untouched.
func (c *Controller) HandleKey(ev focus.KeyEvent) focus.KeyEventResult {
	if c.phase != PhaseOpen {
		return focus.KeyEventIgnored
	}
	if ev.Key == focus.KeyEscape {
		if c.opts.Persistent {
			return focus.KeyEventIgnored
		}
		c.Dismiss()
		return focus.KeyEventHandled
	}
	if c.trap != nil {
		return c.trap.HandleKey(ev)
	}
	return focus.KeyEventIgnored
}

// dispatch queues events and drains them in order. Events dispatched
// from inside apply (e.g. focus callbacks reentering) run after the
// current one completes.
func (c *Controller) dispatch(events ...event) {
	c.queue = append(c.queue, events...)
	if c.draining {
		return
	}
	c.draining = true
	defer func() { c.draining = false }()
	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.applyRecovering(next)
	}
}

// applyRecovering applies one transition, converting a panicking host
// callback (focus-change handlers fire during transitions) into a
// reported PanicError. A panic aborts only the current transition;
// queued events still run, so a misbehaving host never crashes the
// lifecycle.
func (c *Controller) applyRecovering(ev event) {
	defer a11yerrors.Recover("dialog.Controller.dispatch")
	c.apply(ev)
}

// apply performs one state-machine transition. Events that do not match
// the current phase are dropped.
func (c *Controller) apply(ev event) {
	switch c.phase {
	case PhaseClosed:
		if ev == eventShow {
			c.returnTarget = c.doc.Focused()
			c.phase = PhaseOpening
		}
	case PhaseOpening:
		if ev == eventShown {
			trap, err := c.opts.Register.Activate(c.doc, c.container)
			if err != nil {
				c.openErr = err
				c.returnTarget = nil
				c.phase = PhaseClosed
				return
			}
			c.trap = trap
			c.phase = PhaseOpen
			if !c.opts.SkipInitialFocus {
				c.doc.Focus(trap.First())
			}
		}
	case PhaseOpen:
		if ev == eventDismiss {
			c.phase = PhaseClosing
		}
	case PhaseClosing:
		if ev == eventHidden {
			c.trap.Release()
			c.trap = nil
			c.restoreFocus()
			c.returnTarget = nil
			c.phase = PhaseClosed
		}
	}
}

// restoreFocus returns focus to the recorded target. A target that left
// the document during the open cycle is a degraded path: the warning is
// reported and focus lands on the body landmark, never nowhere.
func (c *Controller) restoreFocus() {
	target := c.returnTarget
	if target == nil {
		c.doc.Focus(c.doc.Body())
		return
	}
	if c.doc.Contains(target) {
		c.doc.Focus(target)
		return
	}
	a11yerrors.ReportWarning(&a11yerrors.Warning{
		Op:     "dialog.Controller.Dismiss",
		Kind:   a11yerrors.KindMissingReturnTarget,
		Detail: "return target left the document; focusing body landmark",
	})
	c.doc.Focus(c.doc.Body())
}
