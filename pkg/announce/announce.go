// Package announce routes status and error messages into live regions
// for assistive technology.
//
// A [Router] owns two long-lived channel nodes, one per politeness.
// Each channel holds at most one message: a newer announcement replaces
// the visible one atomically, and an expiry timer clears the text after
// a fixed duration without touching the channel's live configuration.
package announce

import (
	"sync"
	"time"

	a11yerrors "github.com/go-drift/a11y/pkg/errors"
	"github.com/go-drift/a11y/pkg/tree"
)

// Politeness indicates the urgency of an accessibility announcement.
type Politeness int

const (
	// Polite is for non-urgent announcements that wait until the user
	// is idle.
	Polite Politeness = iota

	// Assertive is for important announcements that interrupt
	// immediately.
	Assertive
)

func (p Politeness) String() string {
	switch p {
	case Assertive:
		return "assertive"
	default:
		return "polite"
	}
}

// DefaultExpiry is how long a committed announcement stays visible
// before the router clears it.
const DefaultExpiry = 5 * time.Second

// Scheduler arms cancellable timers for announcement expiry. The real
// scheduler is backed by [time.AfterFunc]; tests substitute a manual
// one.
type Scheduler interface {
	// Schedule runs fn after d. The returned cancel function stops a
	// timer that has not fired yet; cancellation is silent and carries
	// no error.
	Schedule(d time.Duration, fn func()) (cancel func())
}

// timerScheduler is the real-time Scheduler.
type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Options configures a [Router]. The zero value uses [DefaultExpiry]
// and real timers.
type Options struct {
	// Expiry overrides DefaultExpiry when positive.
	Expiry time.Duration

	// Scheduler overrides the real-time scheduler, for tests.
	Scheduler Scheduler
}

// channel is the mutable state of one live region.
type channel struct {
	node       *tree.Node
	cancel     func()
	generation uint64
}

// Router writes announcements into the live channel matching their
// politeness. Safe for use from timer callbacks; a mutex serializes the
// expiry goroutine with callers.
type Router struct {
	mu       sync.Mutex
	expiry   time.Duration
	sched    Scheduler
	channels [2]channel
}

// NewRouter wires a router to its two channel nodes. The host creates
// the nodes once at startup, attaches them to its document, and passes
// them in; nil nodes get detached placeholders so the router never
// drops a message.
//
// Each node's role and live mode are configured for its severity here
// and never change afterward: expiry and replacement only touch the
// node's text.
func NewRouter(polite, assertive *tree.Node, opts Options) *Router {
	if polite == nil {
		polite = &tree.Node{}
	}
	if assertive == nil {
		assertive = &tree.Node{}
	}
	polite.Role = tree.RoleStatus
	polite.Live = tree.LivePolite
	assertive.Role = tree.RoleAlert
	assertive.Live = tree.LiveAssertive

	expiry := opts.Expiry
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = timerScheduler{}
	}

	r := &Router{expiry: expiry, sched: sched}
	r.channels[Polite].node = polite
	r.channels[Assertive].node = assertive
	return r
}

// Announce commits message into the channel matching politeness.
//
// The message is written into the channel node before Announce returns,
// since assistive technology only observes committed tree mutations.
// Any message still visible in that channel is replaced, its pending
// expiry is cancelled, and a fresh expiry timer is armed; only the most
// recent message per channel is ever live. The two channels are
// independent.
//
// A politeness outside polite/assertive is a caller defect and returns
// a KindInvalidSeverity error without touching either channel.
func (r *Router) Announce(message string, politeness Politeness) error {
	const op = "announce.Router.Announce"
	if politeness != Polite && politeness != Assertive {
		return a11yerrors.Newf(op, a11yerrors.KindInvalidSeverity,
			"politeness %d is not polite or assertive", int(politeness))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ch := &r.channels[politeness]
	if ch.cancel != nil {
		ch.cancel()
		ch.cancel = nil
	}
	ch.generation++
	gen := ch.generation
	ch.node.Text = message
	ch.cancel = r.sched.Schedule(r.expiry, func() {
		// The real scheduler fires on a timer goroutine; a panic there
		// would kill the host process rather than one operation.
		defer a11yerrors.Recover("announce.Router.expire")
		r.expire(politeness, gen)
	})
	return nil
}

// Message returns the message currently visible in the politeness
// channel, or empty when none is live.
func (r *Router) Message(politeness Politeness) string {
	if politeness != Polite && politeness != Assertive {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.channels[politeness].node.Text
}

// expire clears the channel's text if the message that armed the timer
// is still the live one. A stale timer that lost the race with a newer
// Announce is a silent no-op; the newer message must never be cleared
// early.
func (r *Router) expire(politeness Politeness, generation uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := &r.channels[politeness]
	if ch.generation != generation {
		return
	}
	ch.node.Text = ""
	ch.cancel = nil
}
