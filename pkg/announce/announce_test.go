package announce

import (
	"testing"
	"time"

	a11yerrors "github.com/go-drift/a11y/pkg/errors"
	a11ytest "github.com/go-drift/a11y/pkg/testing"
	"github.com/go-drift/a11y/pkg/tree"
)

func newTestRouter() (*Router, *tree.Node, *tree.Node, *a11ytest.ManualScheduler) {
	doc := tree.NewDocument()
	polite := &tree.Node{Label: "status"}
	assertive := &tree.Node{Label: "alerts"}
	doc.Body().Append(polite, assertive)

	sched := a11ytest.NewManualScheduler()
	router := NewRouter(polite, assertive, Options{Scheduler: sched})
	return router, polite, assertive, sched
}

// TestNewRouter_ChannelConfiguration verifies the channel nodes get
// severity-appropriate roles and live modes up front.
func TestNewRouter_ChannelConfiguration(t *testing.T) {
	_, polite, assertive, _ := newTestRouter()

	if polite.Role != tree.RoleStatus || polite.Live != tree.LivePolite {
		t.Errorf("polite channel: expected status/polite, got %v/%v", polite.Role, polite.Live)
	}
	if assertive.Role != tree.RoleAlert || assertive.Live != tree.LiveAssertive {
		t.Errorf("assertive channel: expected alert/assertive, got %v/%v", assertive.Role, assertive.Live)
	}
}

// TestRouter_CommitBeforeReturn verifies the message is in the tree when
// Announce returns.
func TestRouter_CommitBeforeReturn(t *testing.T) {
	router, polite, _, _ := newTestRouter()

	if err := router.Announce("Saved", Polite); err != nil {
		t.Fatalf("announce: %v", err)
	}
	if polite.Text != "Saved" {
		t.Errorf("expected committed text %q, got %q", "Saved", polite.Text)
	}
}

// TestRouter_IndependentChannels verifies polite and assertive messages
// coexist and expire independently.
func TestRouter_IndependentChannels(t *testing.T) {
	router, polite, assertive, sched := newTestRouter()

	router.Announce("Guardado", Polite)
	sched.Advance(2 * time.Second)
	router.Announce("Error", Assertive)

	if polite.Text != "Guardado" || assertive.Text != "Error" {
		t.Fatalf("expected both channels live, got %q / %q", polite.Text, assertive.Text)
	}

	// Polite expires 5s after its own call; assertive holds on.
	sched.Advance(3 * time.Second)
	if polite.Text != "" {
		t.Errorf("expected polite channel cleared, got %q", polite.Text)
	}
	if assertive.Text != "Error" {
		t.Errorf("expected assertive channel still live, got %q", assertive.Text)
	}

	sched.Advance(2 * time.Second)
	if assertive.Text != "" {
		t.Errorf("expected assertive channel cleared, got %q", assertive.Text)
	}
}

// TestRouter_ReplaceRestartsExpiry verifies a newer message replaces the
// visible one and the stale timer never clears it early.
func TestRouter_ReplaceRestartsExpiry(t *testing.T) {
	router, polite, _, sched := newTestRouter()

	router.Announce("first", Polite)
	sched.Advance(4 * time.Second)
	router.Announce("second", Polite)

	if polite.Text != "second" {
		t.Fatalf("expected replacement, got %q", polite.Text)
	}

	// The first message's expiry window passes; the second must survive.
	sched.Advance(2 * time.Second)
	if polite.Text != "second" {
		t.Errorf("stale expiry cleared the live message: got %q", polite.Text)
	}

	sched.Advance(3 * time.Second)
	if polite.Text != "" {
		t.Errorf("expected expiry after the restarted window, got %q", polite.Text)
	}
}

// TestRouter_ExpiryKeepsLiveConfiguration verifies expiry clears text
// without touching the channel's live mode or role.
func TestRouter_ExpiryKeepsLiveConfiguration(t *testing.T) {
	router, polite, _, sched := newTestRouter()

	router.Announce("Saved", Polite)
	sched.Advance(5 * time.Second)

	if polite.Text != "" {
		t.Fatalf("expected cleared text, got %q", polite.Text)
	}
	if polite.Role != tree.RoleStatus || polite.Live != tree.LivePolite {
		t.Errorf("expected live configuration intact, got %v/%v", polite.Role, polite.Live)
	}
}

// TestRouter_InvalidSeverity verifies out-of-range politeness is a
// surfaced caller defect that touches neither channel.
func TestRouter_InvalidSeverity(t *testing.T) {
	router, polite, assertive, _ := newTestRouter()
	router.Announce("existing", Polite)

	err := router.Announce("bad", Politeness(7))
	if !a11yerrors.IsKind(err, a11yerrors.KindInvalidSeverity) {
		t.Errorf("expected KindInvalidSeverity, got %v", err)
	}
	if polite.Text != "existing" || assertive.Text != "" {
		t.Errorf("expected channels untouched, got %q / %q", polite.Text, assertive.Text)
	}
}

// TestRouter_CustomExpiry verifies Options.Expiry overrides the default.
func TestRouter_CustomExpiry(t *testing.T) {
	polite := &tree.Node{}
	sched := a11ytest.NewManualScheduler()
	router := NewRouter(polite, nil, Options{Expiry: time.Second, Scheduler: sched})

	router.Announce("quick", Polite)
	sched.Advance(time.Second)
	if got := router.Message(Polite); got != "" {
		t.Errorf("expected expiry after 1s, got %q", got)
	}
}

// TestRouter_Message verifies the accessor reflects the live channel.
func TestRouter_Message(t *testing.T) {
	router, _, _, _ := newTestRouter()
	router.Announce("hello", Assertive)

	if got := router.Message(Assertive); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
	if got := router.Message(Politeness(-1)); got != "" {
		t.Errorf("expected empty message for invalid politeness, got %q", got)
	}
}
