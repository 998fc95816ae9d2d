// Package testing provides deterministic test support for the a11y
// toolkit: a manual scheduler for announcement-expiry tests and tree
// fixtures shared by package tests.
//
// Import it with an alias to avoid clashing with the standard library:
//
//	a11ytest "github.com/go-drift/a11y/pkg/testing"
//
//	func TestExpiry(t *testing.T) {
//	    sched := a11ytest.NewManualScheduler()
//	    router := announce.NewRouter(polite, assertive, announce.Options{
//	        Scheduler: sched,
//	    })
//	    router.Announce("Saved", announce.Polite)
//	    sched.Advance(5 * time.Second)
//	    // polite channel is clear again
//	}
package testing
