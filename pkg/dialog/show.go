package dialog

import (
	"sync"

	"github.com/go-drift/a11y/pkg/tree"
)

// Show opens a modal dialog over doc and returns its controller along
// with a dismiss function.
//
// The returned dismiss function is idempotent: calling it more than
// once is a safe no-op. Capture it where the dialog is opened (a
// gesture handler, a command) so every open has a matching teardown.
//
// Show fails with the [Controller.Open] errors; on failure the returned
// dismiss function is a no-op and no entries change.
//
// Example:
//
//	confirm := &tree.Node{Role: tree.RoleDialog, Label: "Confirm delete"}
//	confirm.Append(
//	    &tree.Node{Role: tree.RoleButton, Label: "Cancel"},
//	    &tree.Node{Role: tree.RoleButton, Label: "Delete"},
//	)
//	doc.Body().Append(confirm)
//
//	ctrl, dismiss, err := dialog.Show(doc, confirm, dialog.Options{})
//	if err != nil {
//	    // confirm had no focusable children, or another dialog is open
//	}
//	defer dismiss()
func Show(doc *tree.Document, container *tree.Node, opts Options) (*Controller, func(), error) {
	c := NewController(doc, container, opts)
	if err := c.Open(); err != nil {
		return nil, func() {}, err
	}

	var once sync.Once
	dismiss := func() {
		once.Do(func() {
			c.Dismiss()
		})
	}
	return c, dismiss, nil
}
