package testing

import "github.com/go-drift/a11y/pkg/tree"

// NewFormDocument returns a document whose body holds a small form in
// reading order: a name field, a notes field, a save button, and a
// disabled delete button. Package tests share this shape.
func NewFormDocument() (*tree.Document, *tree.Node) {
	doc := tree.NewDocument()
	form := &tree.Node{Role: tree.RoleRegion, Label: "form"}
	form.Append(
		&tree.Node{Role: tree.RoleTextField, Label: "Name"},
		&tree.Node{Role: tree.RoleTextField, Label: "Notes"},
		&tree.Node{Role: tree.RoleButton, Label: "Save"},
		&tree.Node{Role: tree.RoleButton, Label: "Delete", Disabled: true},
	)
	doc.Body().Append(form)
	return doc, form
}

// NewDialogNode returns a detached dialog container holding the given
// children.
func NewDialogNode(label string, children ...*tree.Node) *tree.Node {
	d := &tree.Node{Role: tree.RoleDialog, Label: label}
	d.Append(children...)
	return d
}

// ByLabel returns the first node under root with the given label, in
// reading order, or nil.
func ByLabel(root *tree.Node, label string) *tree.Node {
	var found *tree.Node
	root.Walk(func(n *tree.Node) bool {
		if n.Label == label {
			found = n
			return false
		}
		return true
	})
	return found
}
