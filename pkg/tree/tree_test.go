package tree

import "testing"

// TestNode_AppendWalk verifies reading-order traversal of an appended tree.
func TestNode_AppendWalk(t *testing.T) {
	root := &Node{Role: RoleRegion, Label: "root"}
	a := &Node{Label: "a"}
	b := &Node{Label: "b"}
	b1 := &Node{Label: "b1"}
	b.Append(b1)
	root.Append(a, b)

	var order []string
	root.Walk(func(n *Node) bool {
		order = append(order, n.Label)
		return true
	})

	want := []string{"root", "a", "b", "b1"}
	if len(order) != len(want) {
		t.Fatalf("expected %d nodes, got %d (%v)", len(want), len(order), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], order[i])
		}
	}
}

// TestNode_AppendMoves verifies appending a parented node reparents it.
func TestNode_AppendMoves(t *testing.T) {
	first := &Node{Label: "first"}
	second := &Node{Label: "second"}
	child := &Node{Label: "child"}

	first.Append(child)
	second.Append(child)

	if len(first.Children()) != 0 {
		t.Errorf("expected child detached from first parent, got %d children", len(first.Children()))
	}
	if child.Parent() != second {
		t.Error("expected child reparented to second")
	}
}

// TestDocument_Focus verifies focus moves and change callbacks fire in order.
func TestDocument_Focus(t *testing.T) {
	doc := NewDocument()
	var events []string
	a := &Node{Role: RoleButton, Label: "a", OnFocusChange: func(has bool) {
		events = append(events, "a:"+boolStr(has))
	}}
	b := &Node{Role: RoleButton, Label: "b", OnFocusChange: func(has bool) {
		events = append(events, "b:"+boolStr(has))
	}}
	doc.Body().Append(a, b)

	if !doc.Focus(a) {
		t.Fatal("expected focus on a to succeed")
	}
	if !doc.Focus(b) {
		t.Fatal("expected focus on b to succeed")
	}
	if doc.Focused() != b {
		t.Error("expected b to hold focus")
	}

	want := []string{"a:true", "a:false", "b:true"}
	if len(events) != len(want) {
		t.Fatalf("expected events %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: expected %q, got %q", i, want[i], events[i])
		}
	}
}

// TestDocument_FocusDetached verifies focus is refused for detached nodes.
func TestDocument_FocusDetached(t *testing.T) {
	doc := NewDocument()
	loose := &Node{Role: RoleButton, Label: "loose"}

	if doc.Focus(loose) {
		t.Error("expected focus on a detached node to be refused")
	}
	if doc.Focus(nil) {
		t.Error("expected focus on nil to be refused")
	}
	if doc.Focused() != nil {
		t.Errorf("expected no focus holder, got %v", doc.Focused().Label)
	}
}

// TestDocument_RemoveClearsFocus verifies removing a focused subtree
// clears document focus.
func TestDocument_RemoveClearsFocus(t *testing.T) {
	doc := NewDocument()
	group := &Node{Role: RoleRegion, Label: "group"}
	button := &Node{Role: RoleButton, Label: "button"}
	group.Append(button)
	doc.Body().Append(group)

	doc.Focus(button)
	doc.Remove(group)

	if doc.Focused() != nil {
		t.Error("expected focus cleared after removing the focused subtree")
	}
	if doc.Contains(button) {
		t.Error("expected removed subtree to be detached")
	}
}

// TestDocument_SkipToMain verifies the skip-to-content jump.
func TestDocument_SkipToMain(t *testing.T) {
	doc := NewDocument()

	if doc.SkipToMain() {
		t.Error("expected SkipToMain to fail without a main landmark")
	}

	main := &Node{Role: RoleRegion, Label: "main"}
	doc.Body().Append(main)
	doc.SetMain(main)

	if !doc.SkipToMain() {
		t.Fatal("expected SkipToMain to succeed")
	}
	if doc.Focused() != main {
		t.Error("expected focus on the main landmark")
	}
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
