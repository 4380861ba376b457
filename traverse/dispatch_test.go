package traverse

import (
	"errors"
	"testing"
)

// tree is a minimal stand-in AST used to exercise dispatch/visitor control
// flow without depending on ast30/ast31.
type tree struct {
	name     string
	children []*tree
}

func walkTree(path *NodePath, n *tree, v *Visitor) (bool, error) {
	return dispatch(path, "tree", v, func() (bool, error) {
		for i, c := range n.children {
			child := path.CreateChild(c, "tree", "children", i)
			stopped, err := walkTree(child, c, v)
			if err != nil || stopped {
				return true, err
			}
		}
		return false, nil
	})
}

func runTree(root *tree, v *Visitor) ([]string, bool, error) {
	var order []string
	v.EnterAny = func(p *NodePath, node any) (Action, error) {
		order = append(order, node.(*tree).name)
		return Continue, nil
	}
	p := newRootPath(root, "tree")
	stopped, err := walkTree(p, root, v)
	return order, stopped, err
}

func buildSample() *tree {
	return &tree{name: "root", children: []*tree{
		{name: "a", children: []*tree{{name: "a1"}, {name: "a2"}}},
		{name: "b", children: []*tree{{name: "b1"}}},
	}}
}

func TestDispatch_VisitsEveryNodeInOrder(t *testing.T) {
	order, stopped, err := runTree(buildSample(), NewVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stopped {
		t.Fatalf("traversal reported stopped with no Break hook")
	}
	want := []string{"root", "a", "a1", "a2", "b", "b1"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestDispatch_SkipChildrenSkipsOnlyThatSubtree(t *testing.T) {
	v := NewVisitor()
	v.On("tree", func(p *NodePath, node any) (Action, error) {
		if node.(*tree).name == "a" {
			return SkipChildren, nil
		}
		return Continue, nil
	})
	order, _, err := runTree(buildSample(), v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"root", "a", "b", "b1"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestDispatch_SkipChildrenStillRunsLeaveHook(t *testing.T) {
	v := NewVisitor()
	v.On("tree", func(p *NodePath, node any) (Action, error) {
		if node.(*tree).name == "a" {
			return SkipChildren, nil
		}
		return Continue, nil
	})
	var left []string
	v.OnLeave("tree", func(p *NodePath, node any) (Action, error) {
		left = append(left, node.(*tree).name)
		return Continue, nil
	})
	if _, _, err := runTree(buildSample(), v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, name := range left {
		if name == "a" {
			found = true
		}
	}
	if !found {
		t.Fatalf("leave hook for 'a' did not run; left = %v", left)
	}
}

func TestDispatch_BreakStopsImmediatelyAndSkipsAncestorLeave(t *testing.T) {
	v := NewVisitor()
	v.On("tree", func(p *NodePath, node any) (Action, error) {
		if node.(*tree).name == "a1" {
			return Break, nil
		}
		return Continue, nil
	})
	var left []string
	v.OnLeave("tree", func(p *NodePath, node any) (Action, error) {
		left = append(left, node.(*tree).name)
		return Continue, nil
	})
	order, stopped, err := runTree(buildSample(), v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stopped {
		t.Fatalf("expected stopped=true after Break")
	}
	want := []string{"root", "a", "a1"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	if len(left) != 0 {
		t.Fatalf("expected no leave hooks to fire after Break, got %v", left)
	}
}

func TestDispatch_ErrorPropagatesAndStops(t *testing.T) {
	sentinel := errors.New("boom")
	v := NewVisitor()
	v.On("tree", func(p *NodePath, node any) (Action, error) {
		if node.(*tree).name == "a" {
			return Continue, sentinel
		}
		return Continue, nil
	})
	_, stopped, err := runTree(buildSample(), v)
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want %v", err, sentinel)
	}
	if !stopped {
		t.Fatalf("expected stopped=true on error")
	}
}

func TestMergeVisitors_AnyMemberBreakStopsWholeComposite(t *testing.T) {
	var calledA, calledB []string
	va := NewVisitor()
	va.On("tree", func(p *NodePath, node any) (Action, error) {
		name := node.(*tree).name
		calledA = append(calledA, name)
		if name == "a" {
			return Break, nil
		}
		return Continue, nil
	})
	vb := NewVisitor()
	vb.On("tree", func(p *NodePath, node any) (Action, error) {
		calledB = append(calledB, node.(*tree).name)
		return Continue, nil
	})

	merged := MergeVisitors(va, vb)
	root := buildSample()
	p := newRootPath(root, "tree")
	stopped, err := walkTree(p, root, merged)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stopped {
		t.Fatalf("composite should report stopped once any member returns Break")
	}
	want := []string{"root", "a"}
	if len(calledA) != len(want) {
		t.Fatalf("calledA = %v, want %v", calledA, want)
	}
	// va is listed first in MergeVisitors(va, vb): for "a" it returns Break
	// before vb is ever offered that node, so vb only sees "root".
	wantB := []string{"root"}
	if len(calledB) != len(wantB) {
		t.Fatalf("calledB = %v, want %v", calledB, wantB)
	}
}

func TestMergeVisitors_SkipChildrenFromAnyMemberSkipsForAll(t *testing.T) {
	va := NewVisitor()
	va.On("tree", func(p *NodePath, node any) (Action, error) {
		if node.(*tree).name == "a" {
			return SkipChildren, nil
		}
		return Continue, nil
	})
	var calledB []string
	vb := NewVisitor()
	vb.On("tree", func(p *NodePath, node any) (Action, error) {
		calledB = append(calledB, node.(*tree).name)
		return Continue, nil
	})

	merged := MergeVisitors(va, vb)
	root := buildSample()
	if _, err := walkTree(newRootPath(root, "tree"), root, merged); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"root", "a", "b", "b1"}
	if len(calledB) != len(want) {
		t.Fatalf("calledB = %v, want %v (a1/a2 should be skipped for every member)", calledB, want)
	}
}
