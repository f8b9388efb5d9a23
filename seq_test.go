package loom

import (
	"testing"

	"github.com/loomui/loom/layout"
)

func TestSeqRebuildGrowsByBuilding(t *testing.T) {
	ui := New(&column{children: Children{&probe{}}})
	ui.Frame(0)

	seq := ui.state.(*PodState).inner.(*columnState).seq
	if seq.Len() != 1 {
		t.Fatalf("initial len = %d", seq.Len())
	}
	firstID := seq.NodeAt(0).ID()

	ui.Rebuild(&column{children: Children{&probe{}, &probe{}, &probe{}}})
	if seq.Len() != 3 {
		t.Fatalf("len after growth = %d, want 3", seq.Len())
	}
	if seq.NodeAt(0).ID() != firstID {
		t.Error("surviving index lost its node state")
	}
	if seq.NodeAt(1).ID() == firstID || seq.NodeAt(2).ID() == firstID {
		t.Error("new entries must get fresh node identities")
	}
	if !ui.rootNode.NeedsLayout() {
		t.Error("child count change must request layout")
	}
}

func TestSeqRebuildShrinksByTruncation(t *testing.T) {
	ui := New(&column{children: Children{&probe{}, &probe{}, &probe{}}})
	ui.Frame(0)

	seq := ui.state.(*PodState).inner.(*columnState).seq
	keptID := seq.NodeAt(0).ID()

	ui.Rebuild(&column{children: Children{&probe{}}})
	if seq.Len() != 1 {
		t.Fatalf("len after shrink = %d, want 1", seq.Len())
	}
	if seq.NodeAt(0).ID() != keptID {
		t.Error("index 0 must keep its state across a shrink")
	}
}

func TestSeqStructuralIdentity(t *testing.T) {
	// Reordering children moves which state each visual child
	// inherits; state follows the index, not the view.
	a := &probe{element: "a"}
	b := &probe{element: "b"}

	ui := New(&column{children: Children{a, b}})
	ui.Frame(0)

	seq := ui.state.(*PodState).inner.(*columnState).seq
	id0 := seq.NodeAt(0).ID()
	seq.NodeAt(0).SetHot(true)

	ui.Rebuild(&column{children: Children{b, a}})
	if seq.NodeAt(0).ID() != id0 {
		t.Error("index 0 state must survive a reorder")
	}
	if !seq.NodeAt(0).IsHot() {
		t.Error("accumulated state stays at the index after a reorder")
	}
}

func TestSeqEventOrder(t *testing.T) {
	var order []int
	child := func(i int) *probe {
		return &probe{onEvent: func(cx *EventContext, e Event) {
			if _, ok := e.(KeyPressed); ok {
				order = append(order, i)
			}
		}}
	}
	ui := New(&column{children: Children{child(0), child(1), child(2)}})
	ui.Frame(0)

	ui.Event(KeyPressed{Key: "a"})
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("visit order = %v, want structural index order", order)
	}
}

func TestViewsSequence(t *testing.T) {
	vs := Views[*probe]{{element: "x"}, {element: "y"}}
	if vs.Len() != 2 {
		t.Fatalf("Len = %d", vs.Len())
	}
	if e, ok := vs.ViewAt(1).(*probe); !ok || e.element != "y" {
		t.Errorf("ViewAt(1) = %#v", vs.ViewAt(1))
	}

	ui := New(&column{children: Children{
		&probe{onLayout: func(cx *LayoutContext, space layout.Space) layout.Size {
			return layout.Sz(40, 25)
		}},
	}})
	ui.Frame(0)
	if ui.Size() != (layout.Sz(40, 25)) {
		t.Errorf("root size = %v, want the column fit to its child", ui.Size())
	}
}
