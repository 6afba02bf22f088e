package ui

import (
	"runtime"
	"testing"
)

// focusable returns a leaf gadget that takes focus when offered it.
func focusable() Gadget {
	g := NewGadget()
	g.Propagate().Set(false)
	g.AcceptFocus().Set(true)
	return g
}

func requireFocused(t *testing.T, tracker *FocusTracker, want Gadget) {
	t.Helper()
	got, ok := tracker.FocusedGadget()
	if !ok {
		t.Fatal("tracker is unfocused")
	}
	if got != want {
		t.Fatal("tracker focused the wrong gadget")
	}
	if !want.Focused().Get() {
		t.Error("holder's focused cell should be true")
	}
}

func requireUnfocused(t *testing.T, tracker *FocusTracker) {
	t.Helper()
	if g, ok := tracker.FocusedGadget(); ok {
		t.Fatalf("tracker should be unfocused, holds %v", g)
	}
}

func TestManualCycleSingleCandidate(t *testing.T) {
	tracker := newFocusTracker()
	a := focusable()
	tracker.SetManualOrder([]GadgetRef{a.Ref()})

	tracker.Cycle()
	requireFocused(t, tracker, a)

	// With one candidate, cycling comes full circle back to it.
	tracker.Cycle()
	requireFocused(t, tracker, a)
}

func TestManualCycleAdvances(t *testing.T) {
	tracker := newFocusTracker()
	a := focusable()
	b := focusable()
	c := focusable()
	tracker.SetManualOrder([]GadgetRef{a.Ref(), b.Ref(), c.Ref()})

	for _, want := range []Gadget{a, b, c, a} {
		tracker.Cycle()
		requireFocused(t, tracker, want)
	}
}

func TestManualCycleSkipsRefusers(t *testing.T) {
	tracker := newFocusTracker()
	a := focusable()
	b := focusable()
	b.AcceptFocus().Set(false)
	c := focusable()
	c.OnFocus().Handle("veto", func(change FocusChange) bool {
		return change != FocusGain
	})
	d := focusable()
	tracker.SetManualOrder([]GadgetRef{a.Ref(), b.Ref(), c.Ref(), d.Ref()})

	tracker.Cycle()
	requireFocused(t, tracker, a)
	tracker.Cycle()
	requireFocused(t, tracker, d)
}

func TestManualCycleNoAcceptorEndsUnfocused(t *testing.T) {
	tracker := newFocusTracker()
	a := focusable()
	a.AcceptFocus().Set(false)
	tracker.SetManualOrder([]GadgetRef{a.Ref()})

	tracker.Cycle()
	requireUnfocused(t, tracker)
}

func TestLockedHolderHaltsCycle(t *testing.T) {
	tracker := newFocusTracker()
	a := focusable()
	b := focusable()
	tracker.SetManualOrder([]GadgetRef{a.Ref(), b.Ref()})

	tracker.Cycle()
	requireFocused(t, tracker, a)

	a.LockFocus().Set(true)
	tracker.Cycle()
	requireFocused(t, tracker, a)

	a.LockFocus().Set(false)
	tracker.Cycle()
	requireFocused(t, tracker, b)
}

func TestLoseVetoHaltsCycle(t *testing.T) {
	tracker := newFocusTracker()
	a := focusable()
	b := focusable()
	a.OnFocus().Handle("dirty", func(change FocusChange) bool {
		return change != FocusLose
	})
	tracker.SetManualOrder([]GadgetRef{a.Ref(), b.Ref()})

	tracker.Cycle()
	requireFocused(t, tracker, a)
	tracker.Cycle()
	requireFocused(t, tracker, a)
}

func TestManualCycleDropsStaleEntries(t *testing.T) {
	tracker := newFocusTracker()
	a := focusable()
	stale := func() GadgetRef {
		g := NewGadget() // never accepts focus, so liveness does not matter
		return g.Ref()
	}()
	b := focusable()
	tracker.SetManualOrder([]GadgetRef{a.Ref(), stale, b.Ref()})

	runtime.GC()
	runtime.GC()

	tracker.Cycle()
	requireFocused(t, tracker, a)
	tracker.Cycle()
	requireFocused(t, tracker, b)

	// Cycling compacts collected entries out of the stored order.
	eventually(t, func() bool {
		tracker.Cycle()
		tracker.manualMu.RLock()
		defer tracker.manualMu.RUnlock()
		if len(tracker.manual) == 2 {
			return true
		}
		runtime.GC()
		return false
	}, "collected entries should be dropped from the manual order")
}

func TestAutoCycleDistributesAndExhausts(t *testing.T) {
	root := NewGadget()
	x := focusable()
	y := focusable()
	if err := root.AddChild(x); err != nil {
		t.Fatal(err)
	}
	if err := root.AddChild(y); err != nil {
		t.Fatal(err)
	}
	w := NewWindow(nil, root)
	tracker := w.Focus()

	tracker.Cycle()
	requireFocused(t, tracker, x)
	tracker.Cycle()
	requireFocused(t, tracker, y)

	// Past the last candidate the pass ends unfocused rather than
	// wrapping around.
	tracker.Cycle()
	requireUnfocused(t, tracker)

	// The next cycle starts over from the root.
	tracker.Cycle()
	requireFocused(t, tracker, x)
}

func TestAutoCycleDescendsContainers(t *testing.T) {
	root := NewGadget()
	row := NewGadget() // propagating container, never offered focus
	row.AcceptFocus().Set(true)
	inner := focusable()
	tail := focusable()
	if err := row.AddChild(inner); err != nil {
		t.Fatal(err)
	}
	if err := root.AddChild(row); err != nil {
		t.Fatal(err)
	}
	if err := root.AddChild(tail); err != nil {
		t.Fatal(err)
	}
	w := NewWindow(nil, root)
	tracker := w.Focus()

	tracker.Cycle()
	requireFocused(t, tracker, inner)
	tracker.Cycle()
	requireFocused(t, tracker, tail)
}

func TestAutoCycleNonPropagatingRoot(t *testing.T) {
	root := NewGadget()
	root.Propagate().Set(false)
	child := focusable()
	if err := root.AddChild(child); err != nil {
		t.Fatal(err)
	}
	w := NewWindow(nil, root)

	w.Focus().Cycle()
	requireUnfocused(t, w.Focus())
}

func TestAutoCycleSkipsDetachedHolder(t *testing.T) {
	root := NewGadget()
	a := focusable()
	if err := root.AddChild(a); err != nil {
		t.Fatal(err)
	}
	w := NewWindow(nil, root)
	tracker := w.Focus()

	// A holder whose parent link survives but which has already left
	// the children list must not anchor a resume position.
	rogue := focusable()
	rogue.Parent().Set(GadgetParent(root.Ref()))
	tracker.focused.Put(rogue.Ref())
	rogue.Focused().Set(true)

	tracker.Cycle()
	requireUnfocused(t, tracker)
	if a.Focused().Get() {
		t.Error("siblings before the vanished position must not be offered focus")
	}
}

func TestClearManualOrderRestoresAuto(t *testing.T) {
	root := NewGadget()
	x := focusable()
	if err := root.AddChild(x); err != nil {
		t.Fatal(err)
	}
	w := NewWindow(nil, root)
	tracker := w.Focus()

	detached := focusable()
	tracker.SetManualOrder([]GadgetRef{detached.Ref()})
	tracker.Cycle()
	requireFocused(t, tracker, detached)

	tracker.ClearManualOrder()
	tracker.Cycle() // release detached, then hierarchy search
	requireUnfocused(t, tracker)
	tracker.Cycle()
	requireFocused(t, tracker, x)
}

func TestTabKeyCyclesFocus(t *testing.T) {
	root := NewGadget()
	x := focusable()
	if err := root.AddChild(x); err != nil {
		t.Fatal(err)
	}
	w := NewWindow(nil, root)

	w.KeyDown().Push(KeyTab)
	eventually(t, func() bool {
		g, ok := w.Focus().FocusedGadget()
		return ok && g == x
	}, "pressing Tab should focus the first acceptor")
	if !w.KeyDown().Contains(KeyTab) {
		t.Error("the window cell still records the held key")
	}
	if x.KeyDown().Contains(KeyTab) {
		t.Error("Tab must not be forwarded to the focus holder")
	}
}

func TestKeysForwardToFocusHolder(t *testing.T) {
	root := NewGadget()
	x := focusable()
	if err := root.AddChild(x); err != nil {
		t.Fatal(err)
	}
	w := NewWindow(nil, root)
	w.Focus().Cycle()
	requireFocused(t, w.Focus(), x)

	w.KeyDown().Push(KeyA)
	eventually(t, func() bool {
		return x.KeyDown().Contains(KeyA)
	}, "press should be forwarded to the focus holder")

	w.KeyDown().Remove(KeyA)
	eventually(t, func() bool {
		return !x.KeyDown().Contains(KeyA)
	}, "release should be forwarded to the focus holder")
}

func TestStaleFocusReadsAsUnfocused(t *testing.T) {
	tracker := newFocusTracker()
	func() {
		g := focusable()
		tracker.SetManualOrder([]GadgetRef{g.Ref()})
		tracker.Cycle()
		requireFocused(t, tracker, g)
	}()
	tracker.ClearManualOrder()

	runtime.GC()
	runtime.GC()

	eventually(t, func() bool {
		_, ok := tracker.FocusedGadget()
		if ok {
			runtime.GC()
			return false
		}
		return true
	}, "a dropped holder should read as unfocused")
}
