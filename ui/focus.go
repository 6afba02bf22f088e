package ui

import (
	"log/slog"
	"sync"
)

// FocusChange is the subject of a focus negotiation vote: the candidate
// gadget is about to gain or lose focus, and every OnFocus handler
// votes on whether it may.
type FocusChange int

const (
	FocusGain FocusChange = iota
	FocusLose
)

// FocusTracker decides which single gadget in a window's tree owns
// keyboard focus. Cycle moves focus forward, either along an explicit
// manual order or, absent one, along the gadget hierarchy.
//
// Gaining and losing focus are negotiated: a candidate accepts focus
// iff its accept-focus cell is true and every OnFocus handler votes yes
// on FocusGain; the current holder releases iff its lock-focus cell is
// false and every handler votes yes on FocusLose. A refusal is a normal
// branch of the state machine, never an error.
type FocusTracker struct {
	// mu serializes Cycle calls; concurrent triggers (key repeat,
	// programmatic cycling) must not interleave tree searches.
	mu sync.Mutex

	focused *Optional[GadgetRef]

	// manual, when non-nil, overrides hierarchy-derived order.
	manualMu sync.RWMutex
	manual   []GadgetRef

	window WindowRef
}

func newFocusTracker() *FocusTracker {
	var owner GadgetRef
	return &FocusTracker{
		focused: NewOptional[GadgetRef](owner),
	}
}

// Focused exposes the focused-gadget cell for observers (repaint on
// focus change, etc.). The cell holds a non-owning reference: it never
// keeps the focused gadget alive, and a stale entry reads as unfocused.
func (t *FocusTracker) Focused() *Optional[GadgetRef] {
	return t.focused
}

// FocusedGadget resolves the current focus holder, treating an absent
// or stale reference as unfocused.
func (t *FocusTracker) FocusedGadget() (Gadget, bool) {
	ref, ok := t.focused.Get()
	if !ok {
		return Gadget{}, false
	}
	return ref.Get()
}

// SetManualOrder supplies an explicit circular focus order, switching
// the tracker to manual mode. The slice is copied.
func (t *FocusTracker) SetManualOrder(order []GadgetRef) {
	t.manualMu.Lock()
	defer t.manualMu.Unlock()
	t.manual = make([]GadgetRef, len(order))
	copy(t.manual, order)
}

// ClearManualOrder returns the tracker to automatic, hierarchy-derived
// order.
func (t *FocusTracker) ClearManualOrder() {
	t.manualMu.Lock()
	defer t.manualMu.Unlock()
	t.manual = nil
}

// AttachTabListener wires the tracker into a window's held-keys cell.
// Tab triggers a cycle and is intercepted; every other key press and
// release is forwarded verbatim to whichever gadget holds focus.
// Call once per window; NewWindow does this.
func (t *FocusTracker) AttachTabListener(w Window) {
	t.window = w.Ref()
	w.KeyDown().ListenAdd("okapi.focus", func(ev VecAdd[Key]) {
		if ev.New == KeyTab {
			t.Cycle()
			return
		}
		if focused, ok := t.FocusedGadget(); ok {
			focused.KeyDown().Push(ev.New)
		}
	})
	w.KeyDown().ListenRemove("okapi.focus", func(ev VecRemove[Key]) {
		if ev.Old == KeyTab {
			return
		}
		if focused, ok := t.FocusedGadget(); ok {
			focused.KeyDown().Remove(ev.Old)
		}
	})
}

// Cycle advances focus once. In manual mode it scans the supplied
// order circularly from the entry after the current holder; in
// automatic mode it walks the gadget hierarchy. Both modes first
// negotiate release with the current holder and leave everything
// unchanged if it refuses. If no candidate anywhere accepts, the
// tracker ends up unfocused - a single bounded pass, never a restart.
func (t *FocusTracker) Cycle() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if order, manual := t.manualOrder(); manual {
		t.cycleManual(order)
		return
	}
	t.cycleAuto()
}

func (t *FocusTracker) manualOrder() ([]GadgetRef, bool) {
	t.manualMu.RLock()
	defer t.manualMu.RUnlock()
	return t.manual, t.manual != nil
}

func (t *FocusTracker) cycleManual(order []GadgetRef) {
	// Drop entries whose gadget no longer exists.
	live := make([]GadgetRef, 0, len(order))
	for _, ref := range order {
		if _, ok := ref.Get(); ok {
			live = append(live, ref)
		}
	}
	if len(live) != len(order) {
		t.manualMu.Lock()
		t.manual = live
		t.manualMu.Unlock()
	}

	current, focused := t.resolveFocused()

	if len(live) == 0 {
		slog.Debug("focus: manual order empty")
		if focused && t.requestRelease(current) {
			t.clearFocus()
		}
		return
	}

	begin := 0
	if focused {
		if !t.requestRelease(current) {
			slog.Debug("focus: holder refused release")
			return
		}
		if idx := refIndex(live, current.Ref()); idx >= 0 {
			begin = (idx + 1) % len(live)
		}
	}

	cur := begin
	for {
		if candidate, ok := live[cur].Get(); ok && t.requestAccept(candidate) {
			t.clearFocus()
			t.setFocus(candidate)
			slog.Debug("focus: set via manual order")
			return
		}
		cur = (cur + 1) % len(live)
		if cur == begin {
			// Full circle with no acceptor.
			t.clearFocus()
			return
		}
	}
}

func (t *FocusTracker) cycleAuto() {
	current, focused := t.resolveFocused()

	if !focused {
		slog.Debug("focus: unfocused, distributing from root")
		root, ok := t.root()
		if !ok || !root.Propagate().Get() {
			return
		}
		if next, ok := t.distribute(root, 0); ok {
			t.setFocus(next)
		}
		return
	}

	if !t.requestRelease(current) {
		slog.Debug("focus: holder refused release")
		return
	}
	t.clearFocus()

	// Walk upward, resuming the search right after the subtree we
	// just left at each propagating ancestor.
	node := current
	for {
		ref, isGadget := node.Parent().Get().Gadget()
		if !isGadget {
			// Detached or window-rooted: the walk ends with no match.
			break
		}
		parent, ok := ref.Get()
		if !ok {
			break
		}
		if parent.Propagate().Get() {
			// A holder detached between release and this read has no
			// resume position here; skip the ancestor rather than
			// re-offering earlier siblings.
			if idx := parent.Children().IndexOf(node); idx >= 0 {
				if next, ok := t.distribute(parent, idx+1); ok {
					t.setFocus(next)
					return
				}
			}
		}
		node = parent
	}
	// Bounded pass exhausted: remain unfocused.
	slog.Debug("focus: search exhausted, unfocused")
}

// distribute searches g's subtree pre-order starting at child index
// from, restricted to propagating containers. Propagating children are
// descended into, never offered focus themselves; non-propagating
// children are offered it. Returns the first acceptor.
func (t *FocusTracker) distribute(g Gadget, from int) (Gadget, bool) {
	type frame struct {
		children []Gadget
		index    int
	}
	stack := []frame{{children: g.Children().Values(), index: from}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.index >= len(top.children) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.children[top.index]
		top.index++
		if child.Propagate().Get() {
			stack = append(stack, frame{children: child.Children().Values()})
			continue
		}
		if t.requestAccept(child) {
			return child, true
		}
	}
	return Gadget{}, false
}

// requestAccept asks a candidate to take focus: its accept-focus cell
// must be true and no OnFocus handler may veto the gain.
func (t *FocusTracker) requestAccept(g Gadget) bool {
	if !g.AcceptFocus().Get() {
		return false
	}
	return allTrue(g.OnFocus().Gather(FocusGain))
}

// requestRelease asks the holder to give focus up: its lock-focus cell
// must be false and no OnFocus handler may veto the loss.
func (t *FocusTracker) requestRelease(g Gadget) bool {
	if g.LockFocus().Get() {
		return false
	}
	return allTrue(g.OnFocus().Gather(FocusLose))
}

// resolveFocused returns the current holder. A stale reference is
// dropped and treated as unfocused.
func (t *FocusTracker) resolveFocused() (Gadget, bool) {
	ref, ok := t.focused.Get()
	if !ok {
		return Gadget{}, false
	}
	g, ok := ref.Get()
	if !ok {
		t.focused.Take()
		return Gadget{}, false
	}
	return g, true
}

func (t *FocusTracker) setFocus(g Gadget) {
	t.focused.Put(g.Ref())
	g.Focused().Set(true)
}

func (t *FocusTracker) clearFocus() {
	ref, had := t.focused.Take()
	if !had {
		return
	}
	if g, ok := ref.Get(); ok {
		g.Focused().Set(false)
	}
}

func (t *FocusTracker) root() (Gadget, bool) {
	w, ok := t.window.Get()
	if !ok {
		return Gadget{}, false
	}
	root := w.Root().Get()
	if root.IsZero() {
		return Gadget{}, false
	}
	return root, true
}

func refIndex(refs []GadgetRef, ref GadgetRef) int {
	for i, r := range refs {
		if r == ref {
			return i
		}
	}
	return -1
}
