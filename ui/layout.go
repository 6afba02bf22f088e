package ui

// Layout glue: a plain propagating container that routes window-level
// pointer state down the tree. On every pointer-position transition at
// the container it hit-tests children against their position+size
// rectangles, forwards the translated position into the hit child's own
// pointer cell, and unsets children no longer hit. Press membership is
// mirrored from the container into whichever child currently has a
// position set, and a held button whose pointer travel exceeds the
// configured threshold becomes drag state on that child. The container's
// OnDraw handler gathers children batches translated by child position.

// layoutState is the container's specialized data: which child the
// pointer currently rests on, and where each held button was pressed
// (container-local), the anchor for drag detection.
type layoutState struct {
	hovering GadgetRef
	press    map[MouseButton]Point
}

// NewLayout creates a container gadget with pointer routing wired to
// its own cells. Children are managed with AddChild/RemoveChild as on
// any gadget; removal detaches routed state from the departing child.
func NewLayout() Gadget {
	g := NewGadget()
	g.SetData(layoutState{press: make(map[MouseButton]Point)})

	ref := g.Ref()
	g.OnDraw().Handle("okapi.layout", func(struct{}) Batch {
		var out Batch
		g, ok := ref.Get()
		if !ok {
			return out
		}
		for _, child := range g.Children().Values() {
			out = out.Group(child.Pos().Get(), child.Draw())
		}
		return out
	})

	g.MousePos().ListenSet("okapi.layout", func(ev OptionalSet[Point]) {
		if g, ok := ref.Get(); ok {
			routePointer(g, ev.Value)
		}
	})
	g.MousePos().ListenChange("okapi.layout", func(ev OptionalChange[Point]) {
		if g, ok := ref.Get(); ok {
			routePointer(g, ev.New)
		}
	})
	g.MousePos().ListenUnset("okapi.layout", func(ev OptionalUnset[Point]) {
		if g, ok := ref.Get(); ok {
			dropPointer(g)
		}
	})

	g.MouseDown().ListenAdd("okapi.layout", func(ev VecAdd[MouseButton]) {
		g, ok := ref.Get()
		if !ok {
			return
		}
		if pos, ok := g.MousePos().Get(); ok {
			With(g.Data().Get(), func(s *layoutState) {
				s.press[ev.New] = pos
			})
		}
		if child, ok := hoveredChild(g); ok {
			child.MouseDown().Push(ev.New)
		}
	})
	g.MouseDown().ListenRemove("okapi.layout", func(ev VecRemove[MouseButton]) {
		g, ok := ref.Get()
		if !ok {
			return
		}
		With(g.Data().Get(), func(s *layoutState) {
			delete(s.press, ev.Old)
		})
		if child, ok := hoveredChild(g); ok {
			child.MouseDown().Remove(ev.Old)
			removeDrag(child, ev.Old)
		}
	})

	// Departing children must not keep routed pointer state.
	g.Children().ListenRemove("okapi.layout", func(ev VecRemove[Gadget]) {
		g, ok := ref.Get()
		if !ok {
			return
		}
		child := ev.Old
		With(g.Data().Get(), func(s *layoutState) {
			if s.hovering == child.Ref() {
				s.hovering = GadgetRef{}
			}
		})
		child.MousePos().Take()
		child.MouseDown().Clear()
		child.MouseDrag().Clear()
	})

	return g
}

// routePointer delivers a container-local pointer position to the
// topmost child whose rectangle contains it.
func routePointer(g Gadget, pos Point) {
	children := g.Children().Values()
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		origin := child.Pos().Get()
		if !BoundsOf(origin, child.Dim().Get()).Contains(pos) {
			continue
		}
		switchHover(g, child)
		child.MousePos().Put(pos.Sub(origin))
		updateDrags(g, child, pos)
		return
	}
	dropPointer(g)
}

// updateDrags promotes held buttons into drag state on the hovered
// child once the pointer travels past the configured threshold from the
// press origin. Positions in DragInfo are container-local.
func updateDrags(g, child Gadget, pos Point) {
	th := CurrentInputTuning().DragThreshold
	origins := make(map[MouseButton]Point)
	With(g.Data().Get(), func(s *layoutState) {
		for btn, origin := range s.press {
			origins[btn] = origin
		}
	})
	for _, btn := range g.MouseDown().Values() {
		origin, held := origins[btn]
		if !held {
			continue
		}
		dx, dy := pos.X-origin.X, pos.Y-origin.Y
		if dx*dx+dy*dy < th*th {
			continue
		}
		info := DragInfo{Button: btn, Begin: origin, Current: pos}
		if i := dragIndex(child, btn); i >= 0 {
			child.MouseDrag().Set(i, info)
		} else {
			child.MouseDrag().Push(info)
		}
	}
}

func dragIndex(child Gadget, btn MouseButton) int {
	for i, d := range child.MouseDrag().Values() {
		if d.Button == btn {
			return i
		}
	}
	return -1
}

func removeDrag(child Gadget, btn MouseButton) {
	if i := dragIndex(child, btn); i >= 0 {
		child.MouseDrag().RemoveAt(i)
	}
}

// dropPointer propagates an unset to whichever child was hovered.
func dropPointer(g Gadget) {
	var prev GadgetRef
	With(g.Data().Get(), func(s *layoutState) {
		prev = s.hovering
		s.hovering = GadgetRef{}
	})
	if old, ok := prev.Get(); ok {
		old.MousePos().Take()
		old.MouseDown().Clear()
		old.MouseDrag().Clear()
	}
}

// switchHover records the newly hit child, unsetting the previous one
// if the pointer moved between children.
func switchHover(g Gadget, child Gadget) {
	next := child.Ref()
	var prev GadgetRef
	With(g.Data().Get(), func(s *layoutState) {
		prev = s.hovering
		s.hovering = next
	})
	if prev == next {
		return
	}
	if old, ok := prev.Get(); ok {
		old.MousePos().Take()
		old.MouseDown().Clear()
		old.MouseDrag().Clear()
	}
	// Mirror currently pressed buttons into the newly hovered child.
	for _, btn := range g.MouseDown().Values() {
		child.MouseDown().Push(btn)
	}
}

// hoveredChild resolves the container's routed child, if any.
func hoveredChild(g Gadget) (Gadget, bool) {
	var ref GadgetRef
	With(g.Data().Get(), func(s *layoutState) {
		ref = s.hovering
	})
	return ref.Get()
}
