package ui

import (
	"weak"
)

// Gadget is a strong handle to one element of the UI tree. Handles are
// cheap to copy; two handles are equal iff they denote the same
// underlying gadget. A gadget stays alive as long as any strong handle
// exists - normally its parent's children cell plus whatever widget
// code holds it.
type Gadget struct {
	core *gadgetCore
}

// GadgetRef is a non-owning reference to a gadget. It never keeps the
// gadget alive; once the last strong handle is dropped, Get resolves to
// absent. Resolving a stale reference is a normal outcome, not an
// error - every listener holding one must tolerate it.
//
// Cells hold their owner as a GadgetRef, and a child's parent cell
// refers upward the same way, so the bidirectional tree never forms a
// strong cycle.
type GadgetRef struct {
	core weak.Pointer[gadgetCore]
}

// gadgetCore is the shared record behind a gadget's handles. All
// mutable properties live in cells; the record itself is immutable
// after construction.
type gadgetCore struct {
	// Common
	pos     *State[Point]
	dim     *State[Point]
	enabled *State[bool]

	// Hierarchy
	parent   *State[Parent]
	children *Vec[Gadget]

	// Appearance
	brush  *State[Brush]
	font   *State[Arbitrary]
	batch  *State[Batch]
	onDraw *Event[struct{}, Batch]

	// Focusing
	propagate   *State[bool]
	acceptFocus *State[bool]
	lockFocus   *State[bool]
	focused     *State[bool]
	onFocus     *Event[FocusChange, bool]

	// Specialized
	data   *State[MutableArbitrary]
	values *Map[string, Arbitrary]

	// Input
	mouseDown *Vec[MouseButton]
	mousePos  *Optional[Point]
	mouseDrag *Vec[DragInfo]
	keyDown   *Vec[Key]

	// Textual
	acceptText *State[bool]
	preEdit    *State[string]
	preEditPos *State[int]
	imePos     *State[Point]
	commit     *State[string]
}

// NewGadget creates a standalone gadget with default cell values:
// zero position and size, enabled, no parent, propagating, not
// accepting focus.
func NewGadget() Gadget {
	core := &gadgetCore{}
	ref := GadgetRef{core: weak.Make(core)}

	core.pos = NewState(ref, Point{})
	core.dim = NewState(ref, Point{})
	core.enabled = NewState(ref, true)
	core.parent = NewState(ref, NoParent())
	core.children = NewVec[Gadget](ref)
	core.brush = NewState(ref, DefaultBrush())
	core.font = NewState(ref, Placeholder())
	core.batch = NewState(ref, Batch{})
	core.onDraw = &Event[struct{}, Batch]{}
	core.propagate = NewState(ref, true)
	core.acceptFocus = NewState(ref, false)
	core.lockFocus = NewState(ref, false)
	core.focused = NewState(ref, false)
	core.onFocus = &Event[FocusChange, bool]{}
	core.data = NewState(ref, MutablePlaceholder())
	core.values = NewMap[string, Arbitrary](ref)
	core.mouseDown = NewVec[MouseButton](ref)
	core.mousePos = NewOptional[Point](ref)
	core.mouseDrag = NewVec[DragInfo](ref)
	core.keyDown = NewVec[Key](ref)
	core.acceptText = NewState(ref, false)
	core.preEdit = NewState(ref, "")
	core.preEditPos = NewState(ref, 0)
	core.imePos = NewState(ref, Point{})
	core.commit = NewState(ref, "")

	// Default draw contribution: the gadget's own batch cell.
	core.onDraw.Handle("okapi.batch", func(struct{}) Batch {
		if g, ok := ref.Get(); ok {
			return g.Batch().Get()
		}
		return Batch{}
	})

	return Gadget{core: core}
}

// Ref produces a non-owning reference to the gadget.
func (g Gadget) Ref() GadgetRef {
	return GadgetRef{core: weak.Make(g.core)}
}

// IsZero reports whether the handle denotes no gadget.
func (g Gadget) IsZero() bool {
	return g.core == nil
}

// Get resolves the reference to a strong handle, or reports that the
// gadget no longer exists.
func (r GadgetRef) Get() (Gadget, bool) {
	core := r.core.Value()
	if core == nil {
		return Gadget{}, false
	}
	return Gadget{core: core}, true
}

// Cell accessors.

func (g Gadget) Pos() *State[Point] { return g.core.pos }
func (g Gadget) Dim() *State[Point] { return g.core.dim }
func (g Gadget) Enabled() *State[bool] { return g.core.enabled }
func (g Gadget) Parent() *State[Parent] { return g.core.parent }
func (g Gadget) Children() *Vec[Gadget] { return g.core.children }
func (g Gadget) Brush() *State[Brush] { return g.core.brush }
func (g Gadget) Font() *State[Arbitrary] { return g.core.font }
func (g Gadget) Batch() *State[Batch] { return g.core.batch }
func (g Gadget) Propagate() *State[bool] { return g.core.propagate }
func (g Gadget) AcceptFocus() *State[bool] { return g.core.acceptFocus }
func (g Gadget) LockFocus() *State[bool] { return g.core.lockFocus }
func (g Gadget) Focused() *State[bool] { return g.core.focused }
func (g Gadget) OnFocus() *Event[FocusChange, bool] { return g.core.onFocus }
func (g Gadget) OnDraw() *Event[struct{}, Batch] { return g.core.onDraw }
func (g Gadget) Data() *State[MutableArbitrary] { return g.core.data }
func (g Gadget) Values() *Map[string, Arbitrary] { return g.core.values }
func (g Gadget) MouseDown() *Vec[MouseButton] { return g.core.mouseDown }
func (g Gadget) MousePos() *Optional[Point] { return g.core.mousePos }
func (g Gadget) MouseDrag() *Vec[DragInfo] { return g.core.mouseDrag }
func (g Gadget) KeyDown() *Vec[Key] { return g.core.keyDown }
func (g Gadget) AcceptText() *State[bool] { return g.core.acceptText }
func (g Gadget) PreEdit() *State[string] { return g.core.preEdit }
func (g Gadget) PreEditPos() *State[int] { return g.core.preEditPos }
func (g Gadget) ImePos() *State[Point] { return g.core.imePos }
func (g Gadget) Commit() *State[string] { return g.core.commit }

// SetData replaces the specialized-data slot and notifies listeners of
// the data cell.
func (g Gadget) SetData(value any) {
	g.core.data.Set(MutableOf(value))
}

// Draw gathers every OnDraw handler's contribution into one batch, in
// handler registration order. For a plain gadget that is its batch
// cell; containers add their children's output on top.
func (g Gadget) Draw() Batch {
	var out Batch
	for _, b := range g.core.onDraw.Gather(struct{}{}) {
		out.Ops = append(out.Ops, b.Ops...)
	}
	return out
}

// Window resolves the window this gadget is attached to by walking
// parent links to the root. It returns false if the chain ends without
// reaching a window, or if any link on the way is stale.
func (g Gadget) Window() (Window, bool) {
	current := g
	for {
		parent := current.core.parent.Get()
		if ref, ok := parent.Window(); ok {
			return ref.Get()
		}
		ref, ok := parent.Gadget()
		if !ok {
			return Window{}, false
		}
		next, ok := ref.Get()
		if !ok {
			return Window{}, false
		}
		current = next
	}
}

// IsFocused reports whether this gadget is the one named by its
// window's focus tracker.
func (g Gadget) IsFocused() bool {
	window, ok := g.Window()
	if !ok {
		return false
	}
	focused, ok := window.Focus().FocusedGadget()
	return ok && focused == g
}

// AddChild attaches child under g: the child's parent cell and g's
// children cell are mutated together. A child already attached
// elsewhere is detached first so it never appears in two trees.
// Attaching a gadget under its own descendant (or itself) fails with
// ErrWouldCycle.
func (g Gadget) AddChild(child Gadget) error {
	if g.isOrDescendsFrom(child) {
		return ErrWouldCycle
	}
	if ref, ok := child.core.parent.Get().Gadget(); ok {
		if old, ok := ref.Get(); ok {
			old.RemoveChild(child)
		}
	}
	child.core.parent.Set(GadgetParent(g.Ref()))
	g.core.children.Push(child)
	return nil
}

// RemoveChild detaches child from g, reporting whether it was attached.
// Both sides are restored: the child's parent cell is cleared and the
// child leaves g's children cell.
func (g Gadget) RemoveChild(child Gadget) bool {
	if !g.core.children.Remove(child) {
		return false
	}
	child.core.parent.Set(NoParent())
	return true
}

// isOrDescendsFrom reports whether g equals other or sits below it.
func (g Gadget) isOrDescendsFrom(other Gadget) bool {
	current := g
	for {
		if current == other {
			return true
		}
		ref, ok := current.core.parent.Get().Gadget()
		if !ok {
			return false
		}
		next, ok := ref.Get()
		if !ok {
			return false
		}
		current = next
	}
}

// Parent link variants.

type parentKind uint8

const (
	parentNone parentKind = iota
	parentGadget
	parentWindow
)

// Parent is the value of a gadget's parent cell: nothing, another
// gadget (referenced weakly), or the window a root is attached to.
type Parent struct {
	kind   parentKind
	gadget GadgetRef
	window WindowRef
}

// NoParent returns the detached parent value.
func NoParent() Parent {
	return Parent{kind: parentNone}
}

// GadgetParent returns a parent value pointing at a gadget.
func GadgetParent(ref GadgetRef) Parent {
	return Parent{kind: parentGadget, gadget: ref}
}

// WindowParent returns a parent value pointing at a window.
func WindowParent(ref WindowRef) Parent {
	return Parent{kind: parentWindow, window: ref}
}

// IsNone reports whether the gadget is detached.
func (p Parent) IsNone() bool {
	return p.kind == parentNone
}

// Gadget returns the parent gadget reference, if the parent is one.
func (p Parent) Gadget() (GadgetRef, bool) {
	return p.gadget, p.kind == parentGadget
}

// Window returns the parent window reference, if the parent is one.
func (p Parent) Window() (WindowRef, bool) {
	return p.window, p.kind == parentWindow
}
