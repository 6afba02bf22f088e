package ui

import "weak"

// Backend is the rendering/event-loop integration a window is bound to.
// The core calls RequestRedraw when reactive state invalidates the
// frame; everything else about surfaces, shaping and draw submission
// stays behind the implementation.
type Backend interface {
	// Launch starts the platform event loop for the window and blocks
	// until the window closes.
	Launch(w Window)

	// RequestRedraw asks the backend to repaint at its next opportunity.
	RequestRedraw()
}

// Window owns a gadget tree root, the window-level input cells the
// event-loop integration pushes raw input into, and the focus tracker.
type Window struct {
	core *windowCore
}

// WindowRef is a non-owning reference to a window, mirroring GadgetRef.
type WindowRef struct {
	core weak.Pointer[windowCore]
}

type windowCore struct {
	title *State[string]
	pos   *State[Point]
	dim   *State[Point]
	root  *State[Gadget]

	focus   *FocusTracker
	backend Backend

	// Raw input pushed by the event-loop integration. The focus
	// tracker's Tab listener sits on keyDown; the layout glue routes
	// mousePos/mouseDown down the tree.
	keyDown   *Vec[Key]
	mouseDown *Vec[MouseButton]
	mousePos  *Optional[Point]
}

// NewWindow creates a window around the given root gadget and wires the
// focus tracker's Tab interception. backend may be nil in headless use;
// RequestRedraw is then a no-op.
func NewWindow(backend Backend, root Gadget) Window {
	// Window-level cells have no owning gadget.
	var owner GadgetRef
	core := &windowCore{
		title:     NewState(owner, ""),
		pos:       NewState(owner, Point{}),
		dim:       NewState(owner, Point{X: 800, Y: 600}),
		root:      NewState(owner, root),
		backend:   backend,
		keyDown:   NewVec[Key](owner),
		mouseDown: NewVec[MouseButton](owner),
		mousePos:  NewOptional[Point](owner),
	}
	w := Window{core: core}
	core.focus = newFocusTracker()
	core.focus.AttachTabListener(w)
	root.Parent().Set(WindowParent(w.Ref()))
	return w
}

// Ref produces a non-owning reference to the window.
func (w Window) Ref() WindowRef {
	return WindowRef{core: weak.Make(w.core)}
}

// IsZero reports whether the handle denotes no window.
func (w Window) IsZero() bool {
	return w.core == nil
}

// Get resolves the reference to a strong handle, or reports that the
// window no longer exists.
func (r WindowRef) Get() (Window, bool) {
	core := r.core.Value()
	if core == nil {
		return Window{}, false
	}
	return Window{core: core}, true
}

func (w Window) Title() *State[string] { return w.core.title }
func (w Window) Pos() *State[Point] { return w.core.pos }
func (w Window) Dim() *State[Point] { return w.core.dim }
func (w Window) Root() *State[Gadget] { return w.core.root }
func (w Window) Focus() *FocusTracker { return w.core.focus }
func (w Window) KeyDown() *Vec[Key] { return w.core.keyDown }
func (w Window) MouseDown() *Vec[MouseButton] { return w.core.mouseDown }
func (w Window) MousePos() *Optional[Point] { return w.core.mousePos }

// Launch hands control to the backend event loop.
func (w Window) Launch() {
	if w.core.backend != nil {
		w.core.backend.Launch(w)
	}
}

// RequestRedraw asks the backend to repaint.
func (w Window) RequestRedraw() {
	if w.core.backend != nil {
		w.core.backend.RequestRedraw()
	}
}
