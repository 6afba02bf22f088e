package ui

// Key identifies a keyboard key. The window pushes pressed keys into
// its held-keys cell; the focus tracker intercepts Tab there and
// forwards everything else to the focused gadget.
type Key int

const (
	KeyNone Key = iota

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyEscape
	KeyTab
	KeyEnter
	KeySpace
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyLeft
	KeyUp
	KeyRight
	KeyDown

	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
)

// MouseButton identifies which pointer button an event concerns.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonPrimary
	MouseButtonSecondary
	MouseButtonTertiary
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

func (m Modifiers) Shift() bool   { return m&ModShift != 0 }
func (m Modifiers) Control() bool { return m&ModControl != 0 }
func (m Modifiers) Alt() bool     { return m&ModAlt != 0 }
func (m Modifiers) Super() bool   { return m&ModSuper != 0 }

// DragInfo describes an in-progress pointer drag on a gadget.
type DragInfo struct {
	Button  MouseButton
	Begin   Point
	Current Point
}
