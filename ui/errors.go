package ui

import "errors"

var (
	// ErrIndexOutOfRange is returned when a Vec mutation names an index
	// the list does not have.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrKeyNotFound is returned when a Map deletion names a key the map
	// does not have.
	ErrKeyNotFound = errors.New("key not found")

	// ErrWouldCycle is returned when AddChild would install a gadget as
	// its own ancestor.
	ErrWouldCycle = errors.New("attachment would create a parent cycle")
)
