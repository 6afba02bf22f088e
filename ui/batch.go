package ui

// This file defines the paint model only at its interface boundary:
// widgets rebuild their gadget's batch cell when properties change, and
// the rendering backend reads that cell and requests redraws. Path
// tessellation and draw submission live behind the Backend interface.

// Color is a packed 0xRRGGBBAA value.
type Color uint32

// Brush describes how a shape is filled and stroked.
type Brush struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float32
}

// DefaultBrush returns an opaque black fill with no stroke.
func DefaultBrush() Brush {
	return Brush{Fill: 0x000000FF}
}

// PaintKind discriminates batch operations.
type PaintKind uint8

const (
	PaintRect PaintKind = iota
	PaintText
	PaintGroup
)

// PaintOp is one drawing operation. A PaintGroup op nests a sub-batch
// translated by Offset, which is how containers compose children.
type PaintOp struct {
	Kind   PaintKind
	Bounds Bounds
	Brush  Brush
	Text   string
	Offset Point
	Group  []PaintOp
}

// Batch is the recomputed paint output of one gadget.
type Batch struct {
	Ops []PaintOp
}

// Rect appends a rectangle operation and returns the batch.
func (b Batch) Rect(bounds Bounds, brush Brush) Batch {
	b.Ops = append(b.Ops, PaintOp{Kind: PaintRect, Bounds: bounds, Brush: brush})
	return b
}

// Text appends a text operation anchored at the bounds origin.
func (b Batch) Text(bounds Bounds, text string, brush Brush) Batch {
	b.Ops = append(b.Ops, PaintOp{Kind: PaintText, Bounds: bounds, Text: text, Brush: brush})
	return b
}

// Group appends a sub-batch translated by offset.
func (b Batch) Group(offset Point, sub Batch) Batch {
	b.Ops = append(b.Ops, PaintOp{Kind: PaintGroup, Offset: offset, Group: sub.Ops})
	return b
}
