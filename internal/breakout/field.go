package breakout

import "github.com/quarterslot/bricks/internal/core"

// Brick is a static collidable entity. It never moves, and it shatters on
// first contact with the ball: the destroyed flag is set exactly once, the
// brick stops participating in collision checks immediately, and it is
// swept out of the field at the end of the frame.
type Brick struct {
	Entity
	Value     int // Base score value, multiplied by ball speed on impact
	destroyed bool
}

// Destroyed reports whether the brick has been hit.
func (b *Brick) Destroyed() bool {
	return b.destroyed
}

// destroy marks the brick destroyed and removes it from collision checks.
func (b *Brick) destroy() {
	b.destroyed = true
	b.Collidable = false
}

// FieldLayout positions the brick grid inside the playfield.
type FieldLayout struct {
	Rows        int
	BrickWidth  float64
	BrickHeight float64
	GapX        float64
	GapY        float64
	TopOffset   float64
	BrickValue  int
}

// Field owns the bricks for one level. It is created once at level setup
// and only ever shrinks.
type Field struct {
	bricks  []*Brick
	cleared bool // Latch: the cleared condition is reported exactly once
}

// NewField lays out a centered brick grid. The column count is however
// many bricks fit across the playfield; the leftover width becomes equal
// side gaps. The trailing gap of the last column is not part of the set
// width, hence the -GapX in the set width.
func NewField(layout FieldLayout, bounds core.Rect) *Field {
	cols := int(bounds.W / (layout.BrickWidth + layout.GapX))
	if cols < 1 || layout.Rows < 1 {
		return &Field{}
	}

	setWidth := float64(cols)*(layout.BrickWidth+layout.GapX) - layout.GapX
	sideGap := (bounds.W - setWidth) / 2

	f := &Field{bricks: make([]*Brick, 0, cols*layout.Rows)}
	for row := 0; row < layout.Rows; row++ {
		y := bounds.Y + layout.TopOffset + float64(row)*(layout.BrickHeight+layout.GapY)
		for col := 0; col < cols; col++ {
			x := bounds.X + sideGap + float64(col)*(layout.BrickWidth+layout.GapX)
			f.bricks = append(f.bricks, &Brick{
				Entity: Entity{
					Rect:       core.NewRect(x, y, layout.BrickWidth, layout.BrickHeight),
					Collidable: true,
				},
				Value: layout.BrickValue,
			})
		}
	}
	return f
}

// Bricks returns every brick still in the field, including any destroyed
// this frame and not yet swept. Render code should skip destroyed bricks.
func (f *Field) Bricks() []*Brick {
	return f.bricks
}

// Live returns the bricks that can still be hit.
func (f *Field) Live() []*Brick {
	live := make([]*Brick, 0, len(f.bricks))
	for _, b := range f.bricks {
		if !b.destroyed {
			live = append(live, b)
		}
	}
	return live
}

// Remaining counts the bricks that can still be hit.
func (f *Field) Remaining() int {
	n := 0
	for _, b := range f.bricks {
		if !b.destroyed {
			n++
		}
	}
	return n
}

// RemoveDestroyed sweeps out bricks destroyed this frame and returns them
// so the caller can drop any remaining references. cleared is true exactly
// once, on the call where the brick count transitions from nonzero to
// zero; calling again with no new hits returns an empty set and false.
func (f *Field) RemoveDestroyed() (removed []*Brick, cleared bool) {
	kept := f.bricks[:0]
	for _, b := range f.bricks {
		if b.destroyed {
			removed = append(removed, b)
		} else {
			kept = append(kept, b)
		}
	}
	f.bricks = kept

	if len(removed) > 0 && len(f.bricks) == 0 && !f.cleared {
		f.cleared = true
		return removed, true
	}
	return removed, false
}
