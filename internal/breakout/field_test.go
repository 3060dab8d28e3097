package breakout

import (
	"testing"

	"github.com/quarterslot/bricks/internal/core"
)

func defaultLayout() FieldLayout {
	return FieldLayout{
		Rows:        5,
		BrickWidth:  60,
		BrickHeight: 20,
		GapX:        10,
		GapY:        10,
		TopOffset:   40,
		BrickValue:  1,
	}
}

func TestNewFieldCenteredLayout(t *testing.T) {
	bounds := core.NewRect(0, 0, 800, 600)
	f := NewField(defaultLayout(), bounds)

	// 800 / (60+10) = 11 columns across, 5 rows.
	if got := len(f.Bricks()); got != 55 {
		t.Fatalf("brick count = %d, expected 55", got)
	}
	if f.Remaining() != 55 {
		t.Errorf("Remaining() = %d, expected 55", f.Remaining())
	}

	// Set width 11*70-10 = 760, so the side gap is 20 on each side.
	first := f.Bricks()[0]
	if first.Rect.X != 20 {
		t.Errorf("first brick x = %v, expected 20", first.Rect.X)
	}
	if first.Rect.Y != 40 {
		t.Errorf("first brick y = %v, expected the 40 top offset", first.Rect.Y)
	}

	lastInRow := f.Bricks()[10]
	if lastInRow.Rect.Right() != 780 {
		t.Errorf("last column right edge = %v, expected 780", lastInRow.Rect.Right())
	}

	for i, b := range f.Bricks() {
		if !bounds.ContainsRect(b.Rect) {
			t.Errorf("brick %d at %+v outside the playfield", i, b.Rect)
		}
		if !b.Collidable {
			t.Errorf("brick %d should start collidable", i)
		}
	}
}

func TestNewFieldDegenerateLayout(t *testing.T) {
	layout := defaultLayout()
	layout.Rows = 0
	f := NewField(layout, core.NewRect(0, 0, 800, 600))

	if len(f.Bricks()) != 0 {
		t.Errorf("zero-row layout should produce no bricks, got %d", len(f.Bricks()))
	}

	removed, cleared := f.RemoveDestroyed()
	if len(removed) != 0 || cleared {
		t.Errorf("empty field sweep = (%d, %v), expected (0, false)", len(removed), cleared)
	}
}

func TestLiveExcludesDestroyed(t *testing.T) {
	f := NewField(defaultLayout(), core.NewRect(0, 0, 800, 600))

	f.Bricks()[0].destroy()
	f.Bricks()[7].destroy()

	if got := len(f.Live()); got != 53 {
		t.Errorf("Live() = %d bricks, expected 53", got)
	}
	if f.Remaining() != 53 {
		t.Errorf("Remaining() = %d, expected 53", f.Remaining())
	}
	if f.Bricks()[0].Collidable {
		t.Error("destroyed brick should not be collidable")
	}
}

func TestRemoveDestroyedSweep(t *testing.T) {
	f := &Field{bricks: []*Brick{
		{Entity: Entity{Rect: core.NewRect(0, 0, 60, 20), Collidable: true}, Value: 1},
		{Entity: Entity{Rect: core.NewRect(70, 0, 60, 20), Collidable: true}, Value: 1},
	}}

	f.bricks[0].destroy()
	removed, cleared := f.RemoveDestroyed()
	if len(removed) != 1 {
		t.Fatalf("removed %d bricks, expected 1", len(removed))
	}
	if cleared {
		t.Error("field with a brick standing must not report cleared")
	}
	if f.Remaining() != 1 {
		t.Errorf("Remaining() = %d, expected 1", f.Remaining())
	}

	f.bricks[0].destroy()
	removed, cleared = f.RemoveDestroyed()
	if len(removed) != 1 {
		t.Fatalf("removed %d bricks, expected 1", len(removed))
	}
	if !cleared {
		t.Error("last brick falling should report cleared")
	}

	// The cleared condition latches: sweeping again reports nothing.
	removed, cleared = f.RemoveDestroyed()
	if len(removed) != 0 || cleared {
		t.Errorf("repeat sweep = (%d, %v), expected (0, false)", len(removed), cleared)
	}
}

func TestRemoveDestroyedAllAtOnce(t *testing.T) {
	f := &Field{bricks: []*Brick{
		{Entity: Entity{Rect: core.NewRect(0, 0, 60, 20), Collidable: true}, Value: 1},
		{Entity: Entity{Rect: core.NewRect(70, 0, 60, 20), Collidable: true}, Value: 1},
	}}

	f.bricks[0].destroy()
	f.bricks[1].destroy()

	removed, cleared := f.RemoveDestroyed()
	if len(removed) != 2 {
		t.Errorf("removed %d bricks, expected 2", len(removed))
	}
	if !cleared {
		t.Error("destroying every brick in one frame should report cleared")
	}
}
