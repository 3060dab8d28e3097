package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	s.SetColored(4, 2, 'O', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'O' || cell.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, expected red 'O'", cell)
	}

	// Untouched cells are spaces in the default color.
	if cell := s.GetCell(0, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("GetCell(0, 0) = %+v, expected default space", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes outside the buffer are silently dropped.
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds write leaked into the buffer")
	}

	// Reads outside the buffer return a space.
	if got := s.Get(-1, -1); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, 'X', ColorRed)

	s.Clear()

	cell := s.GetCell(3, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("GetCell(3, 2) = %+v after Clear, expected default space", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, 'X', ColorBlue)
	s.Set(9, 4, 'Y')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("size = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if cell := s.GetCell(3, 2); cell.Rune != 'X' || cell.Color != ColorBlue {
		t.Errorf("growing lost content: %+v", cell)
	}
	if s.Get(9, 4) != 'Y' {
		t.Error("growing lost the corner cell")
	}

	s.Resize(5, 3)
	if s.Get(3, 2) != 'X' {
		t.Error("shrinking lost content still inside the buffer")
	}
	if s.Get(9, 4) != ' ' {
		t.Error("shrinking should drop content outside the new buffer")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawText(2, 1, "hello", ColorGreen)
	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("row 1 = %q, expected to contain 'hello'", got)
	}
	if s.GetCell(2, 1).Color != ColorGreen {
		t.Error("drawn text should carry its color")
	}

	// Clipped at the right edge, no panic.
	s.DrawText(17, 0, "long text", ColorDefault)
	if got := s.Row(0); !strings.HasSuffix(got, "lon") {
		t.Errorf("row 0 = %q, expected clipped 'lon' at the edge", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "abcd", ColorDefault)

	// (20-4)/2 = 8
	if got := s.Get(8, 1); got != 'a' {
		t.Errorf("centered text starts at %q, expected 'a' at column 8", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(1, 1, 6, 3, ColorWhite)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {6, 1, '┐'}, {1, 3, '└'}, {6, 3, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}
	if got := s.Get(3, 1); got != '─' {
		t.Errorf("top edge = %q, expected '─'", got)
	}
	if got := s.Get(1, 2); got != '│' {
		t.Errorf("left edge = %q, expected '│'", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
