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

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, Cell{Rune: '█', Color: ColorGreen})
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' {
		t.Errorf("GetCell rune = %q, expected '█'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell color = %v, expected ColorGreen", cell.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Out-of-bounds writes must not panic and must be ignored
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	// Out-of-bounds reads return blanks
	if got := s.Get(-1, -1); got != ' ' {
		t.Errorf("Get(-1, -1) = %q, expected space", got)
	}
	if got := s.GetCell(100, 100); got.Color != ColorDefault {
		t.Errorf("GetCell(100, 100) color = %v, expected ColorDefault", got.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(2, 2, Cell{Rune: '#', Color: ColorRed})

	s.Clear()

	if s.Get(2, 2) != ' ' {
		t.Error("Clear() should reset runes to spaces")
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Clear() should reset colors to default")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'A' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking clips
	s.Resize(3, 3)
	if s.Get(2, 2) != 'A' {
		t.Error("Content within new bounds should survive shrink")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText failed, row = %q", s.Row(1))
	}

	// Clipped text must not panic
	s.DrawText(8, 1, "long text")
	if s.Get(9, 1) != 'o' {
		t.Errorf("Clipped DrawText wrong, row = %q", s.Row(1))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(NewRect(1, 1, 3, 2), Cell{Rune: '#', Color: ColorBlack})

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect missed (%d, %d)", x, y)
			}
		}
	}
	if s.Get(0, 0) != ' ' || s.Get(4, 3) != ' ' {
		t.Error("DrawRect painted outside the rect")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("Row 0 = %q, expected %q", lines[0], "a  ")
	}
	if lines[1] != "  b" {
		t.Errorf("Row 1 = %q, expected %q", lines[1], "  b")
	}
}
