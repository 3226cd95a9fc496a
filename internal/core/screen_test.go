package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorYellow)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorYellow {
		t.Errorf("GetCell(5, 5) = %+v, expected yellow 'X'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClearResetsFade(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.FadeToBlack(0.6)

	s.Clear()

	if s.Get(1, 1) != ' ' {
		t.Error("Clear should blank cells")
	}
	if s.Fade() != 0 {
		t.Errorf("Clear should reset fade, got %f", s.Fade())
	}
}

func TestScreenFadeKeepsStrongest(t *testing.T) {
	s := NewScreen(4, 4)
	s.FadeToBlack(0.3)
	s.FadeToBlack(0.7)
	s.FadeToBlack(0.5)
	if s.Fade() != 0.7 {
		t.Errorf("Fade() = %f, expected 0.7", s.Fade())
	}

	s.FadeToBlack(3)
	if s.Fade() != 1 {
		t.Errorf("Fade() should clamp to 1, got %f", s.Fade())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorWhite) // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorCyan)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox should draw edges")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should leave the interior empty")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	// Writes inside the new bounds must not panic.
	s.Set(7, 3, 'X')
	if s.Get(7, 3) != 'X' {
		t.Error("Set after resize should store the rune")
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		tint     float64
		expected Color
	}{
		{1, ColorYellow},
		{0.8, ColorYellow},
		{0.5, ColorGray},
		{0.1, ColorDarkGray},
	}
	for _, tc := range tests {
		if got := Shade(ColorYellow, tc.tint); got != tc.expected {
			t.Errorf("Shade(yellow, %f) = %d, expected %d", tc.tint, got, tc.expected)
		}
	}

	if got := Shade(ColorDarkGray, 0.5); got != ColorDarkGray {
		t.Errorf("Shade should never brighten dark gray, got %d", got)
	}
}

func TestScreenFadeDimsExistingCells(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetCell(0, 0, 'A', ColorYellow)
	s.FadeToBlack(0.5)
	s.SetCell(1, 0, 'B', ColorYellow)

	if c := s.GetCell(0, 0); c.Rune != 'A' || c.Color != ColorGray {
		t.Errorf("faded cell = %+v, expected gray A", c)
	}
	if c := s.GetCell(1, 0); c.Color != ColorYellow {
		t.Errorf("cell drawn after the fade should keep its color, got %+v", c)
	}

	s.FadeToBlack(0.95)
	if s.Get(0, 0) != ' ' || s.Get(1, 0) != ' ' {
		t.Error("a near-opaque fade should blank the cells")
	}
}

func TestScreenOverlay(t *testing.T) {
	dst := NewScreen(3, 1)
	dst.DrawText(0, 0, "abc", ColorWhite)

	src := NewScreen(3, 1)
	src.SetCell(1, 0, 'X', ColorOrange)
	src.FadeToBlack(0.2)

	dst.Overlay(src)
	if got := dst.String(); got != "aXc" {
		t.Errorf("Overlay() = %q, expected %q", got, "aXc")
	}
	if dst.Fade() != 0.2 {
		t.Errorf("Overlay should carry the layer fade, got %f", dst.Fade())
	}
}
