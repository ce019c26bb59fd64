package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	got := Inset(Square(100), 6)
	want := Box{X0: 6, Y0: 6, X1: 94, Y1: 94}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if Inset(Square(10), 0) != Square(10) {
		t.Error("zero padding should return the box unchanged")
	}
}

func TestInsetPastCenterNormalizes(t *testing.T) {
	got := Inset(Square(10), 8)
	if got.X0 > got.X1 || got.Y0 > got.Y1 {
		t.Fatalf("box not normalized: %+v", got)
	}
	if got.Dx() != 6 {
		t.Errorf("got width %v, want 6", got.Dx())
	}
}

func TestCentered(t *testing.T) {
	b := Centered(Square(100), 40, 60)
	want := Box{X0: 30, Y0: 20, X1: 70, Y1: 80}
	if b != want {
		t.Errorf("got %+v, want %+v", b, want)
	}
	cx, cy := b.Center()
	if cx != 50 || cy != 50 {
		t.Errorf("center = (%v, %v), want (50, 50)", cx, cy)
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		box  Box
		want bool
	}{
		{Box{0, 0, 1, 1}, false},
		{Box{0, 5, 1, 5}, true},
		{Box{0, 6, 1, 5}, true},
	}
	for _, tt := range tests {
		if got := tt.box.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.box, got, tt.want)
		}
	}
}

func TestPixels(t *testing.T) {
	got := Box{X0: 1.2, Y0: 2.8, X1: 4.1, Y1: 5}.Pixels()
	want := image.Rect(1, 2, 5, 5)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClampRadius(t *testing.T) {
	box := Box{X0: 0, Y0: 0, X1: 10, Y1: 4}
	if r := ClampRadius(box, 3); r != 2 {
		t.Errorf("got %v, want 2", r)
	}
	if r := ClampRadius(box, 1); r != 1 {
		t.Errorf("got %v, want 1", r)
	}
	if r := ClampRadius(box, -1); r != 0 {
		t.Errorf("got %v, want 0", r)
	}
}

func TestCircle(t *testing.T) {
	got := Circle(10, 20, 5)
	want := Box{X0: 5, Y0: 15, X1: 15, Y1: 25}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
