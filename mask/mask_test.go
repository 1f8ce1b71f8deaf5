package mask

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/pathedit"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// square returns a path tracing three sides of the square (10,10)–(30,30),
// closed implicitly by the fourth.
func square() *pathedit.BezierPath {
	p := pathedit.NewBezierPath(pathedit.Pt(10, 10), pathedit.Corner, pathedit.WithStartTime(0))
	p.AddPoint(pathedit.Pt(30, 10), pathedit.Corner)
	p.AddPoint(pathedit.Pt(30, 30), pathedit.Corner)
	p.AddPoint(pathedit.Pt(10, 30), pathedit.Corner)
	return p
}

func TestInPolygon(t *testing.T) {
	tri := []pathedit.Point{pathedit.Pt(0, 0), pathedit.Pt(10, 0), pathedit.Pt(5, 10)}
	tests := []struct {
		pt   pathedit.Point
		want bool
	}{
		{pathedit.Pt(5, 5), true},
		{pathedit.Pt(-1, -1), false},
		{pathedit.Pt(5, 11), false},
		{pathedit.Pt(11, 5), false},
	}
	for _, tt := range tests {
		if got := InPolygon(tri, tt.pt); got != tt.want {
			t.Errorf("InPolygon(%v) = %t, want %t", tt.pt, got, tt.want)
		}
	}
	if InPolygon(tri[:2], pathedit.Pt(5, 0)) {
		t.Error("degenerate polygon contains a point")
	}
}

func TestEvenOdd(t *testing.T) {
	m := EvenOdd(square(), 40, 40)
	diff(t, image.Rect(0, 0, 40, 40), m.Bounds())
	for _, pt := range []image.Point{{20, 20}, {12, 12}, {28, 28}} {
		if a := m.AlphaAt(pt.X, pt.Y).A; a != 0xff {
			t.Errorf("alpha at %v = %d, want 255", pt, a)
		}
	}
	for _, pt := range []image.Point{{0, 0}, {5, 20}, {35, 35}, {20, 39}} {
		if a := m.AlphaAt(pt.X, pt.Y).A; a != 0 {
			t.Errorf("alpha at %v = %d, want 0", pt, a)
		}
	}
}

func TestEvenOddSinglePoint(t *testing.T) {
	p := pathedit.NewBezierPath(pathedit.Pt(5, 5), pathedit.Corner)
	m := EvenOdd(p, 10, 10)
	for _, a := range m.Pix {
		if a != 0 {
			t.Fatal("mask of a single point is not empty")
		}
	}
}

func TestCoverage(t *testing.T) {
	m := Coverage(square(), 40, 40)
	if a := m.AlphaAt(20, 20).A; a < 0xf0 {
		t.Errorf("alpha inside = %d, want opaque", a)
	}
	if a := m.AlphaAt(2, 2).A; a != 0 {
		t.Errorf("alpha outside = %d, want 0", a)
	}
	if a := m.AlphaAt(35, 20).A; a != 0 {
		t.Errorf("alpha right of the square = %d, want 0", a)
	}
}

func TestCompositeWithoutBackground(t *testing.T) {
	out := Composite(nil, EvenOdd(square(), 40, 40))
	diff(t, Fill, out.RGBAAt(20, 20))
	diff(t, color.RGBA{}, out.RGBAAt(2, 2))
}

func TestCompositeScalesBackground(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	bg := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			bg.SetRGBA(x, y, red)
		}
	}
	out := Composite(bg, EvenOdd(square(), 40, 40))
	if c := out.RGBAAt(20, 20); c.R < 250 || c.G != 0 || c.B != 0 || c.A < 250 {
		t.Errorf("inside = %v, want red", c)
	}
	diff(t, color.RGBA{}, out.RGBAAt(35, 35))
}
