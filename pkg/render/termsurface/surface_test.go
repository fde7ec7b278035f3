package termsurface

import (
	"image/color"
	"math"
	"testing"
	"time"

	"go-sim-canvas/pkg/canvas"
	"go-sim-canvas/pkg/vec"

	"github.com/gdamore/tcell/v2"
)

var red = color.NRGBA{255, 0, 0, 255}

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func cellAt(screen tcell.Screen, col, row int) (rune, tcell.Color, tcell.Color) {
	r, _, style, _ := screen.GetContent(col, row)
	fg, bg, _ := style.Decompose()
	return r, fg, bg
}

func TestSizeInVirtualPixels(t *testing.T) {
	s := New(newScreen(t, 20, 10))
	w, h := s.Size()
	if w != 160 || h != 160 {
		t.Errorf("Expected 160x160, got %vx%v", w, h)
	}
}

func TestStrokeLine(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := New(screen)
	s.SetStrokeStyle(red)
	s.BeginPath()
	s.MoveTo(4, 24)
	s.LineTo(100, 24)
	s.Stroke()

	want := tcell.NewRGBColor(255, 0, 0)
	for col := 0; col <= 12; col++ {
		r, fg, _ := cellAt(screen, col, 1)
		if r != strokeRune || fg != want {
			t.Errorf("Expected a red block at column %d, got %q %v", col, r, fg)
		}
	}
	if r, _, _ := cellAt(screen, 13, 1); r == strokeRune {
		t.Error("Expected the line to stop at column 12")
	}
	if r, _, _ := cellAt(screen, 5, 0); r == strokeRune {
		t.Error("Expected the row above to stay blank")
	}
}

func TestFilledCircle(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := New(screen)
	r := canvas.NewRegistry(canvas.StaticTheme{Centered: true})
	r.NewCircle(canvas.CircleOptions{
		DrawOptions: canvas.DrawOptions{Fill: red},
		Pos:         vec.New(0, 0),
		Radius:      30,
	})
	r.Draw(s)

	want := tcell.NewRGBColor(255, 0, 0)
	if _, _, bg := cellAt(screen, 10, 5); bg != want {
		t.Errorf("Expected the centre cell filled red, got %v", bg)
	}
	if _, _, bg := cellAt(screen, 0, 0); bg == want {
		t.Error("Expected the corner to stay unfilled")
	}
}

func TestFillText(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := New(screen)
	s.SetFillStyle(color.White)
	s.SetTextBaseline(canvas.BaselineTop)
	s.FillText("hi", 16, 32, 0)

	if r, _, _ := cellAt(screen, 2, 2); r != 'h' {
		t.Errorf("Expected 'h' at (2, 2), got %q", r)
	}
	if r, _, _ := cellAt(screen, 3, 2); r != 'i' {
		t.Errorf("Expected 'i' at (3, 2), got %q", r)
	}

	s.SetTextAlign(canvas.AlignCenter)
	s.FillText("ok", 16, 64, 0)
	if r, _, _ := cellAt(screen, 1, 4); r != 'o' {
		t.Errorf("Expected centred text to start at column 1, got %q", r)
	}
}

func TestFillTextMaxWidthTruncates(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := New(screen)
	s.SetFillStyle(color.White)
	s.SetTextBaseline(canvas.BaselineTop)
	s.FillText("hello", 0, 0, 16)

	if r, _, _ := cellAt(screen, 1, 0); r != 'e' {
		t.Errorf("Expected 'e' at column 1, got %q", r)
	}
	if r, _, _ := cellAt(screen, 2, 0); r != ' ' {
		t.Errorf("Expected text cut after two cells, got %q", r)
	}
}

func TestClear(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := New(screen)
	s.SetStrokeStyle(red)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(150, 150)
	s.Stroke()

	canvas.Clear(s)
	for row := 0; row < 10; row++ {
		for col := 0; col < 20; col++ {
			if r, _, _ := cellAt(screen, col, row); r != ' ' {
				t.Fatalf("Expected a blank cell at (%d, %d), got %q", col, row, r)
			}
		}
	}
}

func TestNilStylesPaintNothing(t *testing.T) {
	screen := newScreen(t, 10, 5)
	s := New(screen)
	s.BeginPath()
	s.Arc(40, 40, 20, 0, 6.3, false)
	s.Stroke()
	s.Fill()
	s.FillText("x", 0, 0, 0)

	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			r, _, bg := cellAt(screen, col, row)
			if r != ' ' || bg != tcell.ColorDefault {
				t.Fatalf("Expected nothing drawn at (%d, %d), got %q %v", col, row, r, bg)
			}
		}
	}
}

func TestBresenhamEndpoints(t *testing.T) {
	var got [][2]int
	bresenham(3, 1, 0, 0, func(x, y int) { got = append(got, [2]int{x, y}) })
	if len(got) != 4 {
		t.Fatalf("Expected 4 cells, got %v", got)
	}
	if got[0] != [2]int{3, 1} || got[3] != [2]int{0, 0} {
		t.Errorf("Expected the line to run from (3, 1) to (0, 0), got %v", got)
	}
}

// returnsWithin fails the test if fn does not finish in time.
func returnsWithin(t *testing.T, d time.Duration, what string, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("Expected %s to return within %v", what, d)
	}
}

func TestStrokeDegeneratePoints(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := New(screen)
	r := canvas.NewRegistry(canvas.StaticTheme{Centered: false})
	p := r.NewPath(canvas.PathOptions{
		DrawOptions: canvas.DrawOptions{Stroke: red},
		Start:       vec.New(4, 24),
	})
	p.Add(vec.New(1e12, 24))
	p.Add(vec.Zero().Normalize())
	p.Add(vec.New(math.Inf(-1), 40))

	returnsWithin(t, 5*time.Second, "drawing NaN, Inf and far-off points", func() { r.Draw(s) })

	for col := 0; col < 20; col++ {
		if r, _, _ := cellAt(screen, col, 1); r != strokeRune {
			t.Errorf("Expected the visible part of the long segment at column %d, got %q", col, r)
		}
	}
}

func TestHugeArcIsBounded(t *testing.T) {
	s := New(newScreen(t, 20, 10))
	s.SetStrokeStyle(red)
	s.SetFillStyle(red)
	returnsWithin(t, 5*time.Second, "a huge arc", func() {
		s.BeginPath()
		s.Arc(80, 80, 1e9, 0, 2*math.Pi, false)
		s.Arc(80, 80, math.Inf(1), 0, 2*math.Pi, false)
		s.Stroke()
		s.Fill()
	})
	if n := len(s.subpaths[0]); n > 2*(maxArcSegments+1) {
		t.Errorf("Expected at most %d points, got %d", 2*(maxArcSegments+1), n)
	}
}

func TestClearRectHugeAndNaN(t *testing.T) {
	s := New(newScreen(t, 20, 10))
	returnsWithin(t, 5*time.Second, "clearing an oversized rectangle", func() {
		s.ClearRect(-1e12, -1e12, 2e12, 2e12)
		s.ClearRect(math.NaN(), 0, 10, 10)
	})
}

func TestClip(t *testing.T) {
	tests := []struct {
		a, b   point
		ok     bool
		ca, cb point
	}{
		{point{10, 10}, point{20, 20}, true, point{10, 10}, point{20, 20}},
		{point{-10, 50}, point{1e12, 50}, true, point{0, 50}, point{100, 50}},
		{point{-10, -10}, point{-5, 200}, false, point{}, point{}},
		{point{math.NaN(), 0}, point{10, 10}, false, point{}, point{}},
		{point{0, 0}, point{math.Inf(1), 0}, false, point{}, point{}},
	}
	for _, tt := range tests {
		ca, cb, ok := clip(tt.a, tt.b, 100, 100)
		if ok != tt.ok {
			t.Errorf("Expected ok=%v for %v-%v, got %v", tt.ok, tt.a, tt.b, ok)
			continue
		}
		if ok && (math.Abs(ca.x-tt.ca.x) > 1e-6 || math.Abs(ca.y-tt.ca.y) > 1e-6 ||
			math.Abs(cb.x-tt.cb.x) > 1e-6 || math.Abs(cb.y-tt.cb.y) > 1e-6) {
			t.Errorf("Expected %v-%v, got %v-%v", tt.ca, tt.cb, ca, cb)
		}
	}
}
