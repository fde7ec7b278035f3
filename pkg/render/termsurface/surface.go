// Package termsurface draws canvas frames onto a terminal with tcell. Each
// character cell stands for a CellWidth x CellHeight block of virtual
// pixels, so entity coordinates keep the same scale as on a window.
package termsurface

import (
	"image/color"
	"math"
	"slices"

	"go-sim-canvas/pkg/canvas"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	CellWidth  = 8.0
	CellHeight = 16.0

	strokeRune = '█'
	// arcStep is the longest arc segment, in virtual pixels, before flattening.
	arcStep        = 4.0
	maxArcSegments = 512
)

var _ canvas.Surface = (*Surface)(nil)

type point struct{ x, y float64 }

// Surface is a canvas.Surface on a tcell screen.
type Surface struct {
	screen tcell.Screen

	subpaths [][]point

	stroke   color.Color
	fill     color.Color
	align    canvas.TextAlign
	baseline canvas.TextBaseline
}

// New returns a surface on an initialised screen.
func New(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Show pushes the drawn cells to the terminal.
func (s *Surface) Show() { s.screen.Show() }

func (s *Surface) Size() (float64, float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

// cell maps a virtual pixel to its cell.
func cell(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

func (s *Surface) inside(col, row int) bool {
	cols, rows := s.screen.Size()
	return col >= 0 && row >= 0 && col < cols && row < rows
}

// ClearRect blanks every cell whose centre lies in the rectangle.
func (s *Surface) ClearRect(x, y, w, h float64) {
	cols, rows := s.screen.Size()
	c0, r0 := cell(x+CellWidth/2, y+CellHeight/2)
	c1, r1 := cell(x+w+CellWidth/2, y+h+CellHeight/2)
	for row := max(r0, 0); row < min(r1, rows); row++ {
		for col := max(c0, 0); col < min(c1, cols); col++ {
			s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
}

func (s *Surface) BeginPath() { s.subpaths = s.subpaths[:0] }

func (s *Surface) ClosePath() {
	if len(s.subpaths) == 0 {
		return
	}
	last := s.subpaths[len(s.subpaths)-1]
	if len(last) < 2 {
		return
	}
	first := last[0]
	s.subpaths[len(s.subpaths)-1] = append(last, first)
	s.subpaths = append(s.subpaths, []point{first})
}

func (s *Surface) MoveTo(x, y float64) {
	s.subpaths = append(s.subpaths, []point{{x, y}})
}

func (s *Surface) LineTo(x, y float64) {
	if len(s.subpaths) == 0 {
		s.MoveTo(x, y)
		return
	}
	i := len(s.subpaths) - 1
	s.subpaths[i] = append(s.subpaths[i], point{x, y})
}

func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	sweep := canvas.ArcSweep(startAngle, endAngle, counterClockwise)
	n := maxArcSegments
	// NaN and Inf fall through to maxArcSegments.
	if segs := math.Ceil(math.Abs(sweep) * radius / arcStep); segs < maxArcSegments {
		n = max(8, int(segs))
	}
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(startAngle + sweep*float64(i)/float64(n))
		s.LineTo(x+radius*cos, y+radius*sin)
	}
}

// Stroke draws every segment of the path as a line of block cells. Segments
// are clipped to the screen first; those with a NaN or infinite end are skipped.
func (s *Surface) Stroke() {
	if !visible(s.stroke) {
		return
	}
	fg := toTcell(s.stroke)
	w, h := s.Size()
	for _, sp := range s.subpaths {
		for i := 1; i < len(sp); i++ {
			a, b, ok := clip(sp[i-1], sp[i], w, h)
			if !ok {
				continue
			}
			c0, r0 := cell(a.x, a.y)
			c1, r1 := cell(b.x, b.y)
			bresenham(c0, r0, c1, r1, func(col, row int) {
				s.plot(col, row, fg)
			})
		}
	}
}

func (s *Surface) plot(col, row int, fg tcell.Color) {
	if !s.inside(col, row) {
		return
	}
	_, _, style, _ := s.screen.GetContent(col, row)
	s.screen.SetContent(col, row, strokeRune, nil, style.Foreground(fg))
}

// Fill paints the background of every cell whose centre is inside the path
// under the non-zero winding rule. Open subpaths are closed implicitly.
func (s *Surface) Fill() {
	if !visible(s.fill) {
		return
	}
	bg := toTcell(s.fill)
	cols, rows := s.screen.Size()

	type crossing struct {
		x   float64
		dir int
	}
	var xs []crossing
	for row := 0; row < rows; row++ {
		cy := (float64(row) + 0.5) * CellHeight
		xs = xs[:0]
		for _, sp := range s.subpaths {
			for i := range sp {
				a, b := sp[i], sp[(i+1)%len(sp)]
				if !a.finite() || !b.finite() || (a.y <= cy) == (b.y <= cy) {
					continue
				}
				dir := 1
				if b.y < a.y {
					dir = -1
				}
				xs = append(xs, crossing{a.x + (cy-a.y)*(b.x-a.x)/(b.y-a.y), dir})
			}
		}
		if len(xs) == 0 {
			continue
		}
		slices.SortFunc(xs, func(p, q crossing) int {
			switch {
			case p.x < q.x:
				return -1
			case p.x > q.x:
				return 1
			}
			return 0
		})

		winding := 0
		for i := 0; i < len(xs)-1; i++ {
			winding += xs[i].dir
			if winding == 0 {
				continue
			}
			c0 := int(math.Ceil(xs[i].x/CellWidth - 0.5))
			c1 := int(math.Floor(xs[i+1].x/CellWidth - 0.5))
			for col := max(c0, 0); col <= min(c1, cols-1); col++ {
				mainc, comb, style, _ := s.screen.GetContent(col, row)
				s.screen.SetContent(col, row, mainc, comb, style.Background(bg))
			}
		}
	}
}

// FillText writes text into cells. maxWidth truncates rather than squeezes.
func (s *Surface) FillText(text string, x, y, maxWidth float64) {
	if !visible(s.fill) || text == "" {
		return
	}
	if maxWidth > 0 {
		text = runewidth.Truncate(text, int(maxWidth/CellWidth), "")
	}
	width := float64(runewidth.StringWidth(text)) * CellWidth
	switch s.align {
	case canvas.AlignCenter:
		x -= width / 2
	case canvas.AlignRight, canvas.AlignEnd:
		x -= width
	}
	switch s.baseline {
	case canvas.BaselineMiddle:
		y -= CellHeight / 2
	case canvas.BaselineAlphabetic, canvas.BaselineIdeographic, canvas.BaselineBottom:
		y -= CellHeight
	}

	col, row := cell(x+CellWidth/2, y+CellHeight/2)
	fg := toTcell(s.fill)
	for _, r := range text {
		if s.inside(col, row) {
			_, _, style, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, r, nil, style.Foreground(fg))
		}
		col += runewidth.RuneWidth(r)
	}
}

func (s *Surface) SetStrokeStyle(c color.Color) { s.stroke = c }
func (s *Surface) SetFillStyle(c color.Color)   { s.fill = c }

// Line width, font and size are fixed by the terminal.
func (s *Surface) SetLineWidth(float64) {}
func (s *Surface) SetFont(string)       {}

func (s *Surface) SetTextAlign(a canvas.TextAlign)       { s.align = a }
func (s *Surface) SetTextBaseline(b canvas.TextBaseline) { s.baseline = b }

func visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a != 0
}

func toTcell(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

func (p point) finite() bool {
	return !math.IsNaN(p.x) && !math.IsNaN(p.y) && !math.IsInf(p.x, 0) && !math.IsInf(p.y, 0)
}

// clip trims the segment a-b to the rectangle [0,w]x[0,h] (Liang-Barsky).
// ok is false when nothing of it is left or an end is not finite.
func clip(a, b point, w, h float64) (point, point, bool) {
	d := point{b.x - a.x, b.y - a.y}
	if !a.finite() || !b.finite() || !d.finite() {
		return a, b, false
	}
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-d.x, a.x},
		{d.x, w - a.x},
		{-d.y, a.y},
		{d.y, h - a.y},
	} {
		p, q := e[0], e[1]
		switch {
		case p == 0:
			if q < 0 {
				return a, b, false
			}
		case p < 0:
			t0 = max(t0, q/p)
		default:
			t1 = min(t1, q/p)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return point{a.x + t0*d.x, a.y + t0*d.y}, point{a.x + t1*d.x, a.y + t1*d.y}, true
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
