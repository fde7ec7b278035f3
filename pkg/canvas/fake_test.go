package canvas

import (
	"fmt"
	"image/color"
	"strings"
	"time"
)

// recordingSurface logs every call as a short string.
type recordingSurface struct {
	width, height float64
	calls         []string
	stroke        color.Color
	fill          color.Color
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{width: w, height: h}
}

func (s *recordingSurface) log(format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *recordingSurface) Size() (float64, float64) { return s.width, s.height }

func (s *recordingSurface) ClearRect(x, y, w, h float64) { s.log("clear %g %g %g %g", x, y, w, h) }
func (s *recordingSurface) BeginPath()                   { s.log("begin") }
func (s *recordingSurface) ClosePath()                   { s.log("close") }
func (s *recordingSurface) MoveTo(x, y float64)          { s.log("move %g %g", x, y) }
func (s *recordingSurface) LineTo(x, y float64)          { s.log("line %g %g", x, y) }
func (s *recordingSurface) Stroke()                      { s.log("stroke") }
func (s *recordingSurface) Fill()                        { s.log("fill") }

func (s *recordingSurface) Arc(x, y, r, start, end float64, ccw bool) {
	s.log("arc %g %g %g", x, y, r)
}

func (s *recordingSurface) FillText(text string, x, y, maxWidth float64) {
	s.log("text %q %g %g", text, x, y)
}

func (s *recordingSurface) SetStrokeStyle(c color.Color) { s.stroke = c }
func (s *recordingSurface) SetFillStyle(c color.Color)   { s.fill = c }
func (s *recordingSurface) SetLineWidth(float64)         {}
func (s *recordingSurface) SetFont(string)               {}
func (s *recordingSurface) SetTextAlign(TextAlign)       {}
func (s *recordingSurface) SetTextBaseline(TextBaseline) {}

func (s *recordingSurface) count(prefix string) int {
	n := 0
	for _, c := range s.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (s *recordingSurface) reset() { s.calls = nil }

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
