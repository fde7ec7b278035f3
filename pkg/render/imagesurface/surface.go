// Package imagesurface renders canvas frames into an in-memory RGBA image
// with fogleman/gg, for snapshots and headless runs.
package imagesurface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"go-sim-canvas/pkg/canvas"
	"go-sim-canvas/pkg/render"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

var _ canvas.Surface = (*Surface)(nil)

// Surface is an offscreen canvas.Surface.
type Surface struct {
	dc *gg.Context

	stroke    color.Color
	fill      color.Color
	lineWidth float64

	faces    *render.Faces
	font     render.Font
	align    canvas.TextAlign
	baseline canvas.TextBaseline
}

// New returns a transparent surface of the given size. faces may be nil.
func New(width, height int, faces *render.Faces) *Surface {
	if faces == nil {
		faces = render.NewFaces()
	}
	f, _ := render.ParseFont(canvas.DefaultFont)
	dc := gg.NewContext(width, height)
	dc.SetFillRuleWinding()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	return &Surface{dc: dc, lineWidth: 1, faces: faces, font: f}
}

// Image returns the backing image. It is drawn into in place.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the current contents to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WritePNG encodes the current contents as PNG to w.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	img, ok := s.dc.Image().(draw.Image)
	if !ok {
		return
	}
	r := image.Rect(int(x), int(y), int(x+w), int(y+h))
	draw.Draw(img, r, image.Transparent, image.Point{}, draw.Src)
}

func (s *Surface) BeginPath()          { s.dc.ClearPath() }
func (s *Surface) ClosePath()          { s.dc.ClosePath() }
func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	sweep := canvas.ArcSweep(startAngle, endAngle, counterClockwise)
	s.dc.DrawArc(x, y, radius, startAngle, startAngle+sweep)
}

func (s *Surface) Stroke() {
	if s.stroke == nil {
		return
	}
	s.dc.SetColor(s.stroke)
	s.dc.SetLineWidth(s.lineWidth)
	s.dc.StrokePreserve()
}

func (s *Surface) Fill() {
	if s.fill == nil {
		return
	}
	s.dc.SetColor(s.fill)
	s.dc.FillPreserve()
}

// FillText squeezes over-long text by shrinking the face, since gg does not
// transform glyphs.
func (s *Surface) FillText(text string, x, y, maxWidth float64) {
	if s.fill == nil || text == "" {
		return
	}
	face, err := s.faces.FaceOf(s.font)
	if err != nil {
		return
	}
	width := float64(font.MeasureString(face, text)) / 64
	if maxWidth > 0 && width > maxWidth {
		f := s.font
		f.Size *= maxWidth / width
		if face, err = s.faces.FaceOf(f); err != nil {
			return
		}
		width = float64(font.MeasureString(face, text)) / 64
	}

	switch s.align {
	case canvas.AlignCenter:
		x -= width / 2
	case canvas.AlignRight, canvas.AlignEnd:
		x -= width
	}

	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	switch s.baseline {
	case canvas.BaselineTop, canvas.BaselineHanging:
		y += ascent
	case canvas.BaselineMiddle:
		y += (ascent - descent) / 2
	case canvas.BaselineIdeographic, canvas.BaselineBottom:
		y -= descent
	}

	s.dc.Push()
	s.dc.SetFontFace(face)
	s.dc.SetColor(s.fill)
	s.dc.DrawString(text, x, y)
	s.dc.Pop()
}

func (s *Surface) SetStrokeStyle(c color.Color) { s.stroke = c }
func (s *Surface) SetFillStyle(c color.Color)   { s.fill = c }

// SetLineWidth ignores widths that are not positive.
func (s *Surface) SetLineWidth(width float64) {
	if width > 0 {
		s.lineWidth = width
	}
}

// SetFont keeps the previous font when spec cannot be parsed.
func (s *Surface) SetFont(spec string) {
	if f, err := render.ParseFont(spec); err == nil {
		s.font = f
	}
}

func (s *Surface) SetTextAlign(a canvas.TextAlign)       { s.align = a }
func (s *Surface) SetTextBaseline(b canvas.TextBaseline) { s.baseline = b }
