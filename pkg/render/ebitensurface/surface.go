// pkg/render/ebitensurface/surface.go
package ebitensurface

import (
	"image"
	"image/color"
	"log"

	"go-sim-canvas/pkg/canvas"
	"go-sim-canvas/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
)

var _ canvas.Surface = (*Surface)(nil)

// Surface draws canvas paths onto an ebiten image.
type Surface struct {
	target   *ebiten.Image
	whiteImg *ebiten.Image

	path vector.Path
	vs   []ebiten.Vertex
	is   []uint16

	stroke    color.Color
	fill      color.Color
	lineWidth float64

	faces    *render.Faces
	font     string
	badFonts map[string]bool
	align    canvas.TextAlign
	baseline canvas.TextBaseline
}

// New returns a surface drawing onto target. faces may be shared between
// surfaces; nil creates a private cache.
func New(target *ebiten.Image, faces *render.Faces) *Surface {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)
	if faces == nil {
		faces = render.NewFaces()
	}
	return &Surface{
		target:    target,
		whiteImg:  whiteImg,
		vs:        make([]ebiten.Vertex, 0, 64),
		is:        make([]uint16, 0, 96),
		lineWidth: 1,
		faces:     faces,
		font:      canvas.DefaultFont,
		badFonts:  make(map[string]bool),
	}
}

// Target returns the image being drawn on.
func (s *Surface) Target() *ebiten.Image { return s.target }

func (s *Surface) Size() (float64, float64) {
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(s.target.Bounds())
	if r.Empty() {
		return
	}
	s.target.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Surface) BeginPath() { s.path = vector.Path{} }
func (s *Surface) ClosePath() { s.path.Close() }

func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(float32(x), float32(y)) }
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(float32(x), float32(y)) }

func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	dir := vector.Clockwise
	if counterClockwise {
		dir = vector.CounterClockwise
	}
	s.path.Arc(float32(x), float32(y), float32(radius), float32(startAngle), float32(endAngle), dir)
}

func (s *Surface) Stroke() {
	if s.stroke == nil {
		return
	}
	s.vs, s.is = s.path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(s.lineWidth),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	s.drawVertices(s.stroke, ebiten.FillRuleFillAll)
}

func (s *Surface) Fill() {
	if s.fill == nil {
		return
	}
	s.vs, s.is = s.path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.drawVertices(s.fill, ebiten.FillRuleNonZero)
}

func (s *Surface) drawVertices(c color.Color, rule ebiten.FillRule) {
	if len(s.is) == 0 {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i := range s.vs {
		s.vs[i].SrcX = 0
		s.vs[i].SrcY = 0
		s.vs[i].ColorR = float32(n.R) / 255
		s.vs[i].ColorG = float32(n.G) / 255
		s.vs[i].ColorB = float32(n.B) / 255
		s.vs[i].ColorA = float32(n.A) / 255
	}
	s.target.DrawTriangles(s.vs, s.is, s.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	})
}

func (s *Surface) FillText(str string, x, y, maxWidth float64) {
	if s.fill == nil || str == "" {
		return
	}
	face := s.face()
	if face == nil {
		return
	}

	width := float64(font.MeasureString(face, str)) / 64
	scale := 1.0
	if maxWidth > 0 && width > maxWidth {
		scale = maxWidth / width
	}
	width *= scale

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

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, 1)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(s.fill)
	text.DrawWithOptions(s.target, str, face, op)
}

func (s *Surface) face() font.Face {
	face, err := s.faces.Face(s.font)
	if err == nil {
		return face
	}
	if !s.badFonts[s.font] {
		log.Printf("ebitensurface: %v, using %q", err, canvas.DefaultFont)
		s.badFonts[s.font] = true
	}
	face, err = s.faces.Face(canvas.DefaultFont)
	if err != nil {
		return nil
	}
	return face
}

func (s *Surface) SetStrokeStyle(c color.Color) { s.stroke = c }
func (s *Surface) SetFillStyle(c color.Color)   { s.fill = c }

// SetLineWidth ignores widths that are not positive.
func (s *Surface) SetLineWidth(width float64) {
	if width > 0 {
		s.lineWidth = width
	}
}

func (s *Surface) SetFont(f string)                      { s.font = f }
func (s *Surface) SetTextAlign(a canvas.TextAlign)       { s.align = a }
func (s *Surface) SetTextBaseline(b canvas.TextBaseline) { s.baseline = b }
