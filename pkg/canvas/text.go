package canvas

import "go-sim-canvas/pkg/vec"

// DefaultFont is used when TextStyle.Font is empty.
const DefaultFont = "20px Arial"

// TextStyle is the paint and layout of a Text.
type TextStyle struct {
	DrawOptions
	Font     string
	Align    TextAlign
	Baseline TextBaseline
	// MaxWidth squeezes the text horizontally to fit. Zero means no limit.
	MaxWidth float64
}

// TextOptions configures a Text. A nil Pos means the origin.
type TextOptions struct {
	TextStyle
	Text string
	Pos  *vec.Vec
}

// Text is a single line of text.
type Text struct {
	*Entity

	style TextStyle
	text  string
	pos   *vec.Vec
}

// NewText creates and registers a text entity.
func (r *Registry) NewText(opts TextOptions) *Text {
	t := newText(opts)
	t.Entity = r.insert(t, opts.DrawFromCenter)
	return t
}

// newText builds a text that no registry knows about.
func newText(opts TextOptions) *Text {
	t := &Text{style: opts.TextStyle, text: opts.Text, pos: opts.Pos}
	if t.pos == nil {
		t.pos = vec.Zero()
	}
	return t
}

func (t *Text) SetText(text string)      { t.text = text }
func (t *Text) SetPos(pos *vec.Vec)      { t.pos = pos }
func (t *Text) SetStyle(style TextStyle) { t.style = style }

func (t *Text) Text() string     { return t.text }
func (t *Text) Pos() *vec.Vec    { return t.pos }
func (t *Text) Style() TextStyle { return t.style }

func (t *Text) Draw(s Surface, ctx DrawContext) {
	o := ctx.Resolve(t.style.DrawOptions)

	s.BeginPath()
	setPaint(s, o)
	font := t.style.Font
	if font == "" {
		font = DefaultFont
	}
	s.SetFont(font)
	s.SetTextAlign(t.style.Align)
	s.SetTextBaseline(t.style.Baseline)
	s.FillText(t.text, t.pos.X()+ctx.OffsetX, t.pos.Y()+ctx.OffsetY, t.style.MaxWidth)
	s.ClosePath()
}
