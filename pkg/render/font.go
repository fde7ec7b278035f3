// pkg/render/font.go
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrBadFont is returned for font strings ParseFont cannot read.
var ErrBadFont = errors.New("bad font")

// Font is a parsed CSS font shorthand such as "bold 20px Arial".
type Font struct {
	Size   float64 // pixels
	Family string
	Bold   bool
	Italic bool
}

// Mono reports whether the family asks for a fixed-width face.
func (f Font) Mono() bool {
	fam := strings.ToLower(f.Family)
	for _, m := range []string{"mono", "courier", "consolas", "menlo"} {
		if strings.Contains(fam, m) {
			return true
		}
	}
	return false
}

// ParseFont reads "[style] [weight] <size>(px|pt) <family>". Unknown style
// words are ignored; the size is required.
func ParseFont(s string) (Font, error) {
	fields := strings.Fields(s)
	var f Font
	for i, field := range fields {
		switch strings.ToLower(field) {
		case "bold", "bolder", "600", "700", "800", "900":
			f.Bold = true
			continue
		case "italic", "oblique":
			f.Italic = true
			continue
		}
		size, ok := parseFontSize(field)
		if !ok {
			continue
		}
		f.Size = size
		f.Family = strings.Trim(strings.Join(fields[i+1:], " "), `"'`)
		return f, nil
	}
	return Font{}, fmt.Errorf("%w: %q has no size", ErrBadFont, s)
}

func parseFontSize(s string) (float64, bool) {
	// "20px/1.5" carries a line height we don't use.
	s, _, _ = strings.Cut(s, "/")
	num, pt := strings.CutSuffix(s, "pt")
	if !pt {
		var px bool
		if num, px = strings.CutSuffix(s, "px"); !px {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	if pt {
		v = v * 4 / 3
	}
	return v, true
}

// Faces caches font faces. The Go fonts stand in for every family: mono
// families get Go Mono, everything else Go Regular, with bold and italic
// variants where they exist.
type Faces struct {
	specs  map[string]Font
	parsed map[string]*opentype.Font
	faces  map[Font]font.Face
}

func NewFaces() *Faces {
	return &Faces{
		specs:  make(map[string]Font),
		parsed: make(map[string]*opentype.Font),
		faces:  make(map[Font]font.Face),
	}
}

// Face returns the face for a CSS font string, loading it on first use.
func (fs *Faces) Face(spec string) (font.Face, error) {
	f, ok := fs.specs[spec]
	if !ok {
		var err error
		if f, err = ParseFont(spec); err != nil {
			return nil, err
		}
		fs.specs[spec] = f
	}
	return fs.FaceOf(f)
}

// FaceOf returns the face for an already parsed font.
func (fs *Faces) FaceOf(f Font) (font.Face, error) {
	if face, ok := fs.faces[f]; ok {
		return face, nil
	}
	name, data := ttfFor(f)
	tt, ok := fs.parsed[name]
	if !ok {
		var err error
		tt, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		fs.parsed[name] = tt
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %+v: %w", f, err)
	}
	fs.faces[f] = face
	return face, nil
}

// Close releases every cached face.
func (fs *Faces) Close() error {
	var errs []error
	for f, face := range fs.faces {
		if err := face.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %+v: %w", f, err))
		}
	}
	clear(fs.faces)
	return errors.Join(errs...)
}

func ttfFor(f Font) (string, []byte) {
	switch {
	case f.Mono() && f.Bold:
		return "gomonobold", gomonobold.TTF
	case f.Mono():
		return "gomono", gomono.TTF
	case f.Bold && f.Italic:
		return "gobolditalic", gobolditalic.TTF
	case f.Bold:
		return "gobold", gobold.TTF
	case f.Italic:
		return "goitalic", goitalic.TTF
	}
	return "goregular", goregular.TTF
}
