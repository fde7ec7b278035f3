package render

import (
	"errors"
	"image/color"
	"testing"
)

func nrgba(t *testing.T, s string) color.NRGBA {
	t.Helper()
	c, err := ParseColor(s)
	if err != nil {
		t.Fatalf("ParseColor(%q): %v", s, err)
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"white", color.NRGBA{255, 255, 255, 255}},
		{"  Gold ", color.NRGBA{255, 215, 0, 255}},
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"#336699", color.NRGBA{0x33, 0x66, 0x99, 255}},
		{"#33669980", color.NRGBA{0x33, 0x66, 0x99, 0x80}},
		{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 255}},
		{"rgba(10 20 30 / 50%)", color.NRGBA{10, 20, 30, 128}},
		{"hsl(0, 100%, 50%)", color.NRGBA{255, 0, 0, 255}},
		{"hsl(40, 80%, 35%)", color.NRGBA{161, 113, 18, 255}},
		{"hsla(120deg, 100%, 25%, 0.5)", color.NRGBA{0, 128, 0, 128}},
	}
	for _, tt := range tests {
		got := nrgba(t, tt.in)
		if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) || !near(got.A, tt.want.A) {
			t.Errorf("ParseColor(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorEmptyAndTransparent(t *testing.T) {
	c, err := ParseColor("")
	if err != nil || c != nil {
		t.Errorf("Expected no colour for an empty string, got %v, %v", c, err)
	}
	c, err = ParseColor("transparent")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := c.RGBA(); a != 0 {
		t.Errorf("Expected zero alpha, got %d", a)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"notacolor", "#12", "#zzzzzz", "hsl(1, 2)", "rgb(a, b, c)", "hsl 1 2 3"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseColor(%q): expected ErrUnknownColor, got %v", in, err)
		}
	}
}

func TestDarken(t *testing.T) {
	got := Darken(color.NRGBA{200, 100, 50, 77}, 0.5)
	if got != (color.NRGBA{100, 50, 25, 77}) {
		t.Errorf("Expected {100 50 25 77}, got %v", got)
	}
}

func TestParseFont(t *testing.T) {
	tests := []struct {
		in   string
		want Font
	}{
		{"20px Arial", Font{Size: 20, Family: "Arial"}},
		{"bold 14px 'Fira Mono'", Font{Size: 14, Family: "Fira Mono", Bold: true}},
		{"italic 700 12pt serif", Font{Size: 16, Family: "serif", Bold: true, Italic: true}},
		{"10px/1.5 monospace", Font{Size: 10, Family: "monospace"}},
	}
	for _, tt := range tests {
		got, err := ParseFont(tt.in)
		if err != nil {
			t.Errorf("ParseFont(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFont(%q) = %+v, expected %+v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFont("Arial"); !errors.Is(err, ErrBadFont) {
		t.Errorf("Expected ErrBadFont, got %v", err)
	}
}

func TestFacesCache(t *testing.T) {
	fs := NewFaces()
	defer fs.Close()

	a, err := fs.Face("20px Arial")
	if err != nil {
		t.Fatal(err)
	}
	b, err := fs.Face("20px Arial")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Expected the same face for the same font string")
	}

	small, err := fs.Face("10px Arial")
	if err != nil {
		t.Fatal(err)
	}
	if small.Metrics().Height >= a.Metrics().Height {
		t.Errorf("Expected a smaller face, got heights %v and %v", small.Metrics().Height, a.Metrics().Height)
	}

	if _, err := fs.Face("huge"); !errors.Is(err, ErrBadFont) {
		t.Errorf("Expected ErrBadFont, got %v", err)
	}
}
