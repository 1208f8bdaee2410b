package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is used whenever a write does not request a size.
const DefaultFontSize = 30

// strokeWidth is the outline width drawn whenever a stroke color is set.
// measureStroke is the fixed allowance included in every measurement; it is
// independent of the drawn stroke on purpose, alignment math expects it.
const (
	strokeWidth   = 3
	measureStroke = 1
)

// Align selects the horizontal text origin inside a box. Unrecognized values
// fall back to left alignment, they are not an error.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// TextOptions describes a single text draw. It holds no state across calls;
// in particular the font size applies to this call only.
type TextOptions struct {
	Size   float64         // 0 means DefaultFontSize
	Box    image.Rectangle // zero rectangle means the whole target raster
	Align  Align
	Color  color.Color // nil means white
	Stroke color.Color // nil means no outline
}

// Font is a parsed typeface. Faces are derived per call so no global size
// state survives a write.
type Font struct {
	fnt *opentype.Font
}

// NewFont parses TTF/OTF data into a reusable Font.
func NewFont(data []byte) (*Font, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	return &Font{fnt: fnt}, nil
}

func (f *Font) face(size float64) (font.Face, error) {
	return opentype.NewFace(f.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// measure returns the pixel bounding box of text at the given face, newline
// aware, including the fixed measurement stroke allowance on every side.
func measure(face font.Face, text string) (w, h int) {
	m := face.Metrics()
	lineHeight := (m.Ascent + m.Descent).Ceil()

	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if adv := font.MeasureString(face, line).Ceil(); adv > w {
			w = adv
		}
	}

	return w + 2*measureStroke, lineHeight*len(lines) + 2*measureStroke
}

// textOrigin resolves the top-left corner of a measured text block inside
// box. Horizontal placement follows align; vertical placement is always
// box-centered.
func textOrigin(box image.Rectangle, w, h int, align Align) image.Point {
	var x int
	switch align {
	case AlignRight:
		x = box.Max.X - w
	case AlignCenter:
		x = box.Min.X + (box.Dx()-w)/2
	default:
		x = box.Min.X
	}
	return image.Pt(x, box.Min.Y+(box.Dy()-h)/2)
}

func drawText(dst draw.Image, f *Font, text string, opts TextOptions) error {
	if f == nil {
		return errors.New("nil font")
	}

	size := opts.Size
	if size <= 0 {
		size = DefaultFontSize
	}

	face, err := f.face(size)
	if err != nil {
		return errors.Wrap(err, "derive face")
	}
	defer face.Close()

	box := opts.Box
	if box.Empty() {
		box = dst.Bounds()
	}

	fill := opts.Color
	if fill == nil {
		fill = color.White
	}

	w, h := measure(face, text)
	origin := textOrigin(box, w, h, opts.Align)

	m := face.Metrics()
	lineHeight := (m.Ascent + m.Descent).Ceil()
	ascent := m.Ascent.Ceil()

	for i, line := range strings.Split(text, "\n") {
		x := origin.X + measureStroke
		y := origin.Y + measureStroke + i*lineHeight + ascent

		if opts.Stroke != nil {
			strokeLine(dst, face, line, x, y, opts.Stroke)
		}

		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(fill),
			Face: face,
			Dot:  fixed.P(x, y),
		}
		d.DrawString(line)
	}

	return nil
}

// strokeLine paints the line at every offset within the stroke radius so the
// fill pass ends up outlined.
func strokeLine(dst draw.Image, face font.Face, line string, x, y int, col color.Color) {
	src := image.NewUniform(col)
	for dx := -strokeWidth; dx <= strokeWidth; dx++ {
		for dy := -strokeWidth; dy <= strokeWidth; dy++ {
			if dx*dx+dy*dy > strokeWidth*strokeWidth {
				continue
			}
			d := &font.Drawer{
				Dst:  dst,
				Src:  src,
				Face: face,
				Dot:  fixed.P(x+dx, y+dy),
			}
			d.DrawString(line)
		}
	}
}
