package render

import (
	"fmt"
	"io"

	catppuccin "github.com/catppuccin/go"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// ImagePalette holds hex colours for PNG output.
type ImagePalette struct {
	Background string
	Label      string
	Selected   string
	Layers     [movement.LayerCount]string
}

// DefaultImagePalette uses the catppuccin mocha flavour.
func DefaultImagePalette() ImagePalette {
	m := catppuccin.Mocha
	return ImagePalette{
		Background: m.Base().Hex,
		Label:      m.Text().Hex,
		Selected:   m.Peach().Hex,
		Layers: [movement.LayerCount]string{
			movement.LayerBaseplate:       m.Overlay1().Hex,
			movement.LayerGearTrain:       m.Yellow().Hex,
			movement.LayerEscapement:      m.Teal().Hex,
			movement.LayerBalanceAssembly: m.Sapphire().Hex,
			movement.LayerHands:           m.Mauve().Hex,
		},
	}
}

// Image draws sprites with gg.
type Image struct {
	dc      *gg.Context
	palette ImagePalette
	labels  bool
}

type ImageOption func(*Image)

// WithLabels writes each part's label next to it.
func WithLabels(enabled bool) ImageOption {
	return func(img *Image) {
		img.labels = enabled
	}
}

func WithImagePalette(p ImagePalette) ImageOption {
	return func(img *Image) {
		img.palette = p
	}
}

func NewImage(width, height int, opts ...ImageOption) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	img := &Image{
		dc:      gg.NewContext(width, height),
		palette: DefaultImagePalette(),
		labels:  true,
	}
	for _, opt := range opts {
		opt(img)
	}

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	img.dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(max(10, height/60)),
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	return img, nil
}

func (img *Image) colour(s *Sprite) string {
	if s.Selected {
		return img.palette.Selected
	}
	return img.palette.Layers[s.Layer]
}

// Draw paints the background and sprites, back to front.
func (img *Image) Draw(sprites []Sprite) {
	dc := img.dc
	dc.SetHexColor(img.palette.Background)
	dc.Clear()

	for i := range sprites {
		s := &sprites[i]
		dc.SetHexColor(img.colour(s))

		switch s.Kind {
		case KindPlate:
			img.path(s.Outline)
			dc.SetLineWidth(3)
			dc.StrokePreserve()
			dc.SetRGBA(1, 1, 1, 0.04)
			dc.Fill()
		case KindWheel:
			img.path(s.Outline)
			dc.SetLineWidth(2.5)
			dc.Stroke()
			img.lines(s.Lines, 1.5)
			for _, m := range s.Marks {
				dc.DrawCircle(m.X, m.Y, 1.8)
				dc.Fill()
			}
		case KindSpring:
			img.path(s.Outline)
			dc.SetLineWidth(1.2)
			dc.Stroke()
		case KindHand:
			img.lines(s.Lines, 4)
		case KindFork:
			img.lines(s.Lines, 2.5)
			for _, m := range s.Marks {
				dc.DrawCircle(m.X, m.Y, 3)
				dc.Fill()
			}
		}

		if s.Kind != KindPlate {
			dc.DrawCircle(s.Center.X, s.Center.Y, 2.5)
			dc.Fill()
		}
	}

	if img.labels {
		img.drawLabels(sprites)
	}
}

func (img *Image) path(pts []Point) {
	dc := img.dc
	dc.NewSubPath()
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
			continue
		}
		dc.LineTo(p.X, p.Y)
	}
}

func (img *Image) lines(lines [][2]Point, width float64) {
	dc := img.dc
	dc.SetLineWidth(width)
	for _, l := range lines {
		dc.DrawLine(l[0].X, l[0].Y, l[1].X, l[1].Y)
		dc.Stroke()
	}
}

func (img *Image) drawLabels(sprites []Sprite) {
	dc := img.dc
	dc.SetHexColor(img.palette.Label)

	for _, s := range sprites {
		if s.Kind == KindPlate {
			continue
		}
		info, ok := movement.Lookup(s.Part)
		if !ok {
			continue
		}
		dc.DrawStringAnchored(info.Label, s.Center.X, s.Center.Y-12, 0.5, 0.5)
	}
}

// EncodePNG writes the image as PNG.
func (img *Image) EncodePNG(w io.Writer) error {
	return img.dc.EncodePNG(w)
}

// SavePNG writes the image to path.
func (img *Image) SavePNG(path string) error {
	if err := img.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
