package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/san-kum/collatree/internal/layout"
	"github.com/san-kum/collatree/internal/viz"
)

var (
	fontOnce  sync.Once
	monoFont  *truetype.Font
	fontError error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		monoFont, fontError = truetype.Parse(gomono.TTF)
	})
	return monoFont, fontError
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     96,
		Hinting: font.HintingFull,
	})
}

func themeColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// RenderPNG rasterises a scene with the same layout as SceneToSVG.
func RenderPNG(scene *layout.Scene, width, height int, theme viz.Theme) (image.Image, error) {
	if scene == nil {
		return nil, fmt.Errorf("nothing to render")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	w, h := float64(width), float64(height)
	band := titleBand(h)
	tr := layout.Fit(scene, w, h-band, Padding)
	project := func(p layout.Point) (float64, float64) {
		x, y := tr.Apply(p)
		return x, y + band
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(themeColor(string(theme.Background)))
	dc.Clear()

	text := themeColor(string(theme.Text))
	if scene.Title != "" && band > 0 {
		dc.SetFontFace(face(f, 14))
		dc.SetColor(text)
		dc.DrawStringAnchored(scene.Title, w/2, band/2, 0.5, 0.5)
	}

	dc.SetLineWidth(LineWidth)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for _, item := range scene.Items {
		if len(item.Path) == 0 {
			continue
		}
		dc.SetRGBA(item.Color.R, item.Color.G, item.Color.B, LineOpacity)
		x, y := project(item.Path[0].From)
		dc.MoveTo(x, y)
		for _, seg := range item.Path {
			x, y = project(seg.To)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	dc.SetFontFace(face(f, float64(scene.FontSize)))
	dc.SetColor(text)
	for _, item := range scene.Items {
		if item.Label == nil {
			continue
		}
		x, y := project(item.Label.Pos)
		dc.Push()
		dc.RotateAbout(gg.Radians(-item.Label.Rotation), x, y)
		dc.DrawStringAnchored(item.Label.Text, x, y, 0.5, 0.5)
		dc.Pop()
	}

	ox, oy := project(scene.Origin)
	dc.DrawCircle(ox, oy, MarkerSize)
	dc.SetColor(themeColor(string(theme.Marker)))
	dc.FillPreserve()
	dc.SetColor(themeColor(string(theme.Background)))
	dc.SetLineWidth(1)
	dc.Stroke()

	return dc.Image(), nil
}

func WritePNG(w io.Writer, scene *layout.Scene, width, height int, theme viz.Theme) error {
	img, err := RenderPNG(scene, width, height, theme)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func SavePNG(path string, scene *layout.Scene, width, height int, theme viz.Theme) error {
	img, err := RenderPNG(scene, width, height, theme)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
