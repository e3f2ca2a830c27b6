package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/collatree/internal/layout"
	"github.com/san-kum/collatree/internal/viz"
)

const (
	// TitleBand is the strip at the top of a rendered image reserved for
	// the scene title.
	TitleBand   = 40.0
	Padding     = 0.1
	LineWidth   = 1.5
	LineOpacity = 0.8
	MarkerSize  = 4.0
)

// titleBand returns the strip reserved for the title, or 0 when the image
// is too short to spare it.
func titleBand(height float64) float64 {
	if height < 2*TitleBand {
		return 0
	}
	return TitleBand
}

// SceneToSVG renders a scene as a standalone SVG document.
func SceneToSVG(scene *layout.Scene, width, height int, theme viz.Theme) string {
	if scene == nil {
		return ""
	}

	w, h := float64(width), float64(height)
	band := titleBand(h)
	tr := layout.Fit(scene, w, h-band, Padding)
	project := func(p layout.Point) (float64, float64) {
		x, y := tr.Apply(p)
		return x, y + band
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background))

	if scene.Title != "" && band > 0 {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="sans-serif" font-size="16" text-anchor="middle">%s</text>
`, w/2, band*0.6, theme.Text, html.EscapeString(scene.Title)))
	}

	sb.WriteString(fmt.Sprintf(`<g fill="none" stroke-width="%.1f" stroke-opacity="%.1f" stroke-linecap="round" stroke-linejoin="round">
`, LineWidth, LineOpacity))
	for _, item := range scene.Items {
		if len(item.Path) == 0 {
			continue
		}
		x, y := project(item.Path[0].From)
		sb.WriteString(fmt.Sprintf(`<path stroke="%s" d="M%.2f,%.2f`, item.Color.Hex(), x, y))
		for _, seg := range item.Path {
			x, y = project(seg.To)
			sb.WriteString(fmt.Sprintf(" L%.2f,%.2f", x, y))
		}
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<g fill="%s" font-family="monospace" font-size="%dpt" text-anchor="middle" dominant-baseline="central">
`, theme.Text, scene.FontSize))
	for _, item := range scene.Items {
		if item.Label == nil {
			continue
		}
		x, y := project(item.Label.Pos)
		// SVG rotates clockwise on a y-down grid.
		sb.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" transform="rotate(%.2f %.2f %.2f)">%s</text>
`, x, y, -item.Label.Rotation, x, y, html.EscapeString(item.Label.Text)))
	}
	sb.WriteString("</g>\n")

	ox, oy := project(scene.Origin)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s" stroke="%s"/>
`, ox, oy, MarkerSize, theme.Marker, theme.Background))

	sb.WriteString("</svg>")
	return sb.String()
}
