package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/collatree/internal/layout"
)

type SceneData struct {
	Title    string     `json:"title"`
	FontSize int        `json:"font_size"`
	Origin   [2]float64 `json:"origin"`
	Items    []ItemData `json:"items"`
}

type ItemData struct {
	Start     int64        `json:"start"`
	Steps     int          `json:"steps"`
	Truncated bool         `json:"truncated"`
	Color     string       `json:"color"`
	Segments  [][4]float64 `json:"segments"`
	Label     *LabelData   `json:"label,omitempty"`
}

type LabelData struct {
	Text     string     `json:"text"`
	Pos      [2]float64 `json:"pos"`
	Rotation float64    `json:"rotation"`
}

// NewSceneData flattens a scene into plain values for external renderers.
func NewSceneData(scene *layout.Scene) SceneData {
	data := SceneData{
		Title:    scene.Title,
		FontSize: scene.FontSize,
		Origin:   [2]float64{scene.Origin.X, scene.Origin.Y},
		Items:    make([]ItemData, len(scene.Items)),
	}

	for i, item := range scene.Items {
		d := ItemData{
			Start:     item.Start,
			Steps:     item.Steps,
			Truncated: item.Truncated,
			Color:     item.Color.Hex(),
			Segments:  make([][4]float64, len(item.Path)),
		}
		for j, seg := range item.Path {
			d.Segments[j] = [4]float64{seg.From.X, seg.From.Y, seg.To.X, seg.To.Y}
		}
		if item.Label != nil {
			d.Label = &LabelData{
				Text:     item.Label.Text,
				Pos:      [2]float64{item.Label.Pos.X, item.Label.Pos.Y},
				Rotation: item.Label.Rotation,
			}
		}
		data.Items[i] = d
	}
	return data
}

func WriteJSON(w io.Writer, scene *layout.Scene) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewSceneData(scene))
}
