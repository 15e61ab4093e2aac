package gomvt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
)

const tileJSONVersion = "2.2.0"

//EncodedTile one serialized tile at its pyramid coordinate
type EncodedTile struct {
	Z    int
	X, Y uint32
	Data []byte
}

//VectorLayer the vector_layers entry of a TileJSON document
type VectorLayer struct {
	ID          string            `json:"id"`
	Description string            `json:"description,omitempty"`
	Minzoom     int               `json:"minzoom"`
	Maxzoom     int               `json:"maxzoom"`
	Fields      map[string]string `json:"fields"`
}

//TileJSON a TileJSON 2.2 metadata document
type TileJSON struct {
	TileJSON     string        `json:"tilejson"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Version      string        `json:"version"`
	Scheme       string        `json:"scheme"`
	Minzoom      int           `json:"minzoom"`
	Maxzoom      int           `json:"maxzoom"`
	Bounds       []float64     `json:"bounds,omitempty"`
	Center       []float64     `json:"center,omitempty"`
	Tiles        []string      `json:"tiles"`
	Data         []string      `json:"data,omitempty"`
	Format       string        `json:"format"`
	VectorLayers []VectorLayer `json:"vector_layers"`
}

//NewTileJSON builds the TileJSON document for an exported tileset. One
//vector_layers entry is emitted per layer seen in the Transformer's
//collected stats, with field types derived from them; without stats the
//default layer is listed with no fields. Center is the bounds midpoint at
//maxzoom, matching the renderer's initial view.
func (t *Transformer) NewTileJSON(name, description, urlRoot string, bounds []float64, maxzoom int) *TileJSON {
	tj := &TileJSON{
		TileJSON:    tileJSONVersion,
		Name:        name,
		Description: description,
		Version:     "1.0.0",
		Scheme:      "xyz",
		Maxzoom:     maxzoom,
		Tiles:       []string{urlRoot + name + "/{z}/{x}/{y}." + TileExtension},
		Data:        []string{urlRoot + name + "/data.geojson"},
		Format:      "pbf",
	}
	if len(bounds) == 4 {
		tj.Bounds = bounds
		tj.Center = []float64{
			(bounds[0] + bounds[2]) / 2,
			(bounds[1] + bounds[3]) / 2,
			float64(maxzoom),
		}
	}

	ids := make([]string, 0, len(t.Stats))
	for id := range t.Stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) == 0 {
		ids = []string{t.LayerName}
	}
	for _, id := range ids {
		layer := VectorLayer{
			ID:          id,
			Description: description,
			Maxzoom:     maxzoom,
			Fields:      map[string]string{},
		}
		if stats, ok := t.Stats[id]; ok {
			layer.Fields = stats.FieldTypes()
		}
		tj.VectorLayers = append(tj.VectorLayers, layer)
	}
	return tj
}

//WritePyramid writes encoded tiles to dest as a {z}/{x}/{y}.mvt directory
//tree along with a metadata.json TileJSON document. Returns the absolute
//path of dest.
func WritePyramid(dest string, tiles []EncodedTile, meta *TileJSON) (string, error) {
	abs, err := filepath.Abs(dest)
	if err != nil {
		return "", err
	}
	for _, t := range tiles {
		dir := filepath.Join(abs, fmt.Sprintf("%d/%d", t.Z, t.X))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		path := filepath.Join(dir, fmt.Sprintf("%d.%s", t.Y, TileExtension))
		if err := os.WriteFile(path, t.Data, 0644); err != nil {
			return "", fmt.Errorf("write tile %s: %w", path, err)
		}
	}
	if meta != nil {
		buf, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(filepath.Join(abs, "metadata.json"), buf, 0644); err != nil {
			return "", err
		}
	}
	log.Debugf("wrote pyramid of %d tiles to %s", len(tiles), abs)
	return abs, nil
}
