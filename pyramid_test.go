package gomvt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePyramid(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out")
	tiles := []EncodedTile{
		{Z: 0, X: 0, Y: 0, Data: []byte{0x1A, 0x00}},
		{Z: 1, X: 1, Y: 0, Data: []byte{0x1A, 0x01}},
	}

	tr := NewTransformer("geojson")
	meta := tr.NewTileJSON("geojson", "vector tiles for geojson", "/", []float64{-10, -10, 10, 10}, 12)

	abs, err := WritePyramid(dest, tiles, meta)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"0/0/0.mvt", "1/1/0.mvt", "metadata.json"} {
		if _, err := os.Stat(filepath.Join(abs, p)); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}

	buf, err := os.ReadFile(filepath.Join(abs, "metadata.json"))
	if err != nil {
		t.Fatal(err)
	}
	var got TileJSON
	if err := json.Unmarshal(buf, &got); err != nil {
		t.Fatal(err)
	}
	if got.TileJSON != tileJSONVersion || got.Format != "pbf" || got.Scheme != "xyz" {
		t.Errorf("metadata header = %+v", got)
	}
	if len(got.Center) != 3 || got.Center[0] != 0 || got.Center[1] != 0 {
		t.Errorf("center = %v, want bounds midpoint", got.Center)
	}
	if len(got.VectorLayers) != 1 || got.VectorLayers[0].ID != "geojson" {
		t.Errorf("vector_layers = %+v", got.VectorLayers)
	}
	if got.Description != "vector tiles for geojson" || len(got.Data) != 1 {
		t.Errorf("description/data not carried: %+v", got)
	}
}

func TestTileJSONListsAllStatLayers(t *testing.T) {
	tr := NewTransformer("geojson")
	tr.EnableStats()
	layers := map[string]*TiledLayer{
		"roads": {Features: []TiledFeature{{
			Type:     GeomLinestring,
			Tags:     map[string]interface{}{"name": "a"},
			Geometry: [][]TilePoint{{{0, 0}, {1, 1}}},
		}}},
		"places": {Features: []TiledFeature{{
			Type:     GeomPoint,
			Tags:     map[string]interface{}{"rank": 1},
			Geometry: [][]TilePoint{{{0, 0}}},
		}}},
	}
	if _, err := tr.EncodeTile(layers); err != nil {
		t.Fatal(err)
	}

	tj := tr.NewTileJSON("demo", "two layers", "/", nil, 10)
	if len(tj.VectorLayers) != 2 {
		t.Fatalf("vector_layers = %+v, want one entry per stats layer", tj.VectorLayers)
	}
	if tj.VectorLayers[0].ID != "places" || tj.VectorLayers[1].ID != "roads" {
		t.Errorf("vector_layers out of order: %+v", tj.VectorLayers)
	}
	if tj.VectorLayers[0].Fields["rank"] != "Number" || tj.VectorLayers[1].Fields["name"] != "String" {
		t.Errorf("fields not derived from stats: %+v", tj.VectorLayers)
	}
	if tj.VectorLayers[0].Description == "" {
		t.Error("vector layer description missing")
	}
}
