package gomvt

import (
	"reflect"
	"testing"
)

func TestInternDeterminism(t *testing.T) {
	keys := []string{"name", "kind", "name", "rank", "kind"}
	vals := []MVTValue{
		{Kind: mvtString, Str: "a"},
		{Kind: mvtInt, Int: 1},
		{Kind: mvtString, Str: "a"},
	}

	run := func() ([]uint32, []uint32, *LayerContext) {
		ctx := NewLayerContext()
		var ki, vi []uint32
		for _, k := range keys {
			ki = append(ki, ctx.internKey(k))
		}
		for _, v := range vals {
			vi = append(vi, ctx.internValue(v))
		}
		return ki, vi, ctx
	}

	ki1, vi1, ctx1 := run()
	ki2, vi2, _ := run()

	if !reflect.DeepEqual(ki1, ki2) || !reflect.DeepEqual(vi1, vi2) {
		t.Errorf("interning is not deterministic: %v/%v vs %v/%v", ki1, vi1, ki2, vi2)
	}
	if want := []uint32{0, 1, 0, 2, 1}; !reflect.DeepEqual(ki1, want) {
		t.Errorf("key indices = %v, want %v", ki1, want)
	}
	if want := []uint32{0, 1, 0}; !reflect.DeepEqual(vi1, want) {
		t.Errorf("value indices = %v, want %v", vi1, want)
	}
	if want := []string{"name", "kind", "rank"}; !reflect.DeepEqual(ctx1.Keys, want) {
		t.Errorf("keys = %v, want first-seen order %v", ctx1.Keys, want)
	}
}

func TestCrossLayerIsolation(t *testing.T) {
	in := TiledLayer{
		Name: "a",
		Features: []TiledFeature{{
			Type:     GeomPoint,
			Tags:     map[string]interface{}{"shared": "x"},
			Geometry: [][]TilePoint{{{1, 1}}},
		}},
	}
	first, err := encodeLayer(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	in.Name = "b"
	second, err := encodeLayer(in, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, layer := range []MVTLayer{first, second} {
		if len(layer.Keys) != 1 || layer.Keys[0] != "shared" {
			t.Errorf("layer %q keys = %v, want fresh dictionary [shared]", layer.Name, layer.Keys)
		}
		if got := layer.Features[0].Tags; !reflect.DeepEqual(got, []uint32{0, 0}) {
			t.Errorf("layer %q tags = %v, want [0 0]", layer.Name, got)
		}
	}
}

func TestCrossFeatureDedup(t *testing.T) {
	in := TiledLayer{
		Name: "dedup",
		Features: []TiledFeature{
			{Type: GeomPoint, Tags: map[string]interface{}{"name": "x"}, Geometry: [][]TilePoint{{{0, 0}}}},
			{Type: GeomPoint, Tags: map[string]interface{}{"name": "x"}, Geometry: [][]TilePoint{{{1, 1}}}},
		},
	}
	layer, err := encodeLayer(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(layer.Keys) != 1 || len(layer.Values) != 1 {
		t.Errorf("dictionaries not shared across features: keys=%v values=%v", layer.Keys, layer.Values)
	}
	for i, f := range layer.Features {
		if !reflect.DeepEqual(f.Tags, []uint32{0, 0}) {
			t.Errorf("feature %d tags = %v, want [0 0]", i, f.Tags)
		}
	}
}
