package gomvt

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// vector_tile.proto 2.1 field numbers.
const (
	tileLayersField = 3

	layerNameField     = 1
	layerFeaturesField = 2
	layerKeysField     = 3
	layerValuesField   = 4
	layerExtentField   = 5
	layerVersionField  = 15

	featureIDField       = 1
	featureTagsField     = 2
	featureTypeField     = 3
	featureGeometryField = 4

	valueStringField = 1
	valueDoubleField = 3
	valueIntField    = 4
	valueBoolField   = 7
)

//marshalTile serializes a tile to its canonical vector_tile.proto bytes.
//Fields are written in field-number order and repeated integer fields are
//packed, so the output is byte-identical to what a standard protobuf
//encoder produces for the same tile.
func marshalTile(tile *MVTTile) []byte {
	var buf []byte
	for i := range tile.Layers {
		buf = protowire.AppendTag(buf, tileLayersField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, marshalLayer(&tile.Layers[i]))
	}
	return buf
}

func marshalLayer(layer *MVTLayer) []byte {
	var buf []byte
	buf = protowire.AppendTag(buf, layerNameField, protowire.BytesType)
	buf = protowire.AppendString(buf, layer.Name)
	for i := range layer.Features {
		buf = protowire.AppendTag(buf, layerFeaturesField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, marshalFeature(&layer.Features[i]))
	}
	for _, key := range layer.Keys {
		buf = protowire.AppendTag(buf, layerKeysField, protowire.BytesType)
		buf = protowire.AppendString(buf, key)
	}
	for i := range layer.Values {
		buf = protowire.AppendTag(buf, layerValuesField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, marshalValue(&layer.Values[i]))
	}
	buf = protowire.AppendTag(buf, layerExtentField, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(layer.Extent))
	buf = protowire.AppendTag(buf, layerVersionField, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(layer.Version))
	return buf
}

func marshalFeature(f *MVTFeature) []byte {
	var buf []byte
	if f.HasID {
		buf = protowire.AppendTag(buf, featureIDField, protowire.VarintType)
		buf = protowire.AppendVarint(buf, f.ID)
	}
	if len(f.Tags) > 0 {
		buf = protowire.AppendTag(buf, featureTagsField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, packUint32s(f.Tags))
	}
	buf = protowire.AppendTag(buf, featureTypeField, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(f.Type))
	if len(f.Geometry) > 0 {
		buf = protowire.AppendTag(buf, featureGeometryField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, packUint32s(f.Geometry))
	}
	return buf
}

func marshalValue(v *MVTValue) []byte {
	var buf []byte
	switch v.Kind {
	case mvtString:
		buf = protowire.AppendTag(buf, valueStringField, protowire.BytesType)
		buf = protowire.AppendString(buf, v.Str)
	case mvtDouble:
		buf = protowire.AppendTag(buf, valueDoubleField, protowire.Fixed64Type)
		buf = protowire.AppendFixed64(buf, math.Float64bits(v.Double))
	case mvtInt:
		buf = protowire.AppendTag(buf, valueIntField, protowire.VarintType)
		buf = protowire.AppendVarint(buf, uint64(v.Int))
	case mvtBool:
		buf = protowire.AppendTag(buf, valueBoolField, protowire.VarintType)
		var b uint64
		if v.Bool {
			b = 1
		}
		buf = protowire.AppendVarint(buf, b)
	}
	return buf
}

func packUint32s(vals []uint32) []byte {
	buf := make([]byte, 0, len(vals))
	for _, v := range vals {
		buf = protowire.AppendVarint(buf, uint64(v))
	}
	return buf
}
