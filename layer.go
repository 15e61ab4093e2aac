package gomvt

import (
	"fmt"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"
)

//coerceID turns the tile index's loosely typed feature id into a uint64.
//Ids are optional; anything non-numeric or negative counts as absent.
func coerceID(id interface{}) (uint64, bool) {
	switch t := id.(type) {
	case nil:
		return 0, false
	case uint64:
		return t, true
	case uint:
		return uint64(t), true
	case uint32:
		return uint64(t), true
	case int:
		if t < 0 {
			return 0, false
		}
		return uint64(t), true
	case int32:
		if t < 0 {
			return 0, false
		}
		return uint64(t), true
	case int64:
		if t < 0 {
			return 0, false
		}
		return uint64(t), true
	case float64:
		if t < 0 || t != float64(uint64(t)) {
			return 0, false
		}
		return uint64(t), true
	case string:
		n, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

//encodeFeature encodes one tiled feature against the layer's dictionary
//cache. Tag keys are interned in sorted order so identical input always
//yields byte-identical output. Features whose geometry holds no drawable
//point are skipped with a warning rather than failing the tile; an
//unresolvable tag value fails the whole encode.
func encodeFeature(ctx *LayerContext, in TiledFeature, stats *LayerStats) (MVTFeature, bool, error) {
	f := MVTFeature{Type: in.Type}
	if id, ok := coerceID(in.ID); ok {
		f.ID = id
		f.HasID = true
	} else if in.ID != nil {
		log.Debugf("dropping non-numeric feature id %v", in.ID)
	}

	// Geometry first: a feature with nothing to draw is skipped before it
	// can intern anything into the layer dictionaries.
	f.Geometry = appendGeometry(nil, in.Type, in.Geometry)
	if len(f.Geometry) == 0 {
		return MVTFeature{}, false, nil
	}

	keys := make([]string, 0, len(in.Tags))
	for k := range in.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		val, err := resolveValue(in.Tags[k])
		if err != nil {
			return MVTFeature{}, false, fmt.Errorf("tag %q: %w", k, err)
		}
		f.Tags = append(f.Tags, ctx.internKey(k), ctx.internValue(val))
		if stats != nil {
			stats.Add(k, val)
		}
	}
	return f, true, nil
}

//encodeLayer encodes one named layer. Construction is two-phase: every
//feature is encoded against a fresh dictionary cache first, then the cache
//is frozen into the layer's key/value dictionaries in interning order.
func encodeLayer(in TiledLayer, stats *LayerStats) (MVTLayer, error) {
	layer := MVTLayer{
		Version: in.Version,
		Name:    in.Name,
		Extent:  in.Extent,
	}
	ctx := NewLayerContext()
	for i, feat := range in.Features {
		f, ok, err := encodeFeature(ctx, feat, stats)
		if err != nil {
			return MVTLayer{}, fmt.Errorf("layer %q feature %d: %w", in.Name, i, err)
		}
		if !ok {
			log.Warnf("layer %q feature %d: empty geometry, skipping", in.Name, i)
			continue
		}
		if stats != nil {
			stats.CountGeometry(f.Type)
		}
		layer.Features = append(layer.Features, f)
	}
	layer.Keys = ctx.Keys
	layer.Values = ctx.Values
	return layer, nil
}
