package gomvt

import (
	"math"
	"sort"
)

const maxStatsSampleValues = 1000

//AttributeStats per-key statistics gathered while encoding a layer
type AttributeStats struct {
	KindMask int // bitmask of mvt* value kinds seen
	Min      float64
	Max      float64
	Samples  []MVTValue // bounded, deduplicated, sorted by representation
}

//LayerStats attribute statistics for one layer across all encoded tiles.
//Feeds the field listing of TileJSON/mbtiles metadata.
type LayerStats struct {
	Attributes map[string]*AttributeStats

	Points   uint
	Lines    uint
	Polygons uint
}

//NewLayerStats xx
func NewLayerStats() *LayerStats {
	return &LayerStats{Attributes: make(map[string]*AttributeStats)}
}

//CountGeometry tallies one feature of the given type.
func (s *LayerStats) CountGeometry(typ GeomType) {
	switch typ {
	case GeomPoint:
		s.Points++
	case GeomLinestring:
		s.Lines++
	case GeomPolygon:
		s.Polygons++
	}
}

//Add records one resolved attribute value under key.
func (s *LayerStats) Add(key string, val MVTValue) {
	st, ok := s.Attributes[key]
	if !ok {
		st = &AttributeStats{Min: math.Inf(1), Max: math.Inf(-1)}
		s.Attributes[key] = st
	}
	st.KindMask |= 1 << uint(val.Kind)

	var num float64
	hasNum := false
	switch val.Kind {
	case mvtDouble:
		num, hasNum = val.Double, true
	case mvtInt:
		num, hasNum = float64(val.Int), true
	}
	if hasNum {
		if num < st.Min {
			st.Min = num
		}
		if num > st.Max {
			st.Max = num
		}
	}

	pos := sort.Search(len(st.Samples), func(i int) bool {
		return !sampleLess(st.Samples[i], val)
	})
	if pos < len(st.Samples) && st.Samples[pos] == val {
		return
	}
	if len(st.Samples) >= maxStatsSampleValues {
		return
	}
	st.Samples = append(st.Samples, MVTValue{})
	copy(st.Samples[pos+1:], st.Samples[pos:])
	st.Samples[pos] = val
}

func sampleLess(a, b MVTValue) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	switch a.Kind {
	case mvtString:
		return a.Str < b.Str
	case mvtDouble:
		return a.Double < b.Double
	case mvtInt:
		return a.Int < b.Int
	case mvtBool:
		return !a.Bool && b.Bool
	}
	return false
}

//FieldTypes reduces the per-key kind masks to TileJSON field type names:
//String, Number, Boolean, or Mixed when a key was seen under several kinds.
func (s *LayerStats) FieldTypes() map[string]string {
	fields := make(map[string]string, len(s.Attributes))
	for key, st := range s.Attributes {
		fields[key] = fieldTypeName(st.KindMask)
	}
	return fields
}

func fieldTypeName(mask int) string {
	switch mask {
	case 1 << mvtString:
		return "String"
	case 1 << mvtDouble, 1 << mvtInt, 1<<mvtDouble | 1<<mvtInt:
		return "Number"
	case 1 << mvtBool:
		return "Boolean"
	default:
		return "Mixed"
	}
}
