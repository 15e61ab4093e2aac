// Package gomvt encodes tiled feature collections into Mapbox Vector Tile
// (MVT) wire buffers and writes them to mbtiles archives or tile pyramids.
//
// Input geometry is expected to be tile-local already: projected, clipped
// and simplified by an external tile index, with coordinates in the layer's
// 0..extent integer space.
package gomvt

type mvtOperation uint32

const (
	mvtMoveto    mvtOperation = 1
	mvtLineto    mvtOperation = 2
	mvtClosepath mvtOperation = 7
)

// Wire value kinds, matching the Value oneof of vector_tile.proto.
const (
	mvtString = iota
	mvtDouble
	mvtInt
	mvtBool
)

//GeomType vector tile geometry type
type GeomType uint8

const (
	//GeomUnknown unknown geometry
	GeomUnknown GeomType = 0
	//GeomPoint point/multipoint
	GeomPoint GeomType = 1
	//GeomLinestring linestring/multilinestring
	GeomLinestring GeomType = 2
	//GeomPolygon polygon/multipolygon
	GeomPolygon GeomType = 3
)

//MVTValue tagged wire value; exactly one variant is populated.
//The struct is comparable so it serves directly as a dedup map key:
//equality is (kind, representation), never cross-kind numeric equality.
type MVTValue struct {
	Kind   int
	Str    string
	Double float64
	Int    int64
	Bool   bool
}

//MVTFeature one encoded feature
type MVTFeature struct {
	ID       uint64
	HasID    bool
	Type     GeomType
	Tags     []uint32 // flattened (key index, value index) pairs
	Geometry []uint32 // command stream
}

//MVTLayer one encoded layer with its frozen dictionaries
type MVTLayer struct {
	Version  uint32
	Name     string
	Extent   uint32
	Features []MVTFeature
	Keys     []string
	Values   []MVTValue
}

//MVTTile top-level tile container
type MVTTile struct {
	Layers []MVTLayer
}

//TilePoint tile-local integer coordinate
type TilePoint struct {
	X, Y int64
}

//TiledFeature one feature as handed over by the external tile index.
//Geometry is a ring/point sequence in tile-local coordinates; for point
//features the index may deliver one coordinate per ring or a single ring.
type TiledFeature struct {
	ID       interface{}
	Type     GeomType
	Tags     map[string]interface{}
	Geometry [][]TilePoint
}

//TiledLayer the per-tile feature set of one named layer
type TiledLayer struct {
	Name     string
	Version  uint32
	Extent   uint32
	Features []TiledFeature
}
