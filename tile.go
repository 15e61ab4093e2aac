package gomvt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
)

const (
	//DefaultExtent default tile-local coordinate space
	DefaultExtent = 4096
	//DefaultVersion wire format version
	DefaultVersion = 2
	//DefaultLayerName layer name used when an assignment entry has none
	DefaultLayerName = "geojson"
	//TileExtension canonical tile file extension
	TileExtension = "mvt"
)

//Transformer encodes tiled layer assignments into vector tile buffers.
//Configuration is read-only after construction; concurrent EncodeTile calls
//are safe as long as Stats is nil, since each call owns its dictionary
//caches.
type Transformer struct {
	LayerName string
	Extent    uint32
	Version   uint32

	// Stats, when non-nil, accumulates per-layer attribute statistics
	// across encodes for TileJSON/metadata generation. Enabling it ties
	// the Transformer to one goroutine.
	Stats map[string]*LayerStats
}

//NewTransformer a Transformer with standard defaults
func NewTransformer(layerName string) *Transformer {
	if layerName == "" {
		layerName = DefaultLayerName
	}
	return &Transformer{
		LayerName: layerName,
		Extent:    DefaultExtent,
		Version:   DefaultVersion,
	}
}

//EnableStats switches on attribute statistics collection.
func (t *Transformer) EnableStats() {
	if t.Stats == nil {
		t.Stats = make(map[string]*LayerStats)
	}
}

func (t *Transformer) statsFor(name string) *LayerStats {
	if t.Stats == nil {
		return nil
	}
	s, ok := t.Stats[name]
	if !ok {
		s = NewLayerStats()
		t.Stats[name] = s
	}
	return s
}

//assemble builds the tile container from a layer assignment. Entries with
//no features are omitted entirely rather than emitted as empty layers.
//Layers are encoded in sorted name order so identical assignments always
//assemble identically.
func (t *Transformer) assemble(layers map[string]*TiledLayer) (*MVTTile, error) {
	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	sort.Strings(names)

	tile := &MVTTile{}
	for _, name := range names {
		in := layers[name]
		if in == nil || len(in.Features) == 0 {
			continue
		}
		src := *in
		if src.Name == "" {
			src.Name = name
		}
		if src.Version == 0 {
			src.Version = t.Version
		}
		if src.Extent == 0 {
			src.Extent = t.Extent
		}
		layer, err := encodeLayer(src, t.statsFor(src.Name))
		if err != nil {
			return nil, err
		}
		// The skip policy may have dropped every feature; an empty layer
		// is omitted, not emitted.
		if len(layer.Features) == 0 {
			log.Warnf("layer %q: no encodable features, omitting", src.Name)
			continue
		}
		tile.Layers = append(tile.Layers, layer)
	}
	return tile, nil
}

//EncodeTile encodes a layer assignment into one serialized tile buffer.
//The call is pure for a fixed assignment: identical input produces
//byte-identical output.
func (t *Transformer) EncodeTile(layers map[string]*TiledLayer) ([]byte, error) {
	tile, err := t.assemble(layers)
	if err != nil {
		return nil, err
	}
	return marshalTile(tile), nil
}

//EncodeLayer encodes a single feature set under the Transformer's default
//layer name, the common single-layer case.
func (t *Transformer) EncodeLayer(features []TiledFeature) ([]byte, error) {
	return t.EncodeTile(map[string]*TiledLayer{
		t.LayerName: {Features: features},
	})
}

//WriteTile encodes a layer assignment and writes the buffer to path,
//creating parent directories as needed. Returns the absolute path written.
//The buffer is written in one shot after a successful encode, so a failed
//encode never leaves a partial tile behind.
func (t *Transformer) WriteTile(layers map[string]*TiledLayer, path string) (string, error) {
	data, err := t.EncodeTile(layers)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, data, 0644); err != nil {
		return "", fmt.Errorf("write tile %s: %w", abs, err)
	}
	log.Debugf("wrote tile %s (%d bytes)", abs, len(data))
	return abs, nil
}
