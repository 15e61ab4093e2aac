package gomvt

//LayerContext per-layer dictionary cache for key/value interning.
//One instance lives for exactly one layer and is discarded when the next
//layer begins, so every layer's dictionaries start at index 0 and concurrent
//tile encodes never share state.
type LayerContext struct {
	Keys     []string
	Values   []MVTValue
	Keymap   map[string]uint32
	Valuemap map[MVTValue]uint32
}

//NewLayerContext fresh dictionary cache
func NewLayerContext() *LayerContext {
	return &LayerContext{
		Keymap:   make(map[string]uint32),
		Valuemap: make(map[MVTValue]uint32),
	}
}

//internKey returns the dictionary index for key, appending it on first use.
//Indices are 0-based in first-seen order.
func (ctx *LayerContext) internKey(key string) uint32 {
	if idx, ok := ctx.Keymap[key]; ok {
		return idx
	}
	idx := uint32(len(ctx.Keys))
	ctx.Keys = append(ctx.Keys, key)
	ctx.Keymap[key] = idx
	return idx
}

//internValue returns the dictionary index for val, appending it on first
//use. The MVTValue struct itself is the cache key, so dedup equality is the
//(kind, representation) pair: a double 1 and an int 1 stay distinct entries.
func (ctx *LayerContext) internValue(val MVTValue) uint32 {
	if idx, ok := ctx.Valuemap[val]; ok {
		return idx
	}
	idx := uint32(len(ctx.Values))
	ctx.Values = append(ctx.Values, val)
	ctx.Valuemap[val] = idx
	return idx
}
