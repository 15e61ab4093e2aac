package gomvt

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

//TileFor locates the XYZ tile containing a geographic coordinate at the
//given zoom.
func TileFor(lon, lat float64, zoom int) (z int, x, y uint32) {
	t := maptile.At(orb.Point{lon, lat}, maptile.Zoom(zoom))
	return int(t.Z), t.X, t.Y
}

//TileBounds the WGS84 bound of an XYZ tile
func TileBounds(z int, x, y uint32) orb.Bound {
	return maptile.New(x, y, maptile.Zoom(z)).Bound()
}
