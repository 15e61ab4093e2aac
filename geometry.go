package gomvt

const cmdBits = 3

//commandInteger packs an operation and its repeat count into one command
//integer: (count << 3) | (op & 0x7). Counts above 2^29-1 are not
//representable; the tile index never produces rings that large.
func commandInteger(op mvtOperation, count int) uint32 {
	return uint32(count)<<cmdBits | uint32(op)&0x7
}

//decodeCommand splits a command integer back into operation and count.
func decodeCommand(c uint32) (mvtOperation, int) {
	return mvtOperation(c & 0x7), int(c >> cmdBits)
}

//zigzag maps a signed 32-bit delta onto an unsigned integer so small
//magnitudes of either sign stay small on the wire: (v << 1) ^ (v >> 31),
//with an arithmetic right shift.
func zigzag(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

//unzigzag inverse of zigzag
func unzigzag(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

//cursor running position while encoding one feature. Deltas are always
//relative to the previous encoded point, across ring boundaries too; the
//cursor is never reset within a feature.
type cursor struct {
	x, y int64
}

//appendDelta appends the zigzagged delta from the cursor to p and returns
//the advanced cursor.
func (c cursor) appendDelta(dst []uint32, p TilePoint) ([]uint32, cursor) {
	dx := p.X - c.x
	dy := p.Y - c.y
	dst = append(dst, zigzag(int32(dx)), zigzag(int32(dy)))
	return dst, cursor{c.x + dx, c.y + dy}
}

//appendGeometry encodes a ring/point sequence as a command stream and
//appends it to dst.
//
//Points: all rings are flattened into one point run and emitted as a single
//MoveTo with the run length as its repeat count. Linestrings draw every ring
//point; polygon rings drop their closing duplicate and end with ClosePath,
//which recovers it. Ring closure itself is not re-validated here.
func appendGeometry(dst []uint32, typ GeomType, rings [][]TilePoint) []uint32 {
	cur := cursor{}

	if typ == GeomPoint {
		var points []TilePoint
		for _, ring := range rings {
			points = append(points, ring...)
		}
		if len(points) == 0 {
			return dst
		}
		dst = append(dst, commandInteger(mvtMoveto, len(points)))
		for _, p := range points {
			dst, cur = cur.appendDelta(dst, p)
		}
		return dst
	}

	for _, ring := range rings {
		drawn := len(ring)
		if typ == GeomPolygon {
			drawn--
		}
		if drawn < 1 {
			continue
		}
		dst = append(dst, commandInteger(mvtMoveto, 1))
		dst, cur = cur.appendDelta(dst, ring[0])
		if drawn > 1 {
			dst = append(dst, commandInteger(mvtLineto, drawn-1))
			for _, p := range ring[1:drawn] {
				dst, cur = cur.appendDelta(dst, p)
			}
		}
		if typ == GeomPolygon {
			dst = append(dst, commandInteger(mvtClosepath, 1))
		}
	}
	return dst
}
