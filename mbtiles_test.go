package gomvt

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"testing"
)

func TestWriteMBTiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mbtiles")
	tiles := []EncodedTile{
		{Z: 1, X: 0, Y: 0, Data: []byte{0x1A, 0x00}},
		{Z: 1, X: 1, Y: 1, Data: []byte{0x1A, 0x01}},
	}
	meta := map[string]string{"name": "geojson", "format": "pbf"}

	if err := WriteMBTiles(path, tiles, meta); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	// XYZ y=0 at z=1 lands in TMS row 1
	var data []byte
	err = db.QueryRow(
		"select tile_data from tiles where zoom_level = 1 and tile_column = 0 and tile_row = 1",
	).Scan(&data)
	if err != nil {
		t.Fatalf("flipped tile row not found: %v", err)
	}
	if !bytes.Equal(data, tiles[0].Data) {
		t.Errorf("tile data = % X, want % X", data, tiles[0].Data)
	}

	var format string
	if err := db.QueryRow("select value from metadata where name = 'format'").Scan(&format); err != nil {
		t.Fatal(err)
	}
	if format != "pbf" {
		t.Errorf("metadata format = %q, want pbf", format)
	}
}
