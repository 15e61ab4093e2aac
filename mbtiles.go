package gomvt

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // import sqlite3 driver

	log "github.com/sirupsen/logrus"
)

//mbtilesOpen opens (creating if needed) an mbtiles database and prepares
//its schema. Pragmas trade durability for bulk-write speed; an interrupted
//export is rebuilt from scratch anyway.
func mbtilesOpen(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	for _, stmt := range []string{
		"PRAGMA synchronous=0",
		"PRAGMA locking_mode=EXCLUSIVE",
		"PRAGMA journal_mode=DELETE",
		"create table if not exists tiles (zoom_level integer, tile_column integer, tile_row integer, tile_data blob);",
		"create table if not exists metadata (name text, value text);",
		"create unique index if not exists name on metadata (name);",
		"create unique index if not exists tile_index on tiles(zoom_level, tile_column, tile_row);",
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("mbtiles init %q: %w", stmt, err)
		}
	}
	return db, nil
}

func mbtilesClose(db *sql.DB) error {
	if db == nil {
		return nil
	}
	if _, err := db.Exec("ANALYZE;"); err != nil {
		return err
	}
	return db.Close()
}

//mbtilesWriteTile stores one encoded tile. MBTiles rows are TMS-numbered,
//so the XYZ row is flipped: (1<<z)-1-y.
func mbtilesWriteTile(db *sql.DB, z int, x, y uint32, data []byte) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}
	row := uint32(1<<uint(z)) - 1 - y
	_, err := db.Exec("insert into tiles (zoom_level, tile_column, tile_row, tile_data) values (?, ?, ?, ?);",
		z, x, row, data)
	if err != nil {
		return fmt.Errorf("mbtiles tile %d/%d/%d: %w", z, x, y, err)
	}
	return nil
}

func mbtilesWriteMetadata(db *sql.DB, meta map[string]string) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}
	for name, value := range meta {
		_, err := db.Exec("insert or replace into metadata (name, value) values (?, ?);", name, value)
		if err != nil {
			return fmt.Errorf("mbtiles metadata %q: %w", name, err)
		}
	}
	return nil
}

//WriteMBTiles exports a set of encoded tiles plus metadata to an mbtiles
//archive at path.
func WriteMBTiles(path string, tiles []EncodedTile, meta map[string]string) error {
	db, err := mbtilesOpen(path)
	if err != nil {
		return err
	}
	for _, t := range tiles {
		if err := mbtilesWriteTile(db, t.Z, t.X, t.Y, t.Data); err != nil {
			db.Close()
			return err
		}
	}
	if len(meta) > 0 {
		if err := mbtilesWriteMetadata(db, meta); err != nil {
			db.Close()
			return err
		}
	}
	log.Debugf("wrote %d tiles to %s", len(tiles), path)
	return mbtilesClose(db)
}
