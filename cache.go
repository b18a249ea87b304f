package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// BeatmapCache stores raw .osu files by beatmap id so repeated runs
// against the same map skip the download.
type BeatmapCache struct {
	db *sql.DB
}

// OpenBeatmapCache opens or creates the SQLite cache at path.
func OpenBeatmapCache(path string) (*BeatmapCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	c := &BeatmapCache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *BeatmapCache) migrate() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS beatmaps (
			id INTEGER PRIMARY KEY,
			data BLOB NOT NULL,
			fetched_at INTEGER NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("migrate beatmap cache: %w", err)
	}
	return nil
}

// Get returns the cached .osu bytes for a beatmap id, if present.
func (c *BeatmapCache) Get(id int) ([]byte, bool) {
	var data []byte
	err := c.db.QueryRow(`SELECT data FROM beatmaps WHERE id = ?`, id).Scan(&data)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put stores the .osu bytes for a beatmap id, replacing any prior copy.
func (c *BeatmapCache) Put(id int, data []byte) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO beatmaps (id, data, fetched_at) VALUES (?, ?, ?)`,
		id, data, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache beatmap %d: %w", id, err)
	}
	return nil
}

func (c *BeatmapCache) Close() error {
	return c.db.Close()
}
