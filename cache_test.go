package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestBeatmapCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beatmaps.db")
	cache, err := OpenBeatmapCache(path)
	if err != nil {
		t.Fatalf("OpenBeatmapCache: %v", err)
	}
	defer cache.Close()

	if _, ok := cache.Get(42); ok {
		t.Fatalf("empty cache reported a hit")
	}
	data := []byte(sampleOsu)
	if err := cache.Put(42, data); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := cache.Get(42)
	if !ok || !bytes.Equal(got, data) {
		t.Fatalf("Get after Put = %v, %v", ok, got)
	}

	// Replacing an entry keeps the newest bytes.
	if err := cache.Put(42, []byte("updated")); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	got, _ = cache.Get(42)
	if string(got) != "updated" {
		t.Fatalf("replace kept stale bytes: %q", got)
	}
}
