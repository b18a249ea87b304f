package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/levigross/grequests"
)

var rateLimitedFrom atomic.Pointer[time.Time]

func rateLimitedCooldown() time.Duration {
	lastLimit := rateLimitedFrom.Load()
	now := time.Now()
	rateLimitedFrom.CompareAndSwap(nil, &now)
	if lastLimit != nil {
		return max(time.Minute, time.Since(*lastLimit))
	}
	return time.Minute
}

// FetchOsuFile obtains the raw .osu file for a beatmap: cache first, then
// the direct endpoint, then (when an osu_session cookie is configured) a
// full beatmapset download. The cache may be nil.
func FetchOsuFile(ctx context.Context, cfg Config, tok *TokenResponse, cache *BeatmapCache, mapID int) ([]byte, error) {
	if cache != nil {
		if data, ok := cache.Get(mapID); ok {
			return data, nil
		}
	}

	data, err := downloadOsuFile(ctx, mapID)
	if err == nil && looksLikeOsuFile(data) {
		if cache != nil {
			if cerr := cache.Put(mapID, data); cerr != nil {
				fmt.Fprintln(os.Stderr, cerr)
			}
		}
		return data, nil
	}

	if cfg.Session == "" {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("beatmap %d: direct download returned no .osu content (set an osu_session cookie to enable the beatmapset fallback)", mapID)
	}

	info, err := LookupBeatmap(ctx, tok, mapID)
	if err != nil {
		return nil, err
	}
	if info.Beatmapset.Availability.DownloadDisabled {
		return nil, fmt.Errorf("beatmapset %d has downloads disabled", info.BeatmapsetID)
	}

	files, err := downloadBeatmapset(ctx, cfg, info.BeatmapsetID)
	if err != nil {
		return nil, err
	}

	var picked []byte
	for _, raw := range files {
		id, ok := osuFileBeatmapID(raw)
		if !ok {
			continue
		}
		if cache != nil {
			if cerr := cache.Put(id, raw); cerr != nil {
				fmt.Fprintln(os.Stderr, cerr)
			}
		}
		if id == mapID {
			picked = raw
		}
	}
	if picked == nil {
		return nil, fmt.Errorf("beatmapset %d contains no difficulty with beatmap id %d", info.BeatmapsetID, mapID)
	}
	return picked, nil
}

func downloadOsuFile(ctx context.Context, mapID int) ([]byte, error) {
	url := fmt.Sprintf("https://osu.ppy.sh/osu/%d", mapID)

	throttleAPI()
	resp, err := grequests.Get(url, grequests.FromRequestOptions(&grequests.RequestOptions{
		Context:        ctx,
		RequestTimeout: 2 * time.Minute,
	}))
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Close()

	if !resp.Ok {
		return nil, fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
	return resp.Bytes(), nil
}

// downloadBeatmapset pulls the .osz archive for a set and returns its
// .osu entries by file name. The endpoint soft-bans with a HTML "Slow
// down, play more." page, which gets a growing cooldown before retrying.
func downloadBeatmapset(ctx context.Context, cfg Config, setID int) (map[string][]byte, error) {
	releaseSlot := acquireRequestSlot()
	defer releaseSlot()

	var raw []byte
	for {
		var err error
		raw, err = downloadBeatmapsetBytes(ctx, cfg, setID)
		if err != nil && strings.Contains(err.Error(), "connection refused") {
			cooldown := rateLimitedCooldown()
			fmt.Fprintf(os.Stderr, "connection refused, backing off %s\n", cooldown)
			if serr := sleepCtx(ctx, cooldown); serr != nil {
				return nil, serr
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		if bytes.Contains(raw, []byte("Slow down, play more.")) {
			cooldown := rateLimitedCooldown()
			fmt.Fprintf(os.Stderr, "rate limited by osu.ppy.sh, backing off %s\n", cooldown)
			if serr := sleepCtx(ctx, cooldown); serr != nil {
				return nil, serr
			}
			continue
		}
		rateLimitedFrom.Store(nil)
		break
	}

	zipReader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("open osz for set %d: %w", setID, err)
	}

	osuFiles := make(map[string][]byte)
	for _, file := range zipReader.File {
		if !strings.HasSuffix(file.Name, ".osu") || file.FileInfo().IsDir() {
			continue
		}
		if strings.ContainsAny(file.Name, `/\`) {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in osz: %w", file.Name, err)
		}
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s in osz: %w", file.Name, err)
		}
		osuFiles[file.Name] = buf.Bytes()
	}
	if len(osuFiles) == 0 {
		return nil, fmt.Errorf("no .osu files in beatmapset %d", setID)
	}
	return osuFiles, nil
}

func downloadBeatmapsetBytes(ctx context.Context, cfg Config, setID int) ([]byte, error) {
	url := fmt.Sprintf("https://osu.ppy.sh/beatmapsets/%d/download", setID)

	throttleAPI()
	fmt.Printf("downloading beatmapset %d\n", setID)
	resp, err := grequests.Get(url, grequests.FromRequestOptions(&grequests.RequestOptions{
		Context: ctx,
		Headers: map[string]string{
			"Referer": fmt.Sprintf("https://osu.ppy.sh/beatmapsets/%d", setID),
		},
		Cookies: []*http.Cookie{
			{Name: "osu_session", Value: cfg.Session},
		},
		RequestTimeout: 10 * time.Minute,
	}))
	if err != nil {
		return nil, err
	}
	defer resp.Close()
	return resp.Bytes(), nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
