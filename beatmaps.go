package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/levigross/grequests"
)

// BeatmapInfo is the slice of the osu! API v2 beatmap object needed to
// locate the owning set and tell difficulties apart.
type BeatmapInfo struct {
	ID               int     `json:"id"`
	BeatmapsetID     int     `json:"beatmapset_id"`
	Mode             string  `json:"mode"`
	Status           string  `json:"status"`
	Version          string  `json:"version"`
	DifficultyRating float64 `json:"difficulty_rating"`
	Beatmapset       struct {
		ID           int    `json:"id"`
		Artist       string `json:"artist"`
		Title        string `json:"title"`
		Availability struct {
			DownloadDisabled bool `json:"download_disabled"`
		} `json:"availability"`
	} `json:"beatmapset"`
}

// LookupBeatmap fetches metadata for a single beatmap id via the bulk
// ids[] endpoint.
func LookupBeatmap(ctx context.Context, tok *TokenResponse, id int) (*BeatmapInfo, error) {
	params := url.Values{}
	params.Add("ids[]", fmt.Sprintf("%d", id))

	releaseSlot := acquireRequestSlot()
	throttleAPI()
	defer releaseSlot()

	resp, err := grequests.Get("https://osu.ppy.sh/api/v2/beatmaps?"+params.Encode(), grequests.FromRequestOptions(&grequests.RequestOptions{
		Context: ctx,
		Headers: map[string]string{
			"Accept":        "application/json",
			"Authorization": tok.authHeader(),
		},
		RequestTimeout: 2 * time.Minute,
	}))
	if err != nil {
		return nil, fmt.Errorf("fetch beatmap %d: %w", id, err)
	}
	defer resp.Close()

	if !resp.Ok {
		return nil, fmt.Errorf("beatmap lookup failed: status %d, body: %s", resp.StatusCode, resp.String())
	}

	var out struct {
		Beatmaps []BeatmapInfo `json:"beatmaps"`
	}
	if err := resp.JSON(&out); err != nil {
		return nil, fmt.Errorf("decode beatmap lookup: %w", err)
	}
	for i := range out.Beatmaps {
		if out.Beatmaps[i].ID == id {
			return &out.Beatmaps[i], nil
		}
	}
	return nil, fmt.Errorf("beatmap %d not found", id)
}
