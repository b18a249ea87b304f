package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/levigross/grequests"

	"ppgain/perf"
)

// Score is the slice of the osu! API v2 score object this tool reads. PP
// is a pointer because loved and very old scores come back with null pp;
// those entries are dropped before weighting.
type Score struct {
	ID       int64    `json:"id"`
	Accuracy float64  `json:"accuracy"`
	MaxCombo int      `json:"max_combo"`
	Mode     string   `json:"mode"`
	Mods     []string `json:"mods"`
	PP       *float64 `json:"pp"`
	Rank     string   `json:"rank"`
	Beatmap  struct {
		ID               int     `json:"id"`
		Version          string  `json:"version"`
		DifficultyRating float64 `json:"difficulty_rating"`
	} `json:"beatmap"`
	Beatmapset struct {
		Artist string `json:"artist"`
		Title  string `json:"title"`
	} `json:"beatmapset"`
	Weight struct {
		Percentage float64 `json:"percentage"`
		PP         float64 `json:"pp"`
	} `json:"weight"`
}

type bestScoresQuery struct {
	Mode   string `url:"mode"`
	Limit  int    `url:"limit"`
	Offset int    `url:"offset"`
}

// GetBestScores fetches a user's top plays for the given mode. The user
// argument is a numeric id or a username; usernames are resolved first.
func GetBestScores(ctx context.Context, tok *TokenResponse, user string, mode perf.GameMode) ([]Score, error) {
	user = strings.TrimSpace(user)
	userID, err := strconv.Atoi(user)
	if err != nil {
		userID, err = lookupUserID(ctx, tok, user)
		if err != nil {
			return nil, err
		}
	}

	url := fmt.Sprintf("https://osu.ppy.sh/api/v2/users/%d/scores/best", userID)

	releaseSlot := acquireRequestSlot()
	throttleAPI()
	defer releaseSlot()

	resp, err := grequests.Get(url, grequests.FromRequestOptions(&grequests.RequestOptions{
		Context:     ctx,
		QueryStruct: bestScoresQuery{Mode: mode.APIName(), Limit: 100, Offset: 0},
		Headers: map[string]string{
			"Accept":        "application/json",
			"Authorization": tok.authHeader(),
		},
		RequestTimeout: 2 * time.Minute,
	}))
	if err != nil {
		return nil, fmt.Errorf("fetch best scores: %w", err)
	}
	defer resp.Close()

	if !resp.Ok {
		return nil, fmt.Errorf("best scores request failed: status %d, body: %s", resp.StatusCode, resp.String())
	}

	var scores []Score
	if err := resp.JSON(&scores); err != nil {
		return nil, fmt.Errorf("decode best scores: %w", err)
	}
	return scores, nil
}

func lookupUserID(ctx context.Context, tok *TokenResponse, username string) (int, error) {
	url := fmt.Sprintf("https://osu.ppy.sh/api/v2/users/%s", username)

	releaseSlot := acquireRequestSlot()
	throttleAPI()
	defer releaseSlot()

	resp, err := grequests.Get(url, grequests.FromRequestOptions(&grequests.RequestOptions{
		Context: ctx,
		Params:  map[string]string{"key": "username"},
		Headers: map[string]string{
			"Accept":        "application/json",
			"Authorization": tok.authHeader(),
		},
		RequestTimeout: time.Minute,
	}))
	if err != nil {
		return 0, fmt.Errorf("look up user %q: %w", username, err)
	}
	defer resp.Close()

	if !resp.Ok {
		return 0, fmt.Errorf("user %q not found: status %d", username, resp.StatusCode)
	}

	var u struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
	}
	if err := resp.JSON(&u); err != nil {
		return 0, fmt.Errorf("decode user lookup: %w", err)
	}
	if u.ID == 0 {
		return 0, fmt.Errorf("user %q resolved to no id", username)
	}
	return u.ID, nil
}

// collectPPs extracts the present PP values in list order. Scores the API
// marks with null pp carry no weighting information.
func collectPPs(scores []Score) []float64 {
	pps := make([]float64, 0, len(scores))
	for _, s := range scores {
		if s.PP != nil {
			pps = append(pps, *s.PP)
		}
	}
	return pps
}
