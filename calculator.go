package main

import (
	"context"
	"fmt"
	"time"

	"github.com/levigross/grequests"

	"ppgain/perf"
)

// Calculator turns a raw beatmap plus a resolved performance input into a
// PP value. The computation itself (difficulty attributes, star rating)
// lives behind this boundary; failures come back unchanged.
type Calculator interface {
	Compute(ctx context.Context, beatmap []byte, input perf.Input) (float64, error)
}

// HTTPCalculator talks to a performance server exposing POST /calculate.
type HTTPCalculator struct {
	URL string
}

// calcRequest is the performance server's input. Beatmap bytes ride as
// base64 via encoding/json. The hit slot names match the server's
// vocabulary; perf.Input.Hits owns the translation into them.
type calcRequest struct {
	Beatmap []byte `json:"beatmap"`
	Mode    string `json:"mode"`
	Mods    uint32 `json:"mods"`

	Combo *uint32 `json:"combo,omitempty"`

	Accuracy *float64 `json:"accuracy,omitempty"`

	N300          *uint32 `json:"n300,omitempty"`
	N100          *uint32 `json:"n100,omitempty"`
	N50           *uint32 `json:"n50,omitempty"`
	Geki          *uint32 `json:"n_geki,omitempty"`
	Katu          *uint32 `json:"n_katu,omitempty"`
	LargeTickHits *uint32 `json:"large_tick_hits,omitempty"`
	SmallTickHits *uint32 `json:"small_tick_hits,omitempty"`
	Misses        *uint32 `json:"misses,omitempty"`
}

type calcResponse struct {
	PP    float64 `json:"pp"`
	Error string  `json:"error,omitempty"`
}

func (c *HTTPCalculator) Compute(ctx context.Context, beatmap []byte, input perf.Input) (float64, error) {
	req := calcRequest{
		Beatmap: beatmap,
		Mode:    input.Mode.APIName(),
		Mods:    input.Mods,
		Combo:   input.Combo,
	}
	if hits, ok := input.Hits(); ok {
		req.N300 = hits.N300
		req.N100 = hits.N100
		req.N50 = hits.N50
		req.Geki = hits.Geki
		req.Katu = hits.Katu
		req.LargeTickHits = hits.LargeTickHits
		req.SmallTickHits = hits.SmallTickHits
		misses := hits.Misses
		req.Misses = &misses
	} else if simple, ok := input.SimpleScore(); ok {
		acc := simple.Accuracy
		misses := simple.Misses
		req.Accuracy = &acc
		req.Misses = &misses
	}

	resp, err := grequests.Post(c.URL+"/calculate", grequests.FromRequestOptions(&grequests.RequestOptions{
		Context:        ctx,
		JSON:           req,
		Headers:        map[string]string{"Accept": "application/json"},
		RequestTimeout: 2 * time.Minute,
	}))
	if err != nil {
		return 0, fmt.Errorf("call performance server: %w", err)
	}
	defer resp.Close()

	if !resp.Ok {
		return 0, fmt.Errorf("performance server error: status %d, body: %s", resp.StatusCode, resp.String())
	}

	var out calcResponse
	if err := resp.JSON(&out); err != nil {
		return 0, fmt.Errorf("decode performance server response: %w", err)
	}
	if out.Error != "" {
		return 0, fmt.Errorf("performance server rejected the play: %s", out.Error)
	}
	return out.PP, nil
}
