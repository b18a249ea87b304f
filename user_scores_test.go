package main

import (
	"encoding/json"
	"testing"
)

func TestCollectPPsDropsNull(t *testing.T) {
	body := `[
		{"id": 1, "pp": 250.5, "mode": "osu"},
		{"id": 2, "pp": null, "mode": "osu"},
		{"id": 3, "pp": 100.0, "mode": "osu"}
	]`
	var scores []Score
	if err := json.Unmarshal([]byte(body), &scores); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	pps := collectPPs(scores)
	if len(pps) != 2 || pps[0] != 250.5 || pps[1] != 100.0 {
		t.Fatalf("collectPPs = %v", pps)
	}
}

func TestCollectPPsEmpty(t *testing.T) {
	if got := collectPPs(nil); len(got) != 0 {
		t.Fatalf("collectPPs(nil) = %v", got)
	}
}
