package main

import (
	"slices"
	"testing"

	"ppgain/perf"
)

func TestParseOptionalCount(t *testing.T) {
	if v, err := parseOptionalCount("combo", ""); err != nil || v != nil {
		t.Fatalf("empty combo = %v, %v", v, err)
	}
	v, err := parseOptionalCount("combo", " 1234 ")
	if err != nil || v == nil || *v != 1234 {
		t.Fatalf("combo 1234 = %v, %v", v, err)
	}
	for _, raw := range []string{"-1", "12.5", "abc"} {
		if _, err := parseOptionalCount("combo", raw); err == nil {
			t.Fatalf("combo %q accepted", raw)
		}
	}
}

func TestNormalizeAcronyms(t *testing.T) {
	got := normalizeAcronyms([]string{" hd", "DT", "", "4k "})
	want := []string{"HD", "DT", "4K"}
	if !slices.Equal(got, want) {
		t.Fatalf("normalizeAcronyms = %v, want %v", got, want)
	}
}

func TestRejectForeignCountFlags(t *testing.T) {
	cmd := detailedCmd
	if err := cmd.Flags().Set("fruits", "10"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	t.Cleanup(func() {
		cmd.Flags().Set("fruits", "0")
		cmd.Flag("fruits").Changed = false
	})

	if err := rejectForeignCountFlags(cmd, perf.ModeMania); err == nil {
		t.Fatalf("--fruits accepted for mania")
	}
	if err := rejectForeignCountFlags(cmd, perf.ModeCatch); err != nil {
		t.Fatalf("--fruits rejected for catch: %v", err)
	}
}
