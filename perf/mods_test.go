package perf

import (
	"slices"
	"testing"
)

func TestResolveModsKnownBits(t *testing.T) {
	cases := []struct {
		mode GameMode
		sel  []string
		want uint32
	}{
		{ModeOsu, nil, 0},
		{ModeOsu, []string{"DT"}, 64},
		{ModeOsu, []string{"HD", "DT"}, 8 | 64},
		{ModeOsu, []string{"HR", "EZ"}, 16 | 2},
		{ModeOsu, []string{"NC"}, 64 | 512},
		{ModeOsu, []string{"PF"}, 32 | 16384},
		{ModeOsu, []string{"SD", "PF"}, 32 | 16384},
		{ModeMania, []string{"7K", "NF"}, 1 | 1<<18},
		{ModeCatch, []string{"FL"}, 1024},
	}
	for _, c := range cases {
		got := ResolveMods(c.mode, c.sel)
		if got != c.want {
			t.Fatalf("ResolveMods(%v, %v) = %d, want %d", c.mode, c.sel, got, c.want)
		}
	}
}

func TestResolveModsOrderInsensitive(t *testing.T) {
	sel := []string{"HD", "DT", "HR", "FL"}
	want := ResolveMods(ModeOsu, sel)
	perms := [][]string{
		{"DT", "HD", "FL", "HR"},
		{"FL", "HR", "DT", "HD"},
		{"HR", "FL", "HD", "DT"},
	}
	for _, p := range perms {
		if got := ResolveMods(ModeOsu, p); got != want {
			t.Fatalf("permutation %v resolved to %d, want %d", p, got, want)
		}
	}
}

func TestResolveModsRepeatIdempotent(t *testing.T) {
	once := ResolveMods(ModeOsu, []string{"DT", "HD"})
	twice := ResolveMods(ModeOsu, []string{"DT", "HD", "DT", "DT"})
	if once != twice {
		t.Fatalf("repeated acronym changed the mask: %d vs %d", once, twice)
	}
}

func TestResolveModsUnknownIgnored(t *testing.T) {
	if got := ResolveMods(ModeOsu, []string{"??", "XYZ"}); got != 0 {
		t.Fatalf("unknown acronyms produced bits %d", got)
	}
	with := ResolveMods(ModeOsu, []string{"DT", "??"})
	if with != ResolveMods(ModeOsu, []string{"DT"}) {
		t.Fatalf("unknown acronym next to a valid one changed the mask: %d", with)
	}
}

func TestResolveModsFiltersByMode(t *testing.T) {
	// AP and SO are osu!-only, FL has no taiko entry.
	if got := ResolveMods(ModeTaiko, []string{"AP", "SO", "FL"}); got != 0 {
		t.Fatalf("taiko resolution leaked foreign bits %d", got)
	}
	if got := ResolveMods(ModeOsu, []string{"AP"}); got != 512 {
		t.Fatalf("AP in osu! = %d, want 512", got)
	}
}

func TestCatalogAcronymsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Catalog {
		if seen[m.Acronym] {
			t.Fatalf("duplicate acronym %s", m.Acronym)
		}
		seen[m.Acronym] = true
		if len(m.Modes) == 0 {
			t.Fatalf("%s has no applicable modes", m.Acronym)
		}
	}
}

func TestCatalogFor(t *testing.T) {
	for _, mode := range Modes {
		for _, m := range CatalogFor(mode) {
			if !slices.Contains(m.Modes, mode) {
				t.Fatalf("CatalogFor(%v) returned %s which excludes that mode", mode, m.Acronym)
			}
		}
	}
	taiko := CatalogFor(ModeTaiko)
	for _, m := range taiko {
		if m.Acronym == "FL" || m.Acronym == "9K" {
			t.Fatalf("taiko catalog offers %s", m.Acronym)
		}
	}
	if !slices.ContainsFunc(taiko, func(m Mod) bool { return m.Acronym == "ST" }) {
		t.Fatalf("taiko catalog is missing ST")
	}
}
