package perf

import "slices"

// Mod is one selectable modifier. Bits is the legacy bitmask contribution;
// 0 means the mod exists in lazer but has no legacy scoring effect, so it
// is offered for completeness and resolves to nothing.
type Mod struct {
	Acronym     string
	Bits        uint32
	Description string
	Modes       []GameMode
}

func bit(n uint) uint32 { return 1 << n }

var allModes = []GameMode{ModeOsu, ModeTaiko, ModeCatch, ModeMania}

// Catalog mirrors osu!lazer's per-mode modifier list with the stable
// legacy bit values. Overlapping entries are intentional: PF carries the
// SD bit plus its own, NC carries the DT bit plus its own, so combining
// them with their base mod stays a well-defined OR.
var Catalog = []Mod{
	{Acronym: "EZ", Bits: bit(1), Description: "Easy", Modes: allModes},
	{Acronym: "NF", Bits: bit(0), Description: "No Fail", Modes: allModes},
	{Acronym: "HT", Bits: bit(8), Description: "Half Time", Modes: allModes},
	{Acronym: "DC", Bits: 0, Description: "Daycore (lazer only, no PP effect here)", Modes: allModes},
	{Acronym: "NR", Bits: 0, Description: "No Release (mania only, no PP effect here)", Modes: []GameMode{ModeMania}},
	{Acronym: "HR", Bits: bit(4), Description: "Hard Rock", Modes: allModes},
	{Acronym: "SD", Bits: bit(5), Description: "Sudden Death", Modes: allModes},
	{Acronym: "PF", Bits: bit(5) | bit(14), Description: "Perfect (full combo SD)", Modes: allModes},
	{Acronym: "DT", Bits: bit(6), Description: "Double Time", Modes: allModes},
	{Acronym: "NC", Bits: bit(6) | bit(9), Description: "Nightcore (DT variant)", Modes: allModes},
	{Acronym: "HD", Bits: bit(3), Description: "Hidden", Modes: allModes},
	{Acronym: "FI", Bits: 0, Description: "Fade In (mania only in stable)", Modes: []GameMode{ModeMania}},
	{Acronym: "CO", Bits: 0, Description: "Cover (lazer only, no PP effect here)", Modes: allModes},
	{Acronym: "FL", Bits: bit(10), Description: "Flashlight", Modes: []GameMode{ModeOsu, ModeCatch, ModeMania}},
	{Acronym: "BL", Bits: 0, Description: "Blinds (lazer fun mod, no PP effect here)", Modes: []GameMode{ModeOsu, ModeCatch, ModeMania}},
	{Acronym: "ST", Bits: 0, Description: "Strict Tracking (taiko only, no PP effect here)", Modes: []GameMode{ModeTaiko}},
	{Acronym: "AC", Bits: 0, Description: "Accuracy Challenge (lazer only, no PP effect here)", Modes: allModes},
	{Acronym: "AT", Bits: bit(7), Description: "Autoplay (no PP)", Modes: allModes},
	{Acronym: "AP", Bits: bit(9), Description: "AutoPilot (osu!, no PP)", Modes: []GameMode{ModeOsu}},
	{Acronym: "CN", Bits: 0, Description: "Cinema (no PP)", Modes: []GameMode{ModeOsu, ModeCatch}},
	{Acronym: "RL", Bits: 0, Description: "Relax (no PP)", Modes: []GameMode{ModeOsu, ModeCatch}},
	{Acronym: "RX", Bits: 0, Description: "Classic Relax acronym (no PP)", Modes: []GameMode{ModeOsu, ModeCatch}},
	{Acronym: "TD", Bits: 0, Description: "Target Practice / Touch Device (no PP)", Modes: []GameMode{ModeOsu}},
	{Acronym: "SO", Bits: bit(12), Description: "Spun Out (osu! only)", Modes: []GameMode{ModeOsu}},
	{Acronym: "DA", Bits: 0, Description: "Difficulty Adjust (lazer only, no PP here)", Modes: allModes},
	{Acronym: "TC", Bits: 0, Description: "Traceable (lazer only)", Modes: []GameMode{ModeOsu}},
	{Acronym: "WI", Bits: 0, Description: "Wiggle (lazer only)", Modes: []GameMode{ModeOsu}},
	{Acronym: "CL", Bits: 0, Description: "Classic (lazer: emulate stable quirks)", Modes: []GameMode{ModeOsu, ModeTaiko}},
	{Acronym: "RD", Bits: 0, Description: "Random (mania only, no PP)", Modes: []GameMode{ModeMania}},
	{Acronym: "MR", Bits: 0, Description: "Mirror (mania only, no PP)", Modes: []GameMode{ModeMania}},
	{Acronym: "ATC", Bits: 0, Description: "Adaptive Speed / Challenge (lazer system, no PP)", Modes: allModes},
	{Acronym: "1K", Bits: 0, Description: "1 key (mania only, no legacy bit)", Modes: []GameMode{ModeMania}},
	{Acronym: "2K", Bits: 0, Description: "2 keys", Modes: []GameMode{ModeMania}},
	{Acronym: "3K", Bits: 0, Description: "3 keys", Modes: []GameMode{ModeMania}},
	{Acronym: "4K", Bits: bit(15), Description: "4 keys", Modes: []GameMode{ModeMania}},
	{Acronym: "5K", Bits: bit(16), Description: "5 keys", Modes: []GameMode{ModeMania}},
	{Acronym: "6K", Bits: bit(17), Description: "6 keys", Modes: []GameMode{ModeMania}},
	{Acronym: "7K", Bits: bit(18), Description: "7 keys", Modes: []GameMode{ModeMania}},
	{Acronym: "8K", Bits: bit(19), Description: "8 keys", Modes: []GameMode{ModeMania}},
	{Acronym: "9K", Bits: bit(24), Description: "9 keys", Modes: []GameMode{ModeMania}},
}

// CatalogFor returns the catalog entries selectable in the given mode, in
// catalog order. Callers must treat the result as read-only.
func CatalogFor(mode GameMode) []Mod {
	out := make([]Mod, 0, len(Catalog))
	for _, m := range Catalog {
		if slices.Contains(m.Modes, mode) {
			out = append(out, m)
		}
	}
	return out
}

// ResolveMods ORs the legacy bits of every selected acronym that exists in
// the given mode's catalog. Acronyms not in that catalog are ignored:
// selection normally comes from the filtered list, and several lazer mods
// carry no legacy bit anyway. Selection order and repeats don't matter.
func ResolveMods(mode GameMode, selected []string) uint32 {
	var bits uint32
	for _, m := range Catalog {
		if !slices.Contains(m.Modes, mode) {
			continue
		}
		if slices.Contains(selected, m.Acronym) {
			bits |= m.Bits
		}
	}
	return bits
}
