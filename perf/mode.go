// Package perf models a hypothetical play: game mode, modifier bitmask,
// judgement counts and the weighted-total math used to project PP gain.
package perf

import "fmt"

// GameMode identifies one of the four rulesets. It decides which mods can
// be selected and which detailed judgement shape is valid.
type GameMode int

const (
	ModeOsu GameMode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

// Modes lists every ruleset in display order.
var Modes = []GameMode{ModeOsu, ModeTaiko, ModeCatch, ModeMania}

func (m GameMode) String() string {
	switch m {
	case ModeOsu:
		return "osu!standard"
	case ModeTaiko:
		return "osu!taiko"
	case ModeCatch:
		return "osu!catch"
	case ModeMania:
		return "osu!mania"
	}
	return fmt.Sprintf("GameMode(%d)", int(m))
}

// APIName returns the ruleset name the osu! API v2 expects. Catch is
// "fruits" on the wire.
func (m GameMode) APIName() string {
	switch m {
	case ModeOsu:
		return "osu"
	case ModeTaiko:
		return "taiko"
	case ModeCatch:
		return "fruits"
	case ModeMania:
		return "mania"
	}
	return ""
}

// ParseGameMode accepts the API names plus a few common spellings.
func ParseGameMode(s string) (GameMode, error) {
	switch s {
	case "osu", "std", "standard", "0":
		return ModeOsu, nil
	case "taiko", "1":
		return ModeTaiko, nil
	case "catch", "fruits", "ctb", "2":
		return ModeCatch, nil
	case "mania", "3":
		return ModeMania, nil
	}
	return ModeOsu, fmt.Errorf("unknown game mode %q (want osu, taiko, catch or mania)", s)
}
