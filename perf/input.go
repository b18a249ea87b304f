package perf

import "fmt"

// Input is the fully resolved parameter set handed to the performance
// calculator together with the raw beatmap. It is never mutated after
// BuildInput.
type Input struct {
	Mode      GameMode
	Mods      uint32
	Combo     *uint32 // nil means the calculator assumes full combo
	Judgement Judgement
}

// BuildInput assembles the calculator parameters. A detailed judgement
// whose shape belongs to a different mode is a caller bug, not a runtime
// condition: the constructors are mode-keyed, so it panics.
func BuildInput(mode GameMode, mods uint32, combo *uint32, j Judgement) Input {
	if d, ok := j.(Detailed); ok && d.Mode() != mode {
		panic(fmt.Sprintf("judgement shape for %v used with mode %v", d.Mode(), mode))
	}
	return Input{Mode: mode, Mods: mods, Combo: combo, Judgement: j}
}

// HitCounts carries detailed judgements under the slot names the
// performance calculator uses. Nil slots are not sent. The translation
// from ruleset terms to slots lives in Hits and nowhere else.
type HitCounts struct {
	N300          *uint32
	N100          *uint32
	N50           *uint32
	Geki          *uint32
	Katu          *uint32
	LargeTickHits *uint32
	SmallTickHits *uint32
	Misses        uint32
}

// Hits maps a detailed judgement onto calculator slots. The catch and
// mania rows are where ruleset naming and calculator naming diverge:
// fruits fill the n300 slot, droplets the tick slots, tiny droplet misses
// the katu slot; mania MAX fills geki and 200s fill katu.
func (in Input) Hits() (HitCounts, bool) {
	switch j := in.Judgement.(type) {
	case OsuCounts:
		return HitCounts{N300: u(j.N300), N100: u(j.N100), N50: u(j.N50), Misses: j.Misses}, true
	case TaikoCounts:
		return HitCounts{N300: u(j.N300), N100: u(j.N100), Misses: j.Misses}, true
	case CatchCounts:
		return HitCounts{
			N300:          u(j.Fruits),
			LargeTickHits: u(j.Droplets),
			SmallTickHits: u(j.TinyDroplets),
			Katu:          u(j.TinyDropletMisses),
			Misses:        j.Misses,
		}, true
	case ManiaCounts:
		return HitCounts{
			Geki:   u(j.N320),
			N300:   u(j.N300),
			Katu:   u(j.N200),
			N100:   u(j.N100),
			N50:    u(j.N50),
			Misses: j.Misses,
		}, true
	}
	return HitCounts{}, false
}

// SimpleScore returns the accuracy-style judgement when that variant is
// active.
func (in Input) SimpleScore() (Simple, bool) {
	s, ok := in.Judgement.(Simple)
	return s, ok
}

func u(v uint32) *uint32 { return &v }
