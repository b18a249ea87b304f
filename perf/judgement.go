package perf

import (
	"fmt"
	"math"
)

// Judgement describes the quality of the hypothetical play, either as
// accuracy plus misses (Simple) or as exact per-category counts, one
// shape per ruleset. Exactly one variant exists per play.
type Judgement interface {
	judgement()
}

// Simple is the accuracy+misses input style. Accuracy is a percentage but
// is deliberately not range-checked here; the performance calculator owns
// domain validation, this layer only rejects values it cannot represent.
type Simple struct {
	Accuracy float64
	Misses   uint32
}

// NewSimple validates the accuracy for finiteness and builds the variant.
func NewSimple(accuracy float64, misses uint32) (Simple, error) {
	if math.IsNaN(accuracy) || math.IsInf(accuracy, 0) {
		return Simple{}, fmt.Errorf("accuracy must be a finite number, got %v", accuracy)
	}
	return Simple{Accuracy: accuracy, Misses: misses}, nil
}

// OsuCounts holds exact osu!standard judgements.
type OsuCounts struct {
	N300   uint32
	N100   uint32
	N50    uint32
	Misses uint32
}

// TaikoCounts holds exact osu!taiko judgements (GREATs and GOODs).
type TaikoCounts struct {
	N300   uint32
	N100   uint32
	Misses uint32
}

// CatchCounts holds exact osu!catch judgements. Misses counts dropped
// fruits and droplets; tiny droplet misses are tracked separately.
type CatchCounts struct {
	Fruits            uint32
	Droplets          uint32
	TinyDroplets      uint32
	TinyDropletMisses uint32
	Misses            uint32
}

// ManiaCounts holds exact osu!mania judgements, 320 being MAX.
type ManiaCounts struct {
	N320   uint32
	N300   uint32
	N200   uint32
	N100   uint32
	N50    uint32
	Misses uint32
}

func (Simple) judgement()      {}
func (OsuCounts) judgement()   {}
func (TaikoCounts) judgement() {}
func (CatchCounts) judgement() {}
func (ManiaCounts) judgement() {}

// Detailed is implemented by the per-mode count variants so the builder
// can enforce that the shape matches the session's mode.
type Detailed interface {
	Judgement
	Mode() GameMode
}

func (OsuCounts) Mode() GameMode   { return ModeOsu }
func (TaikoCounts) Mode() GameMode { return ModeTaiko }
func (CatchCounts) Mode() GameMode { return ModeCatch }
func (ManiaCounts) Mode() GameMode { return ModeMania }
