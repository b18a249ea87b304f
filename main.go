package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"ppgain/perf"
)

var (
	flagConfig string
	flagUser   string
	flagMode   string
	flagMap    int
	flagMods   []string
	flagCombo  string

	flagAcc    float64
	flagMisses uint32

	flagN300              uint32
	flagN100              uint32
	flagN50               uint32
	flagN320              uint32
	flagN200              uint32
	flagFruits            uint32
	flagDroplets          uint32
	flagTinyDroplets      uint32
	flagTinyDropletMisses uint32
)

var rootCmd = &cobra.Command{
	Use:          "ppgain",
	Short:        "Project the total-PP gain of a hypothetical osu! play",
	Long:         "ppgain computes the PP value of a described play on a beatmap and compares it against your current top plays to estimate the total-PP gain.",
	SilenceUsage: true,
}

var simpleCmd = &cobra.Command{
	Use:   "simple",
	Short: "Describe the play as accuracy + misses (+ optional combo)",
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := perf.NewSimple(flagAcc, flagMisses)
		if err != nil {
			return err
		}
		combo, err := parseOptionalCount("combo", flagCombo)
		if err != nil {
			return err
		}
		return runProjection(cmd.Context(), j, combo)
	},
}

var detailedCmd = &cobra.Command{
	Use:   "detailed",
	Short: "Describe the play with exact judgement counts for the mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := perf.ParseGameMode(flagMode)
		if err != nil {
			return err
		}
		if err := rejectForeignCountFlags(cmd, mode); err != nil {
			return err
		}
		var j perf.Judgement
		switch mode {
		case perf.ModeOsu:
			j = perf.OsuCounts{N300: flagN300, N100: flagN100, N50: flagN50, Misses: flagMisses}
		case perf.ModeTaiko:
			j = perf.TaikoCounts{N300: flagN300, N100: flagN100, Misses: flagMisses}
		case perf.ModeCatch:
			j = perf.CatchCounts{
				Fruits:            flagFruits,
				Droplets:          flagDroplets,
				TinyDroplets:      flagTinyDroplets,
				TinyDropletMisses: flagTinyDropletMisses,
				Misses:            flagMisses,
			}
		case perf.ModeMania:
			j = perf.ManiaCounts{N320: flagN320, N300: flagN300, N200: flagN200, N100: flagN100, N50: flagN50, Misses: flagMisses}
		}
		combo, err := parseOptionalCount("combo", flagCombo)
		if err != nil {
			return err
		}
		return runProjection(cmd.Context(), j, combo)
	},
}

var modsCmd = &cobra.Command{
	Use:   "mods",
	Short: "List the selectable mods and their legacy bits for a mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := perf.ParseGameMode(flagMode)
		if err != nil {
			return err
		}
		fmt.Printf("%s mods:\n", mode)
		for _, m := range perf.CatalogFor(mode) {
			fmt.Printf("  %-4s bits=%-6d %s\n", m.Acronym, m.Bits, m.Description)
		}
		return nil
	},
}

// countFlagModes says which modes each detailed count flag belongs to.
// Flags not listed here (misses, combo) apply to every mode.
var countFlagModes = map[string][]perf.GameMode{
	"n300":                {perf.ModeOsu, perf.ModeTaiko, perf.ModeMania},
	"n100":                {perf.ModeOsu, perf.ModeTaiko, perf.ModeMania},
	"n50":                 {perf.ModeOsu, perf.ModeMania},
	"n320":                {perf.ModeMania},
	"n200":                {perf.ModeMania},
	"fruits":              {perf.ModeCatch},
	"droplets":            {perf.ModeCatch},
	"tiny-droplets":       {perf.ModeCatch},
	"tiny-droplet-misses": {perf.ModeCatch},
}

func rejectForeignCountFlags(cmd *cobra.Command, mode perf.GameMode) error {
	var bad []string
	for name, modes := range countFlagModes {
		if cmd.Flags().Changed(name) && !slices.Contains(modes, mode) {
			bad = append(bad, "--"+name)
		}
	}
	if len(bad) > 0 {
		slices.Sort(bad)
		return fmt.Errorf("%s does not apply to %v", strings.Join(bad, ", "), mode)
	}
	return nil
}

func parseOptionalCount(label, raw string) (*uint32, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%s must be an unsigned integer: %w", label, err)
	}
	out := uint32(v)
	return &out, nil
}

func normalizeAcronyms(mods []string) []string {
	out := make([]string, 0, len(mods))
	for _, m := range mods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

func runProjection(ctx context.Context, j perf.Judgement, combo *uint32) error {
	if flagUser == "" {
		return fmt.Errorf("--user is required")
	}
	if flagMap <= 0 {
		return fmt.Errorf("--map must be a positive beatmap id")
	}
	mode, err := perf.ParseGameMode(flagMode)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(flagConfig)
	if err != nil {
		return err
	}

	bits := perf.ResolveMods(mode, normalizeAcronyms(flagMods))
	input := perf.BuildInput(mode, bits, combo, j)

	tok, err := FetchToken(ctx, cfg.ClientID, cfg.ClientSecret)
	if err != nil {
		return err
	}

	var cache *BeatmapCache
	if cfg.CachePath != "" {
		cache, err = OpenBeatmapCache(cfg.CachePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "beatmap cache unavailable: %v\n", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	// The two network reads are independent, overlap them.
	var (
		wg        sync.WaitGroup
		mapBytes  []byte
		mapErr    error
		scores    []Score
		scoresErr error
	)
	wg.Add(2)
	Run(func() {
		defer wg.Done()
		mapBytes, mapErr = FetchOsuFile(ctx, cfg, tok, cache, flagMap)
	})
	Run(func() {
		defer wg.Done()
		scores, scoresErr = GetBestScores(ctx, tok, flagUser, mode)
	})
	wg.Wait()
	if mapErr != nil {
		return mapErr
	}
	if scoresErr != nil {
		return scoresErr
	}

	calc := &HTTPCalculator{URL: cfg.CalculatorURL}
	newPlayPP, err := calc.Compute(ctx, mapBytes, input)
	if err != nil {
		return err
	}

	fmt.Printf("\nHypothetical play PP: %.2fpp\n", newPlayPP)

	pps := collectPPs(scores)
	oldTotal := perf.WeightedTotal(pps)
	newTotal := perf.WeightedTotal(append(slices.Clone(pps), newPlayPP))
	gain := newTotal - oldTotal

	fmt.Println()
	fmt.Printf("Approx. old total PP (recomputed): %.2fpp\n", oldTotal)
	fmt.Printf("Approx. new total PP:              %.2fpp\n", newTotal)
	fmt.Printf("Approx. PP gain from this play:    %+.2fpp\n", gain)

	fmt.Println()
	fmt.Println("Notes:")
	fmt.Println("- Supported modes: osu, taiko, catch, mania.")
	fmt.Println("- Mods list mirrors osu!lazer's modifiers per mode.")
	fmt.Println("- Lazer-only / fun mods are selectable but do not affect PP here.")
	fmt.Println("- Uses classic 0.95^i weighting on your top 100 plays.")
	fmt.Println("- Ignores bonus-PP components.")

	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", DefaultConfigPath(), "path to the TOML config file")
	pf.StringVarP(&flagUser, "user", "u", "", "osu! username or numeric user id")
	pf.StringVarP(&flagMode, "mode", "m", "osu", "game mode: osu, taiko, catch or mania")
	pf.IntVar(&flagMap, "map", 0, "numeric beatmap id")
	pf.StringSliceVar(&flagMods, "mods", nil, "mod acronyms, e.g. HD,DT (empty for NoMod)")

	simpleCmd.Flags().Float64Var(&flagAcc, "acc", 100, "accuracy in percent, e.g. 98.75")
	simpleCmd.Flags().Uint32Var(&flagMisses, "misses", 0, "number of misses")
	simpleCmd.Flags().StringVar(&flagCombo, "combo", "", "combo (empty assumes full combo)")

	df := detailedCmd.Flags()
	df.Uint32Var(&flagN300, "n300", 0, "300s (osu/taiko/mania)")
	df.Uint32Var(&flagN100, "n100", 0, "100s (osu/taiko/mania)")
	df.Uint32Var(&flagN50, "n50", 0, "50s (osu/mania)")
	df.Uint32Var(&flagN320, "n320", 0, "320s / MAX (mania)")
	df.Uint32Var(&flagN200, "n200", 0, "200s (mania)")
	df.Uint32Var(&flagFruits, "fruits", 0, "fruits caught (catch)")
	df.Uint32Var(&flagDroplets, "droplets", 0, "droplets caught (catch)")
	df.Uint32Var(&flagTinyDroplets, "tiny-droplets", 0, "tiny droplets caught (catch)")
	df.Uint32Var(&flagTinyDropletMisses, "tiny-droplet-misses", 0, "tiny droplets missed (catch)")
	df.Uint32Var(&flagMisses, "misses", 0, "misses (all modes)")
	df.StringVar(&flagCombo, "combo", "", "combo (empty assumes full combo)")

	rootCmd.AddCommand(simpleCmd, detailedCmd, modsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
