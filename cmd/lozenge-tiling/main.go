// Command lozenge-tiling drives a tiling.TilingEngine from the command
// line, per spec.md §6: build an engine with periods (1, 2, 3), run
// generateWithMarkovChain(iterations, q), then getWallVoxels(), and
// report how long each phase took.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mirovelk/lozenge-tiling-go/internal/xlog"
	"github.com/mirovelk/lozenge-tiling-go/tiling"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lozenge-tiling [iterations] [q] [drawDistance]",
		Short: "Run a random plane-partition Markov chain and report its wall voxels",
		Long: "lozenge-tiling builds a periodic TilingEngine, steps it through a\n" +
			"reversible Markov chain for the requested number of iterations, and\n" +
			"reports the size of the resulting surface. Any positional argument\n" +
			"that fails to parse is silently replaced by its default.",
		Args: cobra.MaximumNArgs(3),
		RunE: runRoot,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyPositionalArgs(&cfg, args)

	log := xlog.New()
	log.WithFields(map[string]interface{}{
		"iterations":   cfg.Iterations,
		"q":            cfg.Q,
		"drawDistance": cfg.DrawDistance,
		"periods":      fmt.Sprintf("(%d, %d, %d)", cfg.XShift, cfg.YShift, cfg.ZHeight),
	}).Info("starting run")

	e := tiling.New(cfg.XShift, cfg.YShift, cfg.ZHeight,
		cfg.DrawDistance, cfg.DrawDistance, cfg.DrawDistance)

	start := time.Now()
	e.GenerateWithMarkovChain(cfg.Iterations, cfg.Q)
	chainDuration := time.Since(start)

	start = time.Now()
	walls := e.GetWallVoxels()
	voxelDuration := time.Since(start)

	log.WithField("duration", chainDuration).Info("markov chain generation complete")
	log.WithFields(map[string]interface{}{
		"duration": voxelDuration,
		"count":    len(walls),
	}).Info("wall voxel extraction complete")

	return nil
}

// applyPositionalArgs overwrites cfg's Iterations, Q, and DrawDistance
// with the driver's positional arguments, in that order. A positional
// argument that fails to parse is ignored and cfg keeps whatever value
// it already had (its default, or a config-file override).
func applyPositionalArgs(cfg *runConfig, args []string) {
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			cfg.Iterations = n
		}
	}
	if len(args) > 1 {
		if q, err := strconv.ParseFloat(args[1], 64); err == nil {
			cfg.Q = q
		}
	}
	if len(args) > 2 {
		if d, err := strconv.ParseInt(args[2], 10, 32); err == nil {
			cfg.DrawDistance = int32(d)
		}
	}
}
