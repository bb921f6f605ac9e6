package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/litescript/skysim/internal/astro"
	"github.com/litescript/skysim/internal/catalog"
	"github.com/litescript/skysim/internal/config"
	"github.com/litescript/skysim/internal/logging"
	"github.com/litescript/skysim/internal/version"
)

const appName = "skysim"

// Exit statuses
const (
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks failures caused by the command line itself.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// exitCode maps argument and input problems to exitUsage and everything
// else, I/O included, to exitFailure.
func exitCode(err error) int {
	var ue *usageError
	switch {
	case errors.As(err, &ue),
		errors.Is(err, astro.ErrParse),
		errors.Is(err, astro.ErrRange),
		errors.Is(err, catalog.ErrInvalidArgument):
		return exitUsage
	default:
		return exitFailure
	}
}

// app holds the process-level collaborators so tests can replace them.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
	preview    func(res *catalog.Result, dest string) error
}

// flags mirrors the command line; values only override the config file when
// the flag was given explicitly.
type flags struct {
	configPath string
	ra         float64
	dec        float64
	out        string
	logLevel   string
	count      int
	seed       uint64
	clip       bool
	clipMode   string
	radius     float64
	summary    bool
	preview    bool
}

func (a *app) rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Generate a synthetic star catalog",
		Long: `skysim scatters stars uniformly over a 2x2 degree window around a sky
position and writes them to a CSV catalog (id,ra,dec).

Without --ra and --dec the window is centered on the Andromeda galaxy
(RA 00:42:44.3, Dec 41:16:09). RA is projected by 1/cos(Dec) so the window
covers a similar angular extent on both axes.`,
		Example: `  skysim
  skysim --ra 83.82 --dec -5.39 --count 5000 --out orion.csv
  skysim --clip --seed 42 --summary
  skysim --config skysim.yaml --preview`,
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Flags(), f)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	pf.Float64Var(&f.ra, "ra", 0, "Center true right ascension in decimal degrees (projected by 1/cos(dec))")
	pf.Float64Var(&f.dec, "dec", 0, "Center declination in decimal degrees")
	pf.StringVarP(&f.out, "out", "o", config.DefaultOutput, "Output catalog path")
	pf.StringVar(&f.logLevel, "logging", "INFO", "Log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
	pf.IntVarP(&f.count, "count", "n", catalog.DefaultCount, "Number of stars to sample")
	pf.Uint64Var(&f.seed, "seed", 0, "Random seed (default: time-based)")
	pf.BoolVar(&f.clip, "clip", false, "Keep only stars within --radius of the center")
	pf.StringVar(&f.clipMode, "clip-mode", catalog.ClipCenter.String(), "Clip distance reference: center or origin (legacy)")
	pf.Float64Var(&f.radius, "radius", catalog.DefaultRadius, "Clip radius in degrees")

	cmd.Flags().BoolVar(&f.summary, "summary", false, "Print a run summary to stdout")
	cmd.Flags().BoolVar(&f.preview, "preview", false, "Show the generated field in a terminal preview")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "%s version %s\n", appName, version.Version)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), f)
			if err != nil {
				return err
			}
			return cfg.WriteYAML(a.stdout)
		},
	})

	return cmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &usageError{fmt.Errorf("unexpected argument %q for %q", args[0], cmd.CommandPath())}
	}
	return nil
}

// loadConfig layers explicitly set flags over the config file (or defaults)
// and validates the result.
func loadConfig(fs *pflag.FlagSet, f flags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.configPath != "" {
		loaded, err := config.LoadFromFile(f.configPath)
		if err != nil {
			return nil, &usageError{fmt.Errorf("load config: %w", err)}
		}
		cfg = loaded
	}

	if fs.Changed("ra") {
		ra := f.ra
		cfg.Center.RA = &ra
	}
	if fs.Changed("dec") {
		dec := f.dec
		cfg.Center.Dec = &dec
	}
	if fs.Changed("out") {
		cfg.Output = f.out
	}
	if fs.Changed("logging") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("count") {
		cfg.Count = f.count
	}
	if fs.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if fs.Changed("clip") {
		cfg.Clip.Enabled = f.clip
	}
	if fs.Changed("clip-mode") {
		cfg.Clip.Mode = f.clipMode
	}
	if fs.Changed("radius") {
		cfg.Clip.Radius = f.radius
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (a *app) run(fs *pflag.FlagSet, f flags) error {
	cfg, err := loadConfig(fs, f)
	if err != nil {
		return err
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))
	logger.SetOutput(a.stderr)

	if f.preview && !a.isTerminal() {
		return &usageError{errors.New("--preview requires a terminal on stdout")}
	}

	// Resolve center
	if (cfg.Center.RA == nil) != (cfg.Center.Dec == nil) {
		logger.Warn("Both --ra and --dec are needed for an explicit center; using %s %s",
			cfg.DefaultCenter.RA, cfg.DefaultCenter.Dec)
	}
	center, err := cfg.ResolveCenter()
	if err != nil {
		logger.Error("Center conversion failed: %v", err)
		return fmt.Errorf("convert: %w", err)
	}
	logger.Debug("Center %s = %s", center.Label(), center)

	opts, err := cfg.Options()
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}

	seed := uint64(time.Now().UnixNano())
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	logger.Debug("Sampling %d stars with seed %d", opts.Count, seed)

	res, err := catalog.Generate(center, opts, catalog.NewRand(seed))
	if err != nil {
		logger.Error("Sampling failed: %v", err)
		return fmt.Errorf("sample: %w", err)
	}
	if res.Clipped {
		logger.Info("Clipped to r=%g° (%s): kept %d of %d stars",
			res.Clip.EffectiveRadius(), res.Clip.Mode, res.Retained(), res.Sampled)
		if res.Retained() == 0 {
			logger.Warn("No stars survived clipping; the catalog has only a header")
		}
	}

	n, err := catalog.WriteFile(cfg.Output, res.Records())
	if err != nil {
		logger.Critical("Writing catalog failed: %v", err)
		return fmt.Errorf("write: %w", err)
	}
	logger.Info("Wrote %d stars to %s", n, cfg.Output)

	if f.summary {
		catalog.WriteSummary(a.stdout, res, cfg.Output)
	}

	if f.preview {
		return a.preview(res, cfg.Output)
	}
	return nil
}
