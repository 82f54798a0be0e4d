package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/eggburst/internal/config"
	"github.com/san-kum/eggburst/internal/export"
	"github.com/san-kum/eggburst/internal/metrics"
	"github.com/san-kum/eggburst/internal/rng"
	"github.com/san-kum/eggburst/internal/scene"
	"github.com/san-kum/eggburst/internal/sim"
	"github.com/san-kum/eggburst/internal/storage"
	"github.com/san-kum/eggburst/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	logFile    string
	// headless run
	frames  int
	clickAt int
	save    bool
	svgPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "eggburst",
		Short:        "an egg that opens into confetti",
		SilenceUsage: true,
		RunE:         runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "log file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "open the egg in the terminal",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run with a scripted click",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	runCmd.Flags().IntVar(&clickAt, "click-at", 30, "frame on which the egg is clicked (0 never)")
	runCmd.Flags().BoolVar(&save, "save", false, "store the frame trace")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final frame as svg")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "write the hinge trace as svg")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			fmt.Println("themes:")
			for _, t := range viz.ThemeNames() {
				fmt.Printf("  %s\n", t)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, plotCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves defaults, then the preset, then the config file, then
// flags.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to --log when given, otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if logFile == "" {
		return log.NewWithOptions(fallback, log.Options{ReportTimestamp: true}), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Level: log.DebugLevel})
	return logger, func() { f.Close() }, nil
}

func newScene(cfg *config.Config, logger *log.Logger) (*scene.Scene, error) {
	hp, err := cfg.HingeParams()
	if err != nil {
		return nil, err
	}
	variant, err := cfg.Variant()
	if err != nil {
		return nil, err
	}
	opts := scene.DefaultOptions()
	opts.Count = cfg.Particles.Count
	opts.Source = rng.New(cfg.Seed)
	opts.Particles = cfg.ParticleParams()
	opts.Hinge = hp
	opts.Variant = variant
	opts.Logger = logger
	return scene.New(opts)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// The terminal belongs to the view, so logs only go to --log.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	sc, err := newScene(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting live view", "particles", cfg.Particles.Count, "variant", cfg.Shell.Variant, "seed", cfg.Seed)

	return viz.Run(sc, viz.Options{
		FPS:    cfg.View.FPS,
		Theme:  cfg.View.Theme,
		Zoom:   cfg.View.Zoom,
		Logger: logger,
	})
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	sc, err := newScene(cfg, logger)
	if err != nil {
		return err
	}

	s := sim.New(sc)
	for _, m := range metrics.Defaults(cfg.Hinge.OpenAngle) {
		s.AddMetric(m)
	}
	runCfg := sim.Config{Frames: frames, Dt: 1.0 / float64(cfg.View.FPS)}
	if clickAt > 0 {
		runCfg.Script = sim.ClickAt(clickAt)
	}

	fmt.Printf("running %d frames, %d particles...\n", frames, cfg.Particles.Count)
	start := time.Now()
	result, err := s.Run(context.Background(), runCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	final := result.Final()
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("open: %t  frozen: %d/%d  mean y: %.3f\n",
		final.Shell.Open, final.Field.Frozen, final.Field.Count, final.Field.MeanY)
	printMetrics(result.Metrics)

	records := make([]storage.FrameRecord, len(result.Frames))
	for i, info := range result.Frames {
		records[i] = storage.Record(info)
	}
	fmt.Println()
	plotRecords(records)

	if svgPath != "" {
		canvas := viz.Snapshot(sc, 80, 40, viz.Options{Theme: cfg.View.Theme, Zoom: cfg.View.Zoom})
		if err := os.WriteFile(svgPath, []byte(export.CanvasToSVG(canvas, 4)), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Printf("frame written to %s\n", svgPath)
	}

	if !save {
		return nil
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	name := preset
	if name == "" {
		name = "run"
	}
	runID, err := st.Save(storage.RunMetadata{
		Preset:    name,
		Seed:      cfg.Seed,
		Frames:    frames,
		ClickAt:   clickAt,
		Particles: cfg.Particles.Count,
		Variant:   cfg.Shell.Variant,
		Method:    cfg.Hinge.Method,
		Summary:   result.Metrics,
	}, records)
	if err != nil {
		return err
	}
	logger.Info("trace saved", "run", runID, "dir", cfg.DataDir)
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func plotRecords(records []storage.FrameRecord) {
	if len(records) < 2 {
		return
	}
	hingeDeg := make([]float64, len(records))
	meanY := make([]float64, len(records))
	frozen := make([]float64, len(records))
	for i, r := range records {
		hingeDeg[i] = r.HingeLeft * 180 / math.Pi
		meanY[i] = r.MeanY
		frozen[i] = float64(r.Frozen)
	}
	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"hinge angle (deg)", hingeDeg},
		{"mean particle height", meanY},
		{"frozen particles", frozen},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
}

func openStore() (*storage.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tCLICK\tPARTICLES\tVARIANT\tMETHOD")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.ClickAt,
			run.Particles,
			run.Variant,
			run.Method,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	records, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s  seed: %d\n", meta.Preset, meta.Seed)
	fmt.Printf("frames: %d\n\n", len(records))
	plotRecords(records)
	printMetrics(meta.Summary)

	if svgPath != "" {
		hingeDeg := make([]float64, len(records))
		for i, r := range records {
			hingeDeg[i] = r.HingeLeft * 180 / math.Pi
		}
		if err := os.WriteFile(svgPath, []byte(export.SeriesToSVG(hingeDeg, 800, 300, "#00ffff")), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Printf("trace written to %s\n", svgPath)
	}
	return nil
}
