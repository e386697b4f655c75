package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sinkhole/internal/config"
	"github.com/san-kum/sinkhole/internal/field"
	"github.com/san-kum/sinkhole/internal/logging"
	"github.com/san-kum/sinkhole/internal/render"
	"github.com/san-kum/sinkhole/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	padding     int
	paletteName string
	logFile     string
	logLevel    string
	mouse       string
	// frame command
	frameWidth  int
	frameHeight int
	pointerX    int
	pointerY    int
	ticks       int
	clearFirst  bool
	// depth command
	maxSize int
)

// main registers the commands and runs the effect when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sinkhole",
		Short:        "nested color fields that follow the mouse",
		SilenceUsage: true,
		RunE:         runEffect,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&padding, "padding", field.DefaultPadding, "inset between nested fields")
	rootCmd.PersistentFlags().StringVar(&paletteName, "palette", config.DefaultPalette, "color palette (bright, extended)")
	rootCmd.Flags().StringVar(&logFile, "log", "", "log file path")
	rootCmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	rootCmd.Flags().StringVar(&mouse, "mouse", config.DefaultMouse, "mouse reporting (all, cell)")

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "print a single frame to stdout",
		RunE:  printFrame,
	}
	frameCmd.Flags().IntVar(&frameWidth, "width", 80, "viewport width")
	frameCmd.Flags().IntVar(&frameHeight, "height", 24, "viewport height")
	frameCmd.Flags().IntVar(&pointerX, "x", 0, "pointer column")
	frameCmd.Flags().IntVar(&pointerY, "y", 0, "pointer row")
	frameCmd.Flags().IntVar(&ticks, "ticks", 0, "recolor steps to apply")
	frameCmd.Flags().BoolVar(&clearFirst, "clear", false, "clear the screen first")

	depthCmd := &cobra.Command{
		Use:   "depth",
		Short: "plot chain length against viewport size",
		RunE:  plotDepth,
	}
	depthCmd.Flags().IntVar(&maxSize, "max", 120, "largest square viewport")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved config as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	})

	rootCmd.AddCommand(frameCmd, depthCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEffect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	if err := viz.Run(cfg, logger); err != nil {
		logger.Error("program failed", "err", err)
		return err
	}
	return nil
}

func printFrame(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	pal := cfg.GetPalette()
	chain := field.Build(frameWidth, frameHeight, cfg.Padding, pal)
	if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
		chain.Move(pointerX, pointerY)
	}
	for i := 0; i < ticks; i++ {
		chain.Recolor()
	}

	w := render.NewWriter(os.Stdout, pal)
	if clearFirst {
		if err := w.Clear(); err != nil {
			return err
		}
	}
	if err := w.WriteFrame(render.Frame(chain)); err != nil {
		return err
	}
	return w.Reset()
}

func plotDepth(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if maxSize < 1 {
		return fmt.Errorf("max must be positive")
	}

	data := make([]float64, maxSize)
	for n := 1; n <= maxSize; n++ {
		data[n-1] = float64(field.Build(n, n, cfg.Padding, cfg.GetPalette()).Len())
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("fields per NxN viewport, padding %d, N = 1..%d", cfg.Padding, maxSize)),
	)
	fmt.Println(graph)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPADDING\tPALETTE\tTICK")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%v\n", name, p.Padding, p.Palette, p.Tick)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "sinkhole.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
