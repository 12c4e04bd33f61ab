package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seralva/forcecurve/internal/config"
	"github.com/seralva/forcecurve/internal/curve"
	"github.com/seralva/forcecurve/internal/export"
	"github.com/seralva/forcecurve/internal/tui"
	"github.com/seralva/forcecurve/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool

	// motor flags
	kt      float64
	kv      float64
	rll     float64
	lll     float64
	winding string
	temp    float64
	vbus    float64
	util    float64

	// limit flags
	imax      float64
	idFW      float64
	direction string
	limits    string

	// transmission flags
	ratio  float64
	eta    float64
	radius float64

	// sweep flags
	maxSpeed float64
	steps    int

	// output flags
	showTable   bool
	chartWidth  int
	chartHeight int
	outPath     string
	format      string
	title       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "forcecurve",
		Short: "cable machine force curve engine",
		Long: "forcecurve computes the maximum sustainable cable force of a\n" +
			"motor-driven linear actuator across its speed range, under phase\n" +
			"current, phase voltage, and supply power limits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gen, err := cfg.Generator()
			if err != nil {
				return err
			}
			return tui.Run(gen)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "compute and display the force curve",
		RunE:  runCurve,
	}
	addParamFlags(curveCmd)
	curveCmd.Flags().BoolVar(&showTable, "table", false, "print sample table")
	curveCmd.Flags().IntVar(&chartWidth, "width", 90, "chart width")
	curveCmd.Flags().IntVar(&chartHeight, "height", 18, "chart height")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the computed table",
		RunE:  runExport,
	}
	addParamFlags(exportCmd)
	exportCmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")
	exportCmd.Flags().StringVar(&format, "format", "csv", "csv or json")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "render the force curve chart to an image",
		RunE:  runPlot,
	}
	addParamFlags(plotCmd)
	plotCmd.Flags().StringVar(&outPath, "out", "forcecurve.png", "image path (.png, .svg, .pdf)")
	plotCmd.Flags().StringVar(&title, "title", "cable machine force curve", "chart title")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  listPresets,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gen, err := cfg.Generator()
			if err != nil {
				return err
			}
			return tui.Run(gen)
		},
	}
	addParamFlags(tuiCmd)

	rootCmd.AddCommand(curveCmd, exportCmd, plotCmd, presetsCmd, tuiCmd)

	cobra.OnInitialize(func() {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&kt, "kt", 0, "torque constant (N·m/A)")
	cmd.Flags().Float64Var(&kv, "kv", 0, "speed constant (rpm/V), overrides kt")
	cmd.Flags().Float64Var(&rll, "rll", 0, "line-to-line resistance (Ω)")
	cmd.Flags().Float64Var(&lll, "lll", 0, "line-to-line inductance (H)")
	cmd.Flags().StringVar(&winding, "winding", "", "winding topology (wye|delta)")
	cmd.Flags().Float64Var(&temp, "temp", 0, "copper temperature (°C)")
	cmd.Flags().Float64Var(&vbus, "vbus", 0, "bus voltage (V)")
	cmd.Flags().Float64Var(&util, "util", 0, "voltage utilization (0..1)")
	cmd.Flags().Float64Var(&imax, "imax", 0, "phase current limit (A)")
	cmd.Flags().Float64Var(&idFW, "idfw", 0, "field-weakening current limit (A)")
	cmd.Flags().StringVar(&direction, "direction", "", "motoring|regenerating")
	cmd.Flags().StringVar(&limits, "limits", "", "supply limits, comma-separated watts")
	cmd.Flags().Float64Var(&ratio, "ratio", 0, "gear ratio")
	cmd.Flags().Float64Var(&eta, "eta", 0, "gear efficiency (0..1)")
	cmd.Flags().Float64Var(&radius, "radius", 0, "drum radius (m)")
	cmd.Flags().Float64Var(&maxSpeed, "max-speed", 0, "sweep upper speed (m/s)")
	cmd.Flags().IntVar(&steps, "steps", 0, "sweep intervals (10..500)")
}

// loadConfig resolves precedence: defaults, then preset, then config
// file, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (see: forcecurve presets)", preset)
		}
		*cfg = *p
		log.WithField("preset", preset).Debug("loaded preset")
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		log.WithField("path", configFile).Debug("loaded config file")
	}

	applyFlags(cmd, cfg)
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("kt") {
		cfg.Motor.Kt = kt
		cfg.Motor.Kv = 0
	}
	if cmd.Flags().Changed("kv") {
		cfg.Motor.Kv = kv
	}
	if cmd.Flags().Changed("rll") {
		cfg.Motor.Rll = rll
	}
	if cmd.Flags().Changed("lll") {
		cfg.Motor.Lll = lll
	}
	if cmd.Flags().Changed("winding") {
		cfg.Motor.Winding = winding
	}
	if cmd.Flags().Changed("temp") {
		cfg.Motor.CopperTemp = temp
	}
	if cmd.Flags().Changed("vbus") {
		cfg.Motor.BusVoltage = vbus
	}
	if cmd.Flags().Changed("util") {
		cfg.Motor.Utilization = util
	}
	if cmd.Flags().Changed("imax") {
		cfg.Limits.MaxPhaseCurrent = imax
	}
	if cmd.Flags().Changed("idfw") {
		cfg.Limits.MaxFieldWeakening = idFW
	}
	if cmd.Flags().Changed("direction") {
		cfg.Limits.Direction = direction
	}
	if cmd.Flags().Changed("limits") {
		cfg.Limits.SupplyWatts = parseLimits(limits)
	}
	if cmd.Flags().Changed("ratio") {
		cfg.Transmission.Ratio = ratio
	}
	if cmd.Flags().Changed("eta") {
		cfg.Transmission.Efficiency = eta
	}
	if cmd.Flags().Changed("radius") {
		cfg.Transmission.DrumRadius = radius
	}
	if cmd.Flags().Changed("max-speed") {
		cfg.Sweep.MaxSpeed = maxSpeed
	}
	if cmd.Flags().Changed("steps") {
		cfg.Sweep.Steps = steps
	}
}

func parseLimits(s string) []int {
	var watts []int
	for _, part := range strings.Split(s, ",") {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || w <= 0 {
			log.WithField("value", part).Warn("ignoring invalid supply limit")
			continue
		}
		watts = append(watts, w)
	}
	return watts
}

func buildTable(cmd *cobra.Command) (curve.Generator, *curve.Table, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return curve.Generator{}, nil, err
	}
	gen, err := cfg.Generator()
	if err != nil {
		return curve.Generator{}, nil, err
	}

	el := gen.Motor.Derive()
	log.WithFields(log.Fields{
		"kt":      el.Kt,
		"r_phase": el.RPhase,
		"v_max":   el.VMax,
	}).Debug("derived electrical model")

	return gen, gen.Generate(), nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	gen, table, err := buildTable(cmd)
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(gen.Motor.Derive(), gen.Limits, table))
	fmt.Println(viz.Chart(table, chartWidth, chartHeight))

	if showTable {
		fmt.Println()
		fmt.Print(viz.Table(table, 25))
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	_, table, err := buildTable(cmd)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		if outPath == "" {
			return export.WriteCSV(os.Stdout, table)
		}
		if err := export.ExportCSV(outPath, table); err != nil {
			return err
		}
	case "json":
		if outPath == "" {
			return export.WriteJSON(os.Stdout, preset, table)
		}
		if err := export.ExportJSON(outPath, preset, table); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", format)
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	_, table, err := buildTable(cmd)
	if err != nil {
		return err
	}
	if err := export.SavePNG(outPath, title, table); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBUS\tIMAX\tDIRECTION\tLIMITS")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		lims := make([]string, len(p.Limits.SupplyWatts))
		for i, watts := range p.Limits.SupplyWatts {
			lims[i] = strconv.Itoa(watts)
		}
		fmt.Fprintf(w, "%s\t%.0fV\t%.0fA\t%s\t%s\n",
			name,
			p.Motor.BusVoltage,
			p.Limits.MaxPhaseCurrent,
			p.Limits.Direction,
			strings.Join(lims, ","),
		)
	}
	return w.Flush()
}
