package main

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/akamensky/argparse"

	"github.com/cjeanneret/BeamGo/internal/config"
	"github.com/cjeanneret/BeamGo/internal/debug"
	"github.com/cjeanneret/BeamGo/internal/logic/geometry"
	"github.com/cjeanneret/BeamGo/internal/logic/sweep"
	"github.com/cjeanneret/BeamGo/internal/report"
)

// overrides collects CLI values layered on top of the loaded config.
// NaN for a float, 0 for samples and "" for format mean "not set".
type overrides struct {
	pitchDeg    float64
	rollDeg     float64
	foreAftDeg  float64
	portStbdDeg float64
	fromDeg     float64
	toDeg       float64
	samples     int
	format      string
}

func main() {
	parser := argparse.NewParser("beamgo",
		"Angle from vertical of the four Janus transducer beams of a glider-mounted current profiler")

	cfgPath := parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "path to YAML config file; omit to use built-in defaults"})

	pitch := parser.Float("", "pitch", &argparse.Options{
		Default: math.NaN(),
		Help:    "vehicle pitch in degrees, nose-up positive"})

	roll := parser.Float("", "roll", &argparse.Options{
		Default: math.NaN(),
		Help:    "vehicle roll in degrees, starboard-down positive"})

	foreAft := parser.Float("", "fore_aft", &argparse.Options{
		Default: math.NaN(),
		Help:    "fore/aft pair mounting angle from vertical in degrees"})

	portStbd := parser.Float("", "port_stbd", &argparse.Options{
		Default: math.NaN(),
		Help:    "port/starboard pair mounting angle from vertical in degrees"})

	mode := parser.Selector("m", "mode", []string{"single", "sweep", "balance"}, &argparse.Options{
		Default: "single",
		Help:    "single = one attitude, sweep = pitch sweep table, balance = find the dive pitch that matches fore to port/stbd"})

	format := parser.String("f", "format", &argparse.Options{
		Default: "",
		Help:    "sweep output format: text or csv (default from config)"})

	from := parser.Float("", "from", &argparse.Options{
		Default: math.NaN(),
		Help:    "sweep start pitch in degrees"})

	to := parser.Float("", "to", &argparse.Options{
		Default: math.NaN(),
		Help:    "sweep end pitch in degrees"})

	samples := parser.Int("", "samples", &argparse.Options{
		Default: 0,
		Help:    "number of sweep samples"})

	output := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "output file path (default stdout)"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	// Load configuration; the config file is optional for this tool.
	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config failed: %v", err)
		}
		cfg = loaded
	}

	ov := overrides{
		pitchDeg:    *pitch,
		rollDeg:     *roll,
		foreAftDeg:  *foreAft,
		portStbdDeg: *portStbd,
		fromDeg:     *from,
		toDeg:       *to,
		samples:     *samples,
		format:      *format,
	}
	if err := validateOverrides(ov); err != nil {
		log.Fatalf("invalid CLI override: %v", err)
	}
	applyOverrides(cfg, ov)

	debug.Init(cfg.Defaults.DebugLevel)
	debug.Section("Instrument geometry")
	debug.Value("Fore/aft mounting angle", cfg.Instrument.ForeAftAngleDeg)
	debug.Value("Port/stbd mounting angle", cfg.Instrument.PortStarboardAngleDeg)
	debug.PrintStruct("Attitude", cfg.Attitude)
	debug.PrintStruct("Sweep", cfg.Sweep)

	calc := geometry.NewBeamCalculator(geometry.Mounting{
		ForeAftDeg:       cfg.Instrument.ForeAftAngleDeg,
		PortStarboardDeg: cfg.Instrument.PortStarboardAngleDeg,
	})

	var buf bytes.Buffer
	if err := run(&buf, calc, cfg, *mode); err != nil {
		log.Fatalf("%s failed: %v", *mode, err)
	}

	if *output == "" {
		fmt.Print(buf.String())
	} else {
		if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
			log.Fatalf("write output failed: %v", err)
		}
		debug.Info("Wrote %s", *output)
	}
}

// run evaluates the requested mode into buf.
func run(buf *bytes.Buffer, calc *geometry.BeamCalculator, cfg *config.Config, mode string) error {
	switch mode {
	case "single":
		angles := calc.AnglesFromVertical(geometry.Attitude{
			PitchDeg: cfg.Attitude.PitchDeg,
			RollDeg:  cfg.Attitude.RollDeg,
		})
		debug.Beams("result", angles)
		report.WriteText(buf, angles)

	case "sweep":
		points, err := sweep.Pitch(calc, cfg.Attitude.RollDeg,
			cfg.Sweep.FromDeg, cfg.Sweep.ToDeg, cfg.Sweep.Samples)
		if err != nil {
			return err
		}
		if debug.IsEnabled(debug.LevelLive) {
			for i, pt := range points {
				debug.Sample(i+1, len(points), pt.PitchDeg)
			}
		}
		if cfg.Defaults.OutputFormat == "csv" {
			report.WriteSweepCSV(buf, points)
		} else {
			report.WriteSweepText(buf, points)
		}

	case "balance":
		bal, err := sweep.BalancePitch(calc, cfg.Attitude.RollDeg,
			cfg.Sweep.FromDeg, cfg.Sweep.ToDeg, cfg.Sweep.Samples)
		if err != nil {
			return err
		}
		debug.Beams("balanced", bal.Angles)
		report.WriteBalanceText(buf, bal)

	default:
		return fmt.Errorf("unsupported mode: %s", mode)
	}
	return nil
}

// validateOverrides checks that set CLI overrides are usable.
// Unset values (NaN, 0 samples, empty format) are ignored.
func validateOverrides(ov overrides) error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"pitch", ov.pitchDeg},
		{"roll", ov.rollDeg},
		{"from", ov.fromDeg},
		{"to", ov.toDeg},
	} {
		if math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be finite, got %g", f.name, f.value)
		}
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"fore_aft", ov.foreAftDeg},
		{"port_stbd", ov.portStbdDeg},
	} {
		if math.IsNaN(f.value) {
			continue
		}
		if math.IsInf(f.value, 0) || f.value <= 0 || f.value >= 90 {
			return fmt.Errorf("%s must be between 0 and 90 exclusive, got %g", f.name, f.value)
		}
	}
	if ov.samples != 0 && ov.samples < 2 {
		return fmt.Errorf("samples must be >= 2, got %d", ov.samples)
	}
	if ov.format != "" && ov.format != "text" && ov.format != "csv" {
		return fmt.Errorf("format must be \"text\" or \"csv\", got %q", ov.format)
	}
	return nil
}

// applyOverrides mutates cfg with the set CLI overrides.
func applyOverrides(cfg *config.Config, ov overrides) {
	if !math.IsNaN(ov.pitchDeg) {
		cfg.Attitude.PitchDeg = ov.pitchDeg
	}
	if !math.IsNaN(ov.rollDeg) {
		cfg.Attitude.RollDeg = ov.rollDeg
	}
	if !math.IsNaN(ov.foreAftDeg) {
		cfg.Instrument.ForeAftAngleDeg = ov.foreAftDeg
	}
	if !math.IsNaN(ov.portStbdDeg) {
		cfg.Instrument.PortStarboardAngleDeg = ov.portStbdDeg
	}
	if !math.IsNaN(ov.fromDeg) {
		cfg.Sweep.FromDeg = ov.fromDeg
	}
	if !math.IsNaN(ov.toDeg) {
		cfg.Sweep.ToDeg = ov.toDeg
	}
	if ov.samples != 0 {
		cfg.Sweep.Samples = ov.samples
	}
	if ov.format != "" {
		cfg.Defaults.OutputFormat = ov.format
	}
}
