package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/petterw/motion/animation"
	"github.com/petterw/motion/frameclock"
	"github.com/petterw/motion/internal/config"
	"github.com/petterw/motion/internal/tui"
	"github.com/petterw/motion/rubberband"
	"github.com/petterw/motion/vector"
)

var (
	configFile string
	preset     string
	model      string
	response   float64
	damping    float64
	rate       float64
	fps        int
	duration   float64
	from       float64
	velocity   float64
	target     float64
	// band command parameters
	bandDim   float64
	bandCoeff float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "motion",
		Short: "physically-based animation engine playground",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate an animation track and plot it",
		RunE:  runTrack,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&model, "model", "spring", "dynamics model (spring|decay|still)")
	runCmd.Flags().Float64Var(&response, "response", config.DefaultResponse, "spring response (period proxy)")
	runCmd.Flags().Float64Var(&damping, "damping", config.DefaultDamping, "spring damping ratio (0,1]")
	runCmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "decay rate per millisecond")
	runCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "max duration in seconds")
	runCmd.Flags().Float64Var(&from, "from", 0, "initial value")
	runCmd.Flags().Float64Var(&velocity, "velocity", 0, "initial velocity")
	runCmd.Flags().Float64Var(&target, "target", 1, "target value")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "drive an animator off a real frame clock",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE:  listPresets,
	}

	bandCmd := &cobra.Command{
		Use:   "band",
		Short: "plot the rubber-band transfer function",
		RunE:  plotBand,
	}
	bandCmd.Flags().Float64Var(&bandDim, "dim", 0.1, "overshoot dimension")
	bandCmd.Flags().Float64Var(&bandCoeff, "coeff", rubberband.DefaultCoeff, "stiffness coefficient")

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd, bandCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Explicit flags win over preset/config values.
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("model", func() { cfg.Model = model })
	set("response", func() { cfg.Response = response })
	set("damping", func() { cfg.Damping = damping })
	set("rate", func() { cfg.Rate = rate })
	set("fps", func() { cfg.FPS = fps })
	set("time", func() { cfg.Duration = duration })
	set("from", func() { cfg.From = from })
	set("velocity", func() { cfg.Velocity = velocity })
	set("target", func() { cfg.Target = target })

	return cfg, cfg.Validate()
}

// runTrack drives the full engine offline: a manual frame source ticked as
// fast as the loop goes, a scheduler, and one scalar animator.
func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dyn, err := cfg.NewModel()
	if err != nil {
		return err
	}

	src := frameclock.NewManual(time.Second / time.Duration(cfg.FPS))
	sched := animation.NewScheduler(src)
	anim := animation.NewAnimator[vector.Scalar](sched, dyn)
	anim.SetValue(vector.Scalar(cfg.From))
	anim.SetVelocity(vector.Scalar(cfg.Velocity))
	anim.SetTarget(vector.Scalar(cfg.Target))

	values := []float64{cfg.From}
	convergedAt := -1
	anim.OnCompletion = func() { convergedAt = len(values) }

	anim.Run()
	maxFrames := int(cfg.Duration * float64(cfg.FPS))
	for frame := 0; frame <= maxFrames && src.Running(); frame++ {
		src.Tick()
		values = append(values, float64(anim.Value()))
	}

	peak := cfg.From
	for _, v := range values {
		if math.Abs(v-cfg.Target) > math.Abs(peak-cfg.Target) {
			peak = v
		}
	}

	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(16),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("%s: %g -> %g", cfg.Model, cfg.From, cfg.Target)),
	))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "model\t%s\n", cfg.Model)
	fmt.Fprintf(w, "frames\t%d\n", len(values)-1)
	if convergedAt >= 0 {
		fmt.Fprintf(w, "converged\tframe %d (%.3fs)\n", convergedAt, float64(convergedAt)/float64(cfg.FPS))
	} else {
		fmt.Fprintf(w, "converged\tno (duration exceeded)\n")
	}
	fmt.Fprintf(w, "final value\t%.6f\n", values[len(values)-1])
	fmt.Fprintf(w, "final velocity\t%.6f\n", float64(anim.Velocity()))
	fmt.Fprintf(w, "peak overshoot\t%.6f\n", math.Abs(peak-cfg.Target))
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := tui.NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODEL\tPARAMS")
	for _, name := range names {
		cfg := config.GetPreset(name)
		switch cfg.Model {
		case "spring":
			fmt.Fprintf(w, "%s\t%s\tresponse=%g damping=%g\n", name, cfg.Model, cfg.Response, cfg.Damping)
		case "decay":
			fmt.Fprintf(w, "%s\t%s\trate=%g velocity=%g\n", name, cfg.Model, cfg.Rate, cfg.Velocity)
		default:
			fmt.Fprintf(w, "%s\t%s\t\n", name, cfg.Model)
		}
	}
	return w.Flush()
}

// plotBand samples the transfer function across three dimensions of raw
// overshoot so the asymptote is visible.
func plotBand(cmd *cobra.Command, args []string) error {
	const samples = 72
	banded := make([]float64, samples)
	for i := range banded {
		n := float64(i) / float64(samples-1) * bandDim * 3
		banded[i] = rubberband.Apply(n, bandDim, bandCoeff)
	}
	fmt.Println(asciigraph.Plot(banded,
		asciigraph.Height(16),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("band(n), dim=%g coeff=%g", bandDim, bandCoeff)),
	))
	return nil
}
