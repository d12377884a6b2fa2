package config

// Presets are the named motion feels the CLI ships with. Parameters mirror
// the controls the engine was built for: tab-bar slides, switch thumbs,
// slider drags and fling releases.
var Presets = map[string]*Config{
	"snappy": {
		Model: "spring", Response: 0.3, Damping: 1.0,
		FPS: 60, Duration: 2.0, Target: 1.0,
	},
	"gentle": {
		Model: "spring", Response: 0.8, Damping: 1.0,
		FPS: 60, Duration: 4.0, Target: 1.0,
	},
	"bouncy": {
		Model: "spring", Response: 0.5, Damping: 0.6,
		FPS: 60, Duration: 4.0, Target: 1.0,
	},
	"wobble": {
		Model: "spring", Response: 0.7, Damping: 0.35,
		FPS: 60, Duration: 6.0, Target: 1.0,
	},
	"fling": {
		Model: "decay", Rate: 0.998,
		FPS: 60, Duration: 4.0, Velocity: 3.0,
	},
	"overscroll": {
		Model: "spring", Response: 0.5, Damping: 1.0,
		FPS: 60, Duration: 3.0, From: 1.4, Target: 1.0,
		Band: Band{Enabled: true, Lower: 0, Upper: 1, Dim: 0.1, Coeff: 0.55},
	},
}

// GetPreset returns a copy of the named preset with unset numeric fields
// filled from the defaults, so switching models at runtime always has sane
// parameters to fall back on.
func GetPreset(name string) *Config {
	base, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *base
	def := DefaultConfig()
	if cfg.Response == 0 {
		cfg.Response = def.Response
	}
	if cfg.Damping == 0 {
		cfg.Damping = def.Damping
	}
	if cfg.Rate == 0 {
		cfg.Rate = def.Rate
	}
	if cfg.Epsilon == 0 {
		cfg.Epsilon = def.Epsilon
	}
	if cfg.FPS == 0 {
		cfg.FPS = def.FPS
	}
	if cfg.Duration == 0 {
		cfg.Duration = def.Duration
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
