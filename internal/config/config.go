package config

import (
	"os"
	"strconv"

	"logicgrid/internal/circuit"
)

// Defaults used when the matching environment variable is unset or invalid.
const (
	DefaultGridSize    = circuit.DefaultGridSize
	DefaultMaxPasses   = circuit.DefaultMaxPasses
	DefaultPinSnap     = circuit.DefaultPinSnapRadius
	DefaultMergeRadius = circuit.DefaultMergeRadius
	DefaultLampRadius  = circuit.DefaultLampConnectRadius
)

// Environment variables read by Load.
const (
	EnvGrid        = "LOGICGRID_GRID"
	EnvMaxPasses   = "LOGICGRID_MAX_PASSES"
	EnvPinSnap     = "LOGICGRID_PIN_SNAP"
	EnvMergeRadius = "LOGICGRID_MERGE_RADIUS"
	EnvLampRadius  = "LOGICGRID_LAMP_RADIUS"
	EnvDebug       = "LOGICGRID_DEBUG"
)

// Config holds the editor settings.
type Config struct {
	GridSize    float64
	MaxPasses   int
	PinSnap     float64
	MergeRadius float64
	LampRadius  float64 // lamp connection radius
	DebugLog    string  // TUI log file, empty disables logging
}

// Load reads the configuration from the environment, falling back to
// defaults for unset or invalid values.
func Load() Config {
	return Config{
		GridSize:    envFloat(EnvGrid, DefaultGridSize),
		MaxPasses:   envInt(EnvMaxPasses, DefaultMaxPasses),
		PinSnap:     envFloat(EnvPinSnap, DefaultPinSnap),
		MergeRadius: envFloat(EnvMergeRadius, DefaultMergeRadius),
		LampRadius:  envFloat(EnvLampRadius, DefaultLampRadius),
		DebugLog:    os.Getenv(EnvDebug),
	}
}

// Options builds the circuit options for this configuration.
func (c Config) Options() circuit.Options {
	opts := circuit.DefaultOptions()
	opts.GridSize = c.GridSize
	opts.MaxPasses = c.MaxPasses
	opts.PinSnapRadius = c.PinSnap
	opts.MergeRadius = c.MergeRadius
	opts.LampConnectRadius = c.LampRadius
	return opts
}

func envFloat(key string, def float64) float64 {
	env := os.Getenv(key)
	if env == "" {
		return def
	}
	v, err := strconv.ParseFloat(env, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	env := os.Getenv(key)
	if env == "" {
		return def
	}
	v, err := strconv.Atoi(env)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
