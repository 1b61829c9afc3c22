package main

import (
	"github.com/BurntSushi/toml"
)

// Config holds the various parameters required for running foraging walks.
type Config struct {
	// Output is either a filename (path) for the HDF5 output file,
	// or the empty string for an interactive OpenGL session.
	Output string

	Walks int    // number of walks to run
	Seed1 uint64 // random source seed, first half
	Seed2 uint64 // random source seed, second half

	// Walk parameters
	Strategy string  // possible values: levy, brownian, straight, composite
	Mu       float64 // Lévy exponent μ of power-law step lengths; unit: 1
	Rate     float64 // exponential step rate (brownian and composite); unit: 1/length
	MinStep  float64 // smallest step length; unit: length
	MaxStep  float64 // largest step length (0 disables truncation); unit: length
	PathLen  float64 // total walk length; unit: length
	MaxPad   float64 // random start offset cap (straight only); unit: length
	RunLen   int     // steps per sub-walk before switching (composite only)
	Eps      float64 // detection scan increment; unit: length

	// Environment parameters
	PerceptRadius float64 // unit: length
	FoodLayout    string  // possible values: random, lattice, data
	FoodCount     int     // number of foodspots (random layout)
	FoodSpacing   float64 // distance between foodspots (lattice layout); unit: length
	FoodDataPath  string  // must be an HDF5 file containing a "foodspots" dataset
	DomainSize    float64 // side of the square arena, walks start at its center; unit: length

	// Output parameters
	MaxStops int // cap on recorded stops per walk
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Output:        "",
	Walks:         1000,
	Seed1:         42,
	Seed2:         54,
	Strategy:      "levy",
	Mu:            2,
	Rate:          0.5,
	MinStep:       1,
	MaxStep:       1000,
	PathLen:       2000,
	MaxPad:        0,
	RunLen:        10,
	Eps:           0.2,
	PerceptRadius: 1,
	FoodLayout:    "lattice",
	FoodCount:     400,
	FoodSpacing:   200,
	FoodDataPath:  "",
	DomainSize:    4000,
	MaxStops:      4096,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := DefaultConf
	_, err := toml.DecodeFile(path, conf)
	return conf, err
}
