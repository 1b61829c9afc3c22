// Command forage runs foraging walk simulations: random searches for
// foodspots in a continuous 2D arena.
//
// Usage
//
// The forage command takes one optional argument:
//  forage [config_file]
// It is the path to a TOML config file.
// If no config file is specified, an interactive session
// with default parameters will run in an OpenGL window.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/cnuernber/forage"
	"github.com/cnuernber/forage/dist"
	"github.com/cnuernber/forage/hdf5"
	"github.com/cnuernber/forage/opengl"
	"github.com/cnuernber/forage/spatial"
)

const usage = `Usage: forage [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, an interactive session
with default parameters will run in an OpenGL window.
`

func init() {
	// Most OpenGL functions have to run from the main thread.
	// This is needed to arrange that main() runs on main thread.
	// See https://github.com/golang/go/wiki/LockOSThread for more info.
	runtime.LockOSThread()
}

func main() {
	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = DefaultConf
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	src := dist.NewSource(conf.Seed1, conf.Seed2)
	spots := setupSpots(conf, src)
	grid := spatial.NewGrid(conf.PerceptRadius, spots)
	walk := setupWalk(conf, src, grid.Look)

	// run interactively or not depending on config
	if conf.Output == "" {
		err = opengl.Run(&opengl.Config{
			MaxStops: conf.MaxStops,
			Walk:     walk,
			Spots:    spotStops(spots),
			Xmin:     0,
			Ymin:     0,
			Xmax:     conf.DomainSize,
			Ymax:     conf.DomainSize,
		})
	} else {
		err = hdf5.Run(&hdf5.Config{
			Output: conf.Output,
			Walks:  conf.Walks,
			Walk:   walk,
			Datasets: []*hdf5.Dataset{
				{
					Name: "stops",
					Val:  hdf5.Point{},
					Dims: []int{conf.MaxStops},
					Data: getStops(conf.MaxStops),
				},
				{
					Name: "nstops",
					Val:  0,
					Data: func(o forage.WalkOutcome) interface{} {
						n := len(o.Path)
						return &n
					},
				},
				{
					Name: "found",
					Val:  0,
					Data: func(o forage.WalkOutcome) interface{} {
						f := 0
						if o.Found != nil {
							f = 1
						}
						return &f
					},
				},
			},
		})
	}
	if err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard output and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// getStops pads the stops of a walk into a fixed-size record.
func getStops(size int) func(o forage.WalkOutcome) interface{} {
	return func(o forage.WalkOutcome) interface{} {
		p := make([]hdf5.Point, size)
		n := len(o.Path)
		if n > size {
			n = size
		}
		for i, s := range o.Path[:n] {
			p[i] = hdf5.Point{X: s.X, Y: s.Y}
		}
		return &p
	}
}

// setupWalk builds the walk routine for the configured strategy.
// All strategies draw from the one shared source, so a run is
// reproducible from its seeds.
func setupWalk(conf *Config, src *dist.Source, look forage.Detector) func() forage.WalkOutcome {
	start := forage.Stop{X: 0.5 * conf.DomainSize, Y: 0.5 * conf.DomainSize}
	angles := dist.Angles(src)
	pareto := dist.Pareto{Src: src, Scale: conf.MinStep, Shape: conf.Mu - 1}
	expo := dist.Exponential{Src: src, Rate: conf.Rate}

	switch conf.Strategy {
	case "levy":
		return func() forage.WalkOutcome {
			o, err := forage.LevyFoodwalk(look, conf.Eps, forage.LevyConfig{
				Start:     start,
				Direction: angles,
				Length:    pareto,
				MinLen:    conf.MinStep,
				MaxLen:    conf.MaxStep,
				PathLen:   conf.PathLen,
			})
			if err != nil {
				Fatal(err)
			}
			return o
		}
	case "brownian":
		return func() forage.WalkOutcome {
			o, err := forage.LevyFoodwalk(look, conf.Eps, forage.LevyConfig{
				Start:     start,
				Direction: angles,
				Length:    expo,
				MinLen:    conf.MinStep,
				MaxLen:    conf.MaxStep,
				PathLen:   conf.PathLen,
			})
			if err != nil {
				Fatal(err)
			}
			return o
		}
	case "straight":
		return func() forage.WalkOutcome {
			o, err := forage.StraightFoodwalk(look, conf.Eps, forage.StraightConfig{
				Start:     start,
				Direction: angles,
				MaxLen:    conf.PathLen,
				MaxPad:    conf.MaxPad,
				Pad:       dist.Uniform{Src: src, High: conf.MaxPad},
			})
			if err != nil {
				Fatal(err)
			}
			return o
		}
	case "composite":
		// splice long power-law steps with short exponential ones,
		// switching every RunLen steps
		return func() forage.WalkOutcome {
			long := &forage.Generator{Direction: angles, Length: pareto, MinLen: conf.MinStep, MaxLen: conf.MaxStep}
			short := &forage.Generator{Direction: angles, Length: expo}
			comp, err := forage.NewComposite(
				[]forage.Stream{long, short},
				[]forage.SwitchFunc{forage.SwitchEvery(conf.RunLen), forage.SwitchEvery(conf.RunLen)},
				[]string{"long", "short"},
			)
			if err != nil {
				Fatal(err)
			}
			steps := forage.TrimToLength(comp, conf.PathLen, true)
			o, err := forage.Foodwalk(look, conf.Eps, forage.Accumulate(start, steps))
			if err != nil {
				Fatal(err)
			}
			return o
		}
	default:
		Fatal(fmt.Errorf("bad strategy %q", conf.Strategy))
		return nil
	}
}

// setupSpots places the foodspots for the configured layout.
func setupSpots(conf *Config, src *dist.Source) []spatial.Foodspot {
	switch conf.FoodLayout {
	case "random":
		return randomSpots(conf, src)
	case "lattice":
		return latticeSpots(conf)
	case "data":
		pts, err := hdf5.LoadPoints(conf.FoodDataPath, "foodspots")
		if err != nil {
			Fatal(err)
		}
		spots := make([]spatial.Foodspot, len(pts))
		for i, p := range pts {
			spots[i] = spatial.Foodspot{X: p.X, Y: p.Y}
		}
		return spots
	default:
		Fatal(fmt.Errorf("bad food layout %q", conf.FoodLayout))
		return nil
	}
}

// randomSpots places foodspots uniformly at random in the arena.
func randomSpots(conf *Config, src *dist.Source) []spatial.Foodspot {
	spots := make([]spatial.Foodspot, conf.FoodCount)
	for i := range spots {
		spots[i].X = conf.DomainSize * src.Float64()
		spots[i].Y = conf.DomainSize * src.Float64()
	}
	return spots
}

// latticeSpots places foodspots on a square lattice covering the arena.
// The walk start point falls in the center of a lattice cell.
func latticeSpots(conf *Config) []spatial.Foodspot {
	var spots []spatial.Foodspot
	half := 0.5 * conf.FoodSpacing
	for y := half; y <= conf.DomainSize; y += conf.FoodSpacing {
		for x := half; x <= conf.DomainSize; x += conf.FoodSpacing {
			spots = append(spots, spatial.Foodspot{X: x, Y: y})
		}
	}
	return spots
}

// spotStops converts foodspots to stops for display.
func spotStops(spots []spatial.Foodspot) []forage.Stop {
	s := make([]forage.Stop, len(spots))
	for i, p := range spots {
		s[i] = forage.Stop{X: p.X, Y: p.Y}
	}
	return s
}
