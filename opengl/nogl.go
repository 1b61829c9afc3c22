//go:build nogl

// Package opengl displays foraging walks in an interactive OpenGL window.
package opengl

import (
	"fmt"
	"os"

	"github.com/cnuernber/forage"
)

// Config holds the parameters of the OpenGL driver.
type Config struct {
	MaxStops int                       // maximum number of stops per walk
	Walk     func() forage.WalkOutcome // run the next walk
	Spots    []forage.Stop             // foodspot positions

	// Bounds of default viewport.
	Xmin float64
	Ymin float64
	Xmax float64
	Ymax float64
}

// Run returns an error explaining that OpenGL support is disabled.
func Run(conf *Config) error {
	return fmt.Errorf("%s was built without OpenGL support", os.Args[0])
}
