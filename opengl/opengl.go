//go:build !nogl

// Package opengl displays foraging walks in an interactive OpenGL window.
package opengl

import (
	"fmt"

	"github.com/cnuernber/forage"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
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

// Run displays successive foraging walks in an OpenGL window.
// Space runs walks continuously, right arrow steps one walk at a time,
// R resets the viewport, scrolling zooms around the cursor and Esc quits.
func Run(conf *Config) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	const (
		title  = "Forage"
		width  = 800
		height = 800
	)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return err
	}
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return err
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	w.SwapBuffers()

	d, err := newDisplay(conf)
	if err != nil {
		return err
	}

	o := conf.Walk()

	// handle scrolling zoom
	vp := viewport{{float32(conf.Xmin), float32(conf.Ymin)}, {float32(conf.Xmax), float32(conf.Ymax)}}
	w.SetScrollCallback(func(w *glfw.Window, xo, yo float64) {
		xc, yc := w.GetCursorPos()
		xs, ys := w.GetSize()
		x, y := float32(xc)/float32(xs), (float32(ys)-float32(yc))/float32(ys)
		dx, dy := vp[1].X-vp[0].X, vp[1].Y-vp[0].Y
		z := 0.05 * float32(yo)
		vp[0].X += z * -(x * dx)
		vp[0].Y += z * -(y * dy)
		vp[1].X += z * (1 - x) * dx
		vp[1].Y += z * (1 - y) * dy
		d.draw(o, vp)
		w.SwapBuffers()
	})

	var quit, step bool
	pause := true
	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, mod glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			quit = true
		}
		if key == glfw.KeySpace && action == glfw.Press {
			pause = !pause
		}
		if key == glfw.KeyRight && (action == glfw.Press || action == glfw.Repeat) {
			if pause {
				step = true
			}
		}
		if key == glfw.KeyR && action == glfw.Press {
			vp = viewport{{float32(conf.Xmin), float32(conf.Ymin)}, {float32(conf.Xmax), float32(conf.Ymax)}}
			d.draw(o, vp)
			w.SwapBuffers()
		}
	})

	for !(quit || w.ShouldClose()) {
		if step {
			step = false
			o = conf.Walk()
		}
		if !pause {
			o = conf.Walk()
		}
		d.draw(o, vp)
		w.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// A viewport is a rectangle delimiting the area of walk space shown on screen.
// The first point is the bottom left corner, the second point is the top right corner.
type viewport [2]struct{ X, Y float32 }

// vertexSrc maps walk coordinates into the viewport rectangle.
const vertexSrc = `#version 330 core

layout(location = 0) in vec2 pos;

uniform vec2 vp[2];

void main() {
	vec2 p = 2.0 * (pos - vp[0]) / (vp[1] - vp[0]) - 1.0;
	gl_Position = vec4(p, 0.0, 1.0);
	gl_PointSize = 6.0;
}
` + "\x00"

// fragmentSrc paints everything in a single uniform color.
const fragmentSrc = `#version 330 core

uniform vec4 color;

out vec4 fragColor;

void main() {
	fragColor = color;
}
` + "\x00"

// display contains all the OpenGL objects required to display walks.
type display struct {
	conf *Config
	vao  uint32
	prog uint32
	buf  struct {
		path  uint32 // traversed path, including the remainder tail
		spots uint32 // foodspot positions
	}
	uni struct {
		vp    int32 // viewport
		color int32 // draw color
	}
	npath int32 // stops in the traversed path
	nrem  int32 // stops in the remainder
}

// draw updates the OpenGL buffers and draws one walk outcome on screen.
func (d *display) draw(o forage.WalkOutcome, vp viewport) {
	gl.UseProgram(d.prog)
	gl.Uniform2fv(d.uni.vp, 2, &vp[0].X)
	d.updateWalk(o)

	gl.Clear(gl.COLOR_BUFFER_BIT)

	// foodspots
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.buf.spots)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, nil)
	gl.Uniform4f(d.uni.color, 1, 1, 0, 1)
	gl.DrawArrays(gl.POINTS, 0, int32(len(d.conf.Spots)))

	gl.BindBuffer(gl.ARRAY_BUFFER, d.buf.path)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, nil)

	// unexplored remainder, then traversed path on top
	if d.nrem > 0 {
		gl.Uniform4f(d.uni.color, 0.35, 0.35, 0.35, 1)
		gl.DrawArrays(gl.LINE_STRIP, d.npath, d.nrem)
	}
	gl.Uniform4f(d.uni.color, 1, 1, 1, 1)
	gl.DrawArrays(gl.LINE_STRIP, 0, d.npath)

	// detection point
	if o.Found != nil {
		gl.Uniform4f(d.uni.color, 1, 0, 0, 1)
		gl.DrawArrays(gl.POINTS, d.npath-1, 1)
	}
}

// updateWalk uploads the stops of one walk outcome, path first and
// remainder behind it in the same buffer.
func (d *display) updateWalk(o forage.WalkOutcome) {
	n := len(o.Path) + len(o.Remainder)
	if n > d.conf.MaxStops {
		n = d.conf.MaxStops
	}
	data := make([]float32, 0, 2*n)
	for _, s := range o.Path {
		data = append(data, float32(s.X), float32(s.Y))
	}
	for _, s := range o.Remainder {
		data = append(data, float32(s.X), float32(s.Y))
	}
	data = data[:2*n]
	np := len(o.Path)
	if np > n {
		np = n
	}
	d.npath = int32(np)
	d.nrem = int32(n - np)

	gl.BindBuffer(gl.ARRAY_BUFFER, d.buf.path)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, 4*len(data), gl.Ptr(data))
}

// newDisplay compiles the shaders and initializes the vertex buffers.
func newDisplay(conf *Config) (*display, error) {
	d := &display{conf: conf}

	var err error
	d.prog, err = makeProg(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	// uniform locations cannot be specified in the shaders in OpenGL 3.3 core
	d.uni.vp = gl.GetUniformLocation(d.prog, gl.Str("vp\x00"))
	d.uni.color = gl.GetUniformLocation(d.prog, gl.Str("color\x00"))

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.EnableVertexAttribArray(0)

	// walks change every step: stream a buffer big enough for the
	// longest path plus its remainder
	gl.GenBuffers(1, &d.buf.path)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.buf.path)
	gl.BufferData(gl.ARRAY_BUFFER, 2*4*conf.MaxStops, nil, gl.STREAM_DRAW)

	// foodspots never change: upload them once
	spots := make([]float32, 0, 2*len(conf.Spots))
	for _, s := range conf.Spots {
		spots = append(spots, float32(s.X), float32(s.Y))
	}
	gl.GenBuffers(1, &d.buf.spots)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.buf.spots)
	if len(spots) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 4*len(spots), gl.Ptr(spots), gl.STATIC_DRAW)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return d, nil
}

// makeProg compiles and links the shader program.
func makeProg(sources ...string) (uint32, error) {
	kinds := []uint32{gl.VERTEX_SHADER, gl.FRAGMENT_SHADER}
	prog := gl.CreateProgram()
	for i, src := range sources {
		shader := gl.CreateShader(kinds[i])
		str, free := gl.Strs(src)
		gl.ShaderSource(shader, 1, str, nil)
		free()
		gl.CompileShader(shader)
		var status int32
		gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
		if status != gl.TRUE {
			var n int32
			gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
			log := make([]uint8, n)
			gl.GetShaderInfoLog(shader, n, &n, &log[0])
			gl.DeleteShader(shader)
			return 0, fmt.Errorf("opengl: shader compilation error: %s", gl.GoStr(&log[0]))
		}
		gl.AttachShader(prog, shader)
	}
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		return 0, fmt.Errorf("opengl: program link error")
	}
	return prog, nil
}
