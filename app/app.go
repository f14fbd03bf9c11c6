// Package app drives one scene: it owns the camera, feeds keyboard input
// into it and renders a frame into the HAL framebuffer on every step.
package app

import (
	"errors"
	"fmt"

	"painter3d/hal"
	"painter3d/meshgen"
	"painter3d/meshio"
	"painter3d/render/camera"
	"painter3d/render/geom"
	"painter3d/render/pipeline"
	"painter3d/render/raster"
	"painter3d/render/vecmath"
)

var ErrNoFramebuffer = errors.New("no RGB565 framebuffer")

// LoadMesh returns the mesh cfg asks for: the OBJ file at MeshPath, or
// the built-in Shape. OBJ lines the parser skips go to warn.
func LoadMesh(cfg Config, warn func(string)) (geom.Mesh, error) {
	cfg = cfg.withDefaults()
	if cfg.MeshPath != "" {
		return meshio.Load(cfg.MeshPath, warn)
	}
	return meshgen.Named(cfg.Shape)
}

// App is the per-tick state of a running scene.
type App struct {
	log   hal.Logger
	fb    hal.Framebuffer
	kbd   hal.Keyboard
	ticks <-chan uint64
	seq   uint64 // last tick count seen

	cfg    Config
	mesh   geom.Mesh
	cam    camera.State
	world  camera.World
	proj   vecmath.Mat4
	r      *pipeline.Renderer
	canvas *raster.Canvas
	hud    *hud

	frames uint64
	stats  pipeline.Stats
	fps    fpsMeter
}

// New prepares mesh for rendering into h's framebuffer.
func New(h hal.HAL, mesh geom.Mesh, cfg Config) (*App, error) {
	cfg = cfg.withDefaults()

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrNoFramebuffer
	}

	a := &App{
		log:    h.Logger(),
		fb:     fb,
		cfg:    cfg,
		mesh:   mesh,
		cam:    cfg.Start,
		world:  cfg.World,
		proj:   cfg.Lens.Projection(fb.Width(), fb.Height()),
		canvas: raster.NewCanvas(targetFor(fb)),
		hud:    newHUD(fb),
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	if t := h.Time(); t != nil {
		a.ticks = t.Ticks()
	}

	a.r = pipeline.NewRenderer()
	a.r.Light = cfg.Light
	a.r.Ramp = cfg.ramp()
	a.r.Outline = cfg.Outline

	a.logf("mesh %q: %d triangles, screen %dx%d, fov %.0f",
		mesh.Name, mesh.Len(), fb.Width(), fb.Height(), cfg.Lens.FOVDeg)
	return a, nil
}

// Step advances the scene by the time elapsed since the previous step and
// draws one frame. It returns hal.ErrStop when Escape is pressed.
func (a *App) Step() error {
	dt := a.elapsed()

	motion, quit := a.readInput()
	if quit {
		a.logf("escape pressed after %d frames", a.frames)
		return hal.ErrStop
	}
	a.cam = a.cfg.Fly.Apply(a.cam, motion, dt)

	if a.cfg.Spin != 0 {
		a.world.RotZ += a.cfg.Spin * dt
		a.world.RotX += a.cfg.Spin * 0.5 * dt
	}
	a.r.World = a.world.Matrix()

	a.fb.ClearRGB(0, 0, 0)
	a.stats = a.r.Render(a.mesh, a.cam, a.fb.Width(), a.fb.Height(), a.proj, a.canvas)
	a.frames++

	fps := a.fps.add(dt)
	if !a.cfg.HideHUD {
		a.hud.draw(
			fmt.Sprintf("FPS %.0f", fps),
			fmt.Sprintf("tris %d/%d", a.stats.Drawn, a.stats.Input),
		)
	}
	if err := a.fb.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", a.frames, err)
	}

	if a.cfg.LogEvery > 0 && a.frames%uint64(a.cfg.LogEvery) == 0 {
		s := a.stats
		a.logf("frame %d: input=%d culled=%d degenerate=%d nearclip=%d sorted=%d drawn=%d fps=%.1f",
			a.frames, s.Input, s.Culled, s.Degenerate, s.NearClip, s.Sorted, s.Drawn, fps)
	}
	return nil
}

// Camera returns the current camera state.
func (a *App) Camera() camera.State { return a.cam }

// Stats returns the counters of the last rendered frame.
func (a *App) Stats() pipeline.Stats { return a.stats }

// elapsed drains the tick stream and converts the growth of the tick
// count since the previous call to seconds.
func (a *App) elapsed() float32 {
	latest := a.seq
	for {
		select {
		case seq := <-a.ticks:
			latest = max(latest, seq)
			continue
		default:
		}
		break
	}
	n := latest - a.seq
	a.seq = latest
	return float32(n) * float32(hal.TickDuration.Seconds())
}

func (a *App) readInput() (m camera.Motion, quit bool) {
	if a.kbd == nil {
		return m, false
	}
	for {
		select {
		case ev := <-a.kbd.Events():
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyEscape:
				quit = true
			case hal.KeyTab:
				a.r.Outline = !a.r.Outline
			}
			continue
		default:
		}
		break
	}

	k := a.kbd
	m = camera.Motion{
		Up:        k.Pressed(hal.KeyUp),
		Down:      k.Pressed(hal.KeyDown),
		Left:      k.Pressed(hal.KeyLeft),
		Right:     k.Pressed(hal.KeyRight),
		Forward:   k.Pressed(hal.KeyW),
		Back:      k.Pressed(hal.KeyS),
		TurnLeft:  k.Pressed(hal.KeyA),
		TurnRight: k.Pressed(hal.KeyD),
	}
	return m, quit
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

// fpsMeter reports frames per second over roughly one-second windows.
type fpsMeter struct {
	acc    float32
	frames int
	fps    float32
}

func (m *fpsMeter) add(dt float32) float32 {
	m.acc += dt
	m.frames++
	if m.acc >= 1 {
		m.fps = float32(m.frames) / m.acc
		m.acc = 0
		m.frames = 0
	}
	return m.fps
}
