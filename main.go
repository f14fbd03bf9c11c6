package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/golang/glog"

	"painter3d/app"
	"painter3d/hal"
	"painter3d/render/vecmath"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		flags    = app.DefaultConfig()
		fov      float64
		spinDeg  float64
		cfgPath  string
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate (updates per second).")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.BoolVar(&headless.ASCII, "ascii", false, "Print the last headless frame as text.")
	flag.IntVar(&window.Width, "width", hal.DefaultWidth, "Framebuffer width in pixels.")
	flag.IntVar(&window.Height, "height", hal.DefaultHeight, "Framebuffer height in pixels.")
	flag.IntVar(&window.Scale, "scale", 1, "Window pixels per framebuffer pixel.")
	flag.StringVar(&flags.MeshPath, "mesh", "", "OBJ mesh to render.")
	flag.StringVar(&flags.Shape, "shape", flags.Shape, "Built-in mesh when -mesh is not set (cube, torus, triangle).")
	flag.Float64Var(&fov, "fov", float64(flags.Lens.FOVDeg), "Vertical field of view in degrees.")
	flag.BoolVar(&flags.Outline, "outline", false, "Outline every triangle (Tab toggles).")
	flag.IntVar(&flags.Bands, "bands", 0, "Shading levels (0 = smooth).")
	flag.Float64Var(&spinDeg, "spin", 0, "Spin the model by this many degrees per second.")
	flag.IntVar(&flags.LogEvery, "log-every", flags.LogEvery, "Log frame statistics every N frames (0 = never).")
	flag.BoolVar(&flags.HideHUD, "no-hud", false, "Hide the text overlay.")
	flag.StringVar(&cfgPath, "config", "", "JSON scene file; flags given explicitly override it.")
	_ = flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	flags.Lens.FOVDeg = float32(fov)
	flags.Spin = vecmath.Radians(float32(spinDeg))

	cfg, err := sceneConfig(cfgPath, flags)
	if err != nil {
		exit(err)
	}
	mesh, err := app.LoadMesh(cfg, func(s string) { glog.Warning(s) })
	if err != nil {
		exit(err)
	}
	newApp := func(h hal.HAL) func() error {
		a, err := app.New(h, mesh, cfg)
		if err != nil {
			return func() error { return err }
		}
		return a.Step
	}

	if headless.Enabled {
		headless.Width, headless.Height = window.Width, window.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil && !errors.Is(err, context.Canceled) {
			exit(err)
		}
		return
	}

	window.TPS = headless.Hz
	if err := hal.RunWindow(newApp, window); err != nil {
		exit(err)
	}
}

// sceneConfig starts from the file at path, if any, and then applies the
// flags that were set on the command line.
func sceneConfig(path string, flags app.Config) (app.Config, error) {
	if path == "" {
		return flags, nil
	}
	scene, err := app.LoadScene(path)
	if err != nil {
		return app.Config{}, err
	}
	cfg := app.DefaultConfig()
	cfg.LogEvery = flags.LogEvery
	cfg.HideHUD = flags.HideHUD
	scene.Apply(&cfg)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mesh":
			cfg.MeshPath = flags.MeshPath
		case "shape":
			cfg.Shape = flags.Shape
			if !setOnCommandLine("mesh") {
				cfg.MeshPath = ""
			}
		case "fov":
			cfg.Lens.FOVDeg = flags.Lens.FOVDeg
		case "outline":
			cfg.Outline = flags.Outline
		case "bands":
			cfg.Bands = flags.Bands
		case "spin":
			cfg.Spin = flags.Spin
		}
	})
	return cfg, nil
}

func setOnCommandLine(name string) bool {
	var set bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func exit(err error) {
	glog.Flush()
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
