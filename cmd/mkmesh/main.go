package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"painter3d/app"
	"painter3d/hal"
	"painter3d/meshgen"
	"painter3d/meshio"
	"painter3d/render/geom"
)

func main() {
	var (
		mode    = flag.String("mode", "gen", "gen|info|preview.")
		shape   = flag.String("shape", "cube", "Built-in shape for gen mode: "+strings.Join(meshgen.Shapes, "|")+".")
		inPath  = flag.String("in", "", "OBJ file to inspect (info mode) or render (preview mode; defaults to -shape).")
		outPath = flag.String("out", "-", "Output OBJ file for gen mode; - writes to stdout.")
		size    = flag.Float64("size", 1, "Cube edge length.")
		major   = flag.Float64("major", 1, "Torus ring radius.")
		minor   = flag.Float64("minor", 0.4, "Torus tube radius.")
		segU    = flag.Int("segu", 24, "Torus segments around the ring.")
		segV    = flag.Int("segv", 12, "Torus segments around the tube.")
		width   = flag.Int("width", 160, "Preview framebuffer width.")
		height  = flag.Int("height", 120, "Preview framebuffer height.")
		cols    = flag.Int("cols", 0, "Preview text width; 0 fits the terminal.")
	)
	_ = flag.Set("logtostderr", "true")
	flag.Parse()

	switch strings.ToLower(*mode) {
	case "gen":
		m, err := buildShape(*shape, float32(*size), float32(*major), float32(*minor), *segU, *segV)
		if err != nil {
			fatalf("gen: %v", err)
		}
		if err := writeMesh(*outPath, m); err != nil {
			fatalf("gen: %v", err)
		}
	case "info":
		if *inPath == "" {
			fatalf("usage: mkmesh -mode info -in mesh.obj")
		}
		m, err := meshio.Load(*inPath, warnf)
		if err != nil {
			fatalf("info: %v", err)
		}
		describe(os.Stdout, m)
	case "preview":
		m, err := app.LoadMesh(app.Config{MeshPath: *inPath, Shape: *shape}, warnf)
		if err != nil {
			fatalf("preview: %v", err)
		}
		n := *cols
		if n <= 0 {
			n = hal.TerminalWidth(os.Stdout)
		}
		if err := preview(os.Stdout, hal.New(*width, *height), m, n); err != nil {
			fatalf("preview: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func warnf(msg string) { _, _ = fmt.Fprintln(os.Stderr, "warning:", msg) }

// preview renders one frame of m from the default camera into h and
// writes it to w as text cols characters wide.
func preview(w io.Writer, h hal.HAL, m geom.Mesh, cols int) error {
	cfg := app.DefaultConfig()
	cfg.HideHUD = true
	a, err := app.New(h, m, cfg)
	if err != nil {
		return err
	}
	if err := a.Step(); err != nil {
		return err
	}
	return hal.DumpASCII(w, h.Display().Framebuffer(), cols)
}

func buildShape(name string, size, major, minor float32, segU, segV int) (geom.Mesh, error) {
	switch name {
	case "cube":
		if size <= 0 {
			return geom.Mesh{}, fmt.Errorf("size out of range: %v", size)
		}
		return meshgen.Cube(size), nil
	case "torus":
		if minor <= 0 || major <= minor {
			return geom.Mesh{}, fmt.Errorf("torus radii out of range: major=%v minor=%v", major, minor)
		}
		return meshgen.Torus(major, minor, segU, segV), nil
	}
	return meshgen.Named(name)
}

func writeMesh(path string, m geom.Mesh) error {
	if path == "-" || path == "" {
		return meshio.Write(os.Stdout, m)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := meshio.Write(f, m); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func describe(w io.Writer, m geom.Mesh) {
	lo, hi := m.Bounds()
	var degenerate int
	for _, t := range m.Tris {
		if _, ok := t.Normal(); !ok {
			degenerate++
		}
	}
	fmt.Fprintf(w, "name:       %s\n", m.Name)
	fmt.Fprintf(w, "triangles:  %d\n", m.Len())
	fmt.Fprintf(w, "degenerate: %d\n", degenerate)
	fmt.Fprintf(w, "bounds:     (%g, %g, %g) - (%g, %g, %g)\n", lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
}
