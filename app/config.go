package app

import (
	"painter3d/render/camera"
	"painter3d/render/geom"
	"painter3d/render/pipeline"
	"painter3d/render/vecmath"
)

// Config describes the scene and how it is driven.
type Config struct {
	MeshPath string // OBJ file; empty selects Shape
	Shape    string // built-in mesh name

	Lens  camera.Lens
	World camera.World
	Start camera.State
	Light vecmath.Vec3
	Fly   camera.FlyController

	BaseColor geom.Color
	Bands     int // shading levels; below 2 is smooth
	Outline   bool
	// Spin turns the world this many radians per second about Z, and half
	// as fast about X.
	Spin float32

	LogEvery int // frames between stats log lines; 0 disables
	HideHUD  bool
}

// DefaultConfig is the stock scene: a cube five units in front of a
// camera at the origin.
func DefaultConfig() Config {
	return Config{
		Shape:     "cube",
		Lens:      camera.DefaultLens(),
		World:     camera.DefaultWorld(),
		Light:     pipeline.DefaultLight,
		Fly:       camera.DefaultFlyController(),
		BaseColor: geom.White,
		LogEvery:  300,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MeshPath == "" && c.Shape == "" {
		c.Shape = d.Shape
	}
	if c.Light == (vecmath.Vec3{}) {
		c.Light = d.Light
	}
	if c.Fly == (camera.FlyController{}) {
		c.Fly = d.Fly
	}
	if c.BaseColor.A == 0 {
		c.BaseColor = d.BaseColor
	}
	return c
}

func (c Config) ramp() geom.Ramp {
	if c.Bands >= 2 {
		return geom.Banded(c.BaseColor, c.Bands)
	}
	return geom.Smooth(c.BaseColor)
}
