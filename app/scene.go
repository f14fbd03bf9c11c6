package app

import (
	"encoding/json"
	"fmt"
	"os"

	"painter3d/render/geom"
	"painter3d/render/vecmath"
)

// SceneFile is the JSON form of the scene settings. Absent fields leave
// the corresponding Config value alone.
type SceneFile struct {
	Mesh  string `json:"mesh,omitempty"`
	Shape string `json:"shape,omitempty"`

	Camera *CameraCfg `json:"camera,omitempty"`
	World  *WorldCfg  `json:"world,omitempty"`
	Lens   *LensCfg   `json:"lens,omitempty"`
	Light  *Vec3Cfg   `json:"light,omitempty"`

	Color   *[3]int  `json:"color,omitempty"` // 0..255 each
	Bands   *int     `json:"bands,omitempty"`
	Outline *bool    `json:"outline,omitempty"`
	SpinDeg *float32 `json:"spinDeg,omitempty"` // degrees per second
}

type Vec3Cfg [3]float32

func (v Vec3Cfg) vec() vecmath.Vec3 { return vecmath.V3(v[0], v[1], v[2]) }

type CameraCfg struct {
	Position Vec3Cfg `json:"position"`
	YawDeg   float32 `json:"yawDeg"`
}

// Rotations in degrees for JSON (friendlier than radians).
type WorldCfg struct {
	RotZDeg float32 `json:"rotZDeg"`
	RotXDeg float32 `json:"rotXDeg"`
	Offset  Vec3Cfg `json:"offset"`
}

type LensCfg struct {
	FOVDeg float32 `json:"fovDeg"`
	Near   float32 `json:"near"`
	Far    float32 `json:"far"`
}

// LoadScene reads a SceneFile from path.
func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	var s SceneFile
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}
	if s.Lens != nil && s.Lens.Near > 0 && s.Lens.Far > 0 && s.Lens.Far <= s.Lens.Near {
		return nil, fmt.Errorf("scene config %s: lens far %v must exceed near %v", path, s.Lens.Far, s.Lens.Near)
	}
	return &s, nil
}

// Apply copies every field present in s into cfg.
func (s *SceneFile) Apply(cfg *Config) {
	if s == nil {
		return
	}
	if s.Mesh != "" {
		cfg.MeshPath = s.Mesh
	}
	if s.Shape != "" {
		cfg.Shape = s.Shape
	}
	if c := s.Camera; c != nil {
		cfg.Start.Position = c.Position.vec()
		cfg.Start.Yaw = vecmath.Radians(c.YawDeg)
	}
	if w := s.World; w != nil {
		cfg.World.RotZ = vecmath.Radians(w.RotZDeg)
		cfg.World.RotX = vecmath.Radians(w.RotXDeg)
		cfg.World.Offset = w.Offset.vec()
	}
	if l := s.Lens; l != nil {
		if l.FOVDeg > 0 {
			cfg.Lens.FOVDeg = l.FOVDeg
		}
		if l.Near > 0 {
			cfg.Lens.Near = l.Near
		}
		if l.Far > 0 {
			cfg.Lens.Far = l.Far
		}
	}
	if s.Light != nil {
		cfg.Light = s.Light.vec()
	}
	if c := s.Color; c != nil {
		cfg.BaseColor = geom.RGB(clampByte(c[0]), clampByte(c[1]), clampByte(c[2]))
	}
	if s.Bands != nil {
		cfg.Bands = *s.Bands
	}
	if s.Outline != nil {
		cfg.Outline = *s.Outline
	}
	if s.SpinDeg != nil {
		cfg.Spin = vecmath.Radians(*s.SpinDeg)
	}
}

func clampByte(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
