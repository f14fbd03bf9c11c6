package meshio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"painter3d/render/geom"
	"painter3d/render/vecmath"
)

const quadOBJ = `# unit quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`

func area(t geom.Triangle) float32 {
	a, b, c := t.P[0].XYZ(), t.P[1].XYZ(), t.P[2].XYZ()
	return vecmath.Len(vecmath.Cross(b.Sub(a), c.Sub(a))) / 2
}

func TestReadSplitsQuad(t *testing.T) {
	m, err := Read(strings.NewReader(quadOBJ), "quad.obj", nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("got %d triangles, want 2", m.Len())
	}

	var total float32
	seen := map[vecmath.Vec3]bool{}
	for i, tri := range m.Tris {
		n, ok := tri.Normal()
		if !ok {
			t.Fatalf("triangle %d is degenerate: %+v", i, tri)
		}
		if diff := cmp.Diff(n, vecmath.V3(0, 0, 1), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Fatalf("triangle %d normal flipped (-got +want)\n%s", i, diff)
		}
		if tri.Color != geom.White {
			t.Fatalf("triangle %d colour = %v, want white", i, tri.Color)
		}
		total += area(tri)
		for _, p := range tri.P {
			seen[p.XYZ()] = true
		}
	}
	if total < 0.999 || total > 1.001 {
		t.Fatalf("total area = %v, want 1", total)
	}
	if len(seen) != 4 {
		t.Fatalf("used %d distinct corners, want 4", len(seen))
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error // nil accepts any *MeshLoadError
	}{
		{"empty", "# nothing\n", nil},
		{"vertices only", "v 0 0 0\nv 1 0 0\nv 0 1 0\n", ErrNoTriangles},
		{"index range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n", nil},
		{"index text", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 b 3\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var warnings []string
			m, err := Read(strings.NewReader(tc.src), "x.obj", func(s string) { warnings = append(warnings, s) })
			if err == nil {
				t.Fatalf("got %d triangles, want error (warnings %q)", m.Len(), warnings)
			}
			var le *MeshLoadError
			if !errors.As(err, &le) {
				t.Fatalf("err is %T, want *MeshLoadError", err)
			}
			if le.Path != "x.obj" {
				t.Fatalf("Path = %q", le.Path)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.obj"), nil)
	var le *MeshLoadError
	if !errors.As(err, &le) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want MeshLoadError wrapping ErrNotExist", err)
	}
}

func TestWriteThenLoad(t *testing.T) {
	src, err := Read(strings.NewReader(quadOBJ), "quad", nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, src); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := strings.Count(buf.String(), "\nv "); got != 4 {
		t.Fatalf("wrote %d vertices, want 4 shared:\n%s", got, buf.String())
	}

	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "quad" {
		t.Fatalf("Name = %q, want quad", got.Name)
	}
	if diff := cmp.Diff(got.Tris, src.Tris, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Fatalf("triangles (-got +want)\n%s", diff)
	}
}
