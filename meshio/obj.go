// Package meshio reads and writes triangle meshes as Wavefront OBJ text.
//
// Reading goes through gwob, which triangulates polygon faces. Only vertex
// positions are kept; texture coordinates, normals, groups and materials
// are dropped.
package meshio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/udhos/gwob"

	"painter3d/render/geom"
	"painter3d/render/vecmath"
)

var (
	ErrNoTriangles = errors.New("mesh has no triangles")
	ErrBadFace     = errors.New("malformed face")
)

// MeshLoadError reports why a mesh could not be read.
type MeshLoadError struct {
	Path string
	Line int // 0 when the error is not tied to a line
	Err  error
}

func (e *MeshLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load mesh %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load mesh %s: %v", e.Path, e.Err)
}

func (e *MeshLoadError) Unwrap() error { return e.Err }

// Load reads the OBJ file at path. Every error is a *MeshLoadError.
// Lines the parser skips are reported to warn, which may be nil.
func Load(path string, warn func(string)) (geom.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Mesh{}, &MeshLoadError{Path: path, Err: err}
	}
	defer f.Close()
	m, err := Read(f, path, warn)
	if err != nil {
		return geom.Mesh{}, err
	}
	m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return m, nil
}

// Read parses OBJ text from r. name is used in errors and warnings.
func Read(r io.Reader, name string, warn func(string)) (geom.Mesh, error) {
	fail := func(err error) (geom.Mesh, error) {
		return geom.Mesh{}, &MeshLoadError{Path: name, Err: err}
	}
	if warn == nil {
		warn = func(string) {}
	}

	obj, err := gwob.NewObjFromReader(name, bufio.NewReader(r), &gwob.ObjParserOptions{
		Logger:        func(msg string) { warn(name + ": " + msg) },
		IgnoreNormals: true,
	})
	if err != nil {
		return fail(err)
	}
	verts, err := positions(obj)
	if err != nil {
		return fail(err)
	}

	idx := obj.Indices
	if len(idx)%3 != 0 {
		return fail(fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrBadFace, len(idx)))
	}
	tris := make([]geom.Triangle, 0, len(idx)/3)
	for i := 0; i < len(idx); i += 3 {
		a, b, c := idx[i], idx[i+1], idx[i+2]
		for _, n := range [3]int{a, b, c} {
			if n < 0 || n >= len(verts) {
				return fail(fmt.Errorf("%w: index %d out of range (%d vertices)", ErrBadFace, n, len(verts)))
			}
		}
		tris = append(tris, geom.Tri(verts[a], verts[b], verts[c], geom.White))
	}
	if len(tris) == 0 {
		return fail(ErrNoTriangles)
	}
	return geom.Mesh{Name: name, Tris: tris}, nil
}

// positions pulls the xyz of every element out of obj's interleaved
// coordinate array. Strides and offsets are in bytes of float32.
func positions(obj *gwob.Obj) ([]vecmath.Vec3, error) {
	stride := obj.StrideSize / 4
	off := obj.StrideOffsetPosition / 4
	if len(obj.Coord) == 0 {
		return nil, nil
	}
	if stride < 3 || off < 0 || off+3 > stride {
		return nil, fmt.Errorf("unexpected vertex layout: stride %d, position offset %d", obj.StrideSize, obj.StrideOffsetPosition)
	}
	verts := make([]vecmath.Vec3, 0, len(obj.Coord)/stride)
	for i := off; i+3 <= len(obj.Coord); i += stride {
		verts = append(verts, vecmath.V3(obj.Coord[i], obj.Coord[i+1], obj.Coord[i+2]))
	}
	return verts, nil
}

// Write encodes m as OBJ text, sharing identical vertex positions.
func Write(w io.Writer, m geom.Mesh) error {
	bw := bufio.NewWriter(w)
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}

	index := make(map[vecmath.Vec3]int)
	var faces [][3]int
	for _, t := range m.Tris {
		var f [3]int
		for i, p := range t.P {
			v := p.XYZ()
			n, ok := index[v]
			if !ok {
				n = len(index) + 1
				index[v] = n
				fmt.Fprintf(bw, "v %s %s %s\n", ftoa(v.X), ftoa(v.Y), ftoa(v.Z))
			}
			f[i] = n
		}
		faces = append(faces, f)
	}
	for _, f := range faces {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0], f[1], f[2])
	}
	return bw.Flush()
}

func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
