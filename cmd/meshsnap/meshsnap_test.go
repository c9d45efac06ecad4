package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/go-halfedge"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Resolve(Flags{}); err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "meshsnap.webp" || cfg.Format != "webp" {
		t.Errorf("output: got %q as %q", cfg.Output, cfg.Format)
	}
	if cfg.Size != 512 || cfg.Supersample != 2 || cfg.Workers <= 0 {
		t.Errorf("render settings: %+v", cfg)
	}
	if len(cfg.Polygons) == 0 {
		t.Errorf("no default scene")
	}
}

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	data := []byte(`{
		"output": "out.tga",
		"size": 64,
		"tesselation": {"strategy": "dynamic", "window": 4},
		"polygons": [{"name": "quad", "points": [[0, 0], [1, 0], [1, 1], [0, 1]]}]
	}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Resolve(Flags{Size: 32}); err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "tga" {
		t.Errorf("format: got %q, want tga", cfg.Format)
	}
	if cfg.Size != 32 {
		t.Errorf("size: got %d, want the flag value 32", cfg.Size)
	}
	if cfg.Tesselation.Strategy != halfedge.StrategySweepDynamic || cfg.Tesselation.Window != 4 {
		t.Errorf("tesselation: got %+v", cfg.Tesselation)
	}
	if len(cfg.Polygons) != 1 || cfg.Polygons[0].Points[2] != [3]float64{1, 1, 0} {
		t.Errorf("polygons: got %+v", cfg.Polygons)
	}
}

func TestResolveErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		f    Flags
	}{
		{"format", Config{Output: "x.png"}, Flags{}},
		{"strategy", Config{}, Flags{Strategy: "ears"}},
		{"short polygon", Config{Polygons: []Polygon{{Points: [][3]float64{{0, 0}, {1, 0}}}}}, Flags{}},
	}
	for _, c := range cases {
		if err := c.cfg.Resolve(c.f); err == nil {
			t.Errorf("%s: no error", c.name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("missing file: no error")
	}
}

func TestPipeline(t *testing.T) {
	var cfg Config
	if err := cfg.Resolve(Flags{Size: 48, Workers: 3}); err != nil {
		t.Fatal(err)
	}
	m, err := buildMesh(cfg.Polygons)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []halfedge.Strategy{halfedge.StrategySweepLine, halfedge.StrategySweepDynamic} {
		opts := halfedge.TesselationOptions{Strategy: s}
		tris, err := tesselateAll(context.Background(), m, opts, cfg.Workers)
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		if got, want := len(tris), m.NumFaces(); got != want {
			t.Errorf("%v: got %d faces, want %d", s, got, want)
		}
		img := render(m, tris, cfg.Size, cfg.Supersample)
		if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
			t.Errorf("image bounds: %v", b)
		}
		for _, format := range []string{"webp", "tga"} {
			var buf bytes.Buffer
			if err := encode(&buf, img, format); err != nil {
				t.Errorf("%s: %v", format, err)
			}
			if buf.Len() == 0 {
				t.Errorf("%s: empty output", format)
			}
		}
	}
}

func TestTesselateBentFace(t *testing.T) {
	m, err := buildMesh([]Polygon{{
		Name:   "bent",
		Points: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0.5}, {0, 1, 0}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tesselateAll(context.Background(), m, halfedge.TesselationOptions{}, 2); err == nil {
		t.Errorf("bent face triangulated without error")
	}
}
