// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-halfedge"
)

// Polygon is one face of the scene. Points are counterclockwise as seen
// from the side the face looks at; a missing z reads as 0.
type Polygon struct {
	Name    string       `json:"name"`
	Points  [][3]float64 `json:"points"`
	Curved  bool         `json:"curved"`
	Extrude *[3]float64  `json:"extrude"`
}

// Config holds the scene and the render settings.
type Config struct {
	Output      string `json:"output"`
	Format      string `json:"format"`
	Size        int    `json:"size"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`

	Tesselation halfedge.TesselationOptions `json:"tesselation"`

	Polygons []Polygon `json:"polygons"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output   string
	Strategy string
	Size     int
	Workers  int
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Resolve applies flags over the file settings and fills in defaults.
func (c *Config) Resolve(flags Flags) error {
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Strategy != "" {
		if err := c.Tesselation.Strategy.UnmarshalText([]byte(flags.Strategy)); err != nil {
			return err
		}
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Output == "" {
		c.Output = "meshsnap.webp"
	}
	if c.Format == "" {
		c.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Output)), ".")
	}
	switch c.Format {
	case "webp", "tga":
	default:
		return errors.Errorf("config: unsupported output format %q", c.Format)
	}
	if c.Size <= 0 {
		c.Size = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if len(c.Polygons) == 0 {
		c.Polygons = defaultPolygons()
	}
	for i, p := range c.Polygons {
		if len(p.Points) < 3 {
			return errors.Errorf("config: polygon %d (%s) has %d points", i, p.Name, len(p.Points))
		}
	}
	return nil
}

func defaultPolygons() []Polygon {
	return []Polygon{
		{
			Name: "castle",
			Points: [][3]float64{
				{0, 0}, {5, 0}, {5, 2}, {4, 2}, {4, 1}, {3, 1},
				{3, 2}, {2, 2}, {2, 1}, {1, 1}, {1, 2}, {0, 2},
			},
			Extrude: &[3]float64{0, 0, 1},
		},
		{
			Name:   "comb",
			Points: [][3]float64{{0, 3}, {1, 5}, {2, 3}, {3, 5}, {4, 3}, {4, 7}, {0, 7}},
		},
	}
}
