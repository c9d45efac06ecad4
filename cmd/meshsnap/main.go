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

// Command meshsnap builds a mesh from polygons described in a JSON file,
// triangulates every face concurrently, verifies the triangles and renders
// a snapshot to WebP or TGA.
package main

import (
	"context"
	"flag"
	"log"
	"time"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("meshsnap: ")

	configFile := flag.String("config", "", "Path to a JSON scene file (default: built-in scene)")
	output := flag.String("output", "", "Output image, .webp or .tga (default: meshsnap.webp)")
	strategy := flag.String("strategy", "", "Triangulator: sweep or dynamic")
	size := flag.Int("size", 0, "Image size in pixels (default: 512)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	flag.Parse()

	var cfg Config
	if *configFile != "" {
		var err error
		cfg, err = Load(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Resolve(Flags{
		Output:   *output,
		Strategy: *strategy,
		Size:     *size,
		Workers:  *workers,
	}); err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	m, err := buildMesh(cfg.Polygons)
	if err != nil {
		log.Fatal(err)
	}
	tris, err := tesselateAll(context.Background(), m, cfg.Tesselation, cfg.Workers)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s with %v in %v", summary(tris), cfg.Tesselation.Strategy, time.Since(start))

	img := render(m, tris, cfg.Size, cfg.Supersample)
	if err := writeImage(cfg.Output, img, cfg.Format); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", cfg.Output)
}
