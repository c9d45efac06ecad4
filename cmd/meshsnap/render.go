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
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"sort"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/hajimehoshi/go-halfedge"
	"github.com/hajimehoshi/go-halfedge/vecmath/mglvec"
)

// view is an oblique projection fitted to the mesh bounds. Depth grows
// away from the viewer.
type view struct {
	minX, minY float64
	scale      float64
	size       int
}

const obliqueness = 0.35

func project(p mglvec.Vec3) (x, y, depth float64) {
	return p[0] + obliqueness*p[2], p[1] + obliqueness*p[2], -p[2]
}

func newView(m *mglvec.Mesh3d, size int) view {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for v := range m.Vertices() {
		x, y, _ := project(m.Pos(v))
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	margin := 0.05 * float64(size)
	extent := math.Max(maxX-minX, maxY-minY)
	if extent == 0 {
		extent = 1
	}
	return view{
		minX:  minX,
		minY:  minY,
		scale: (float64(size) - 2*margin) / extent,
		size:  size,
	}
}

// pixel maps p to image coordinates with y pointing down.
func (v view) pixel(p mglvec.Vec3) (float32, float32) {
	x, y, _ := project(p)
	margin := 0.05 * float64(v.size)
	px := margin + (x-v.minX)*v.scale
	py := float64(v.size) - margin - (y-v.minY)*v.scale
	return float32(px), float32(py)
}

// shade lights a face by how much its normal faces the light.
func shade(m *mglvec.Mesh3d, f halfedge.FaceID) color.RGBA {
	x, y, z := m.FaceNormal(f)
	n := mglvec.Vec3{x, y, z}.Normalize()
	light := mglvec.Vec3{0.3, 0.4, 1}.Normalize()
	k := 0.35 + 0.65*math.Abs(n.Dot(light))
	return color.RGBA{uint8(70 * k), uint8(150 * k), uint8(210 * k), 0xff}
}

func faceDepth(m *mglvec.Mesh3d, f halfedge.FaceID) float64 {
	var sum float64
	n := 0
	for v := range m.FaceVertices(f) {
		_, _, d := project(m.Pos(v))
		sum += d
		n++
	}
	return sum / float64(n)
}

// render paints the triangles back to front at size*supersample, strokes
// the face outlines and scales the result down to size.
func render(m *mglvec.Mesh3d, tris []faceTriangles, size, supersample int) *image.RGBA {
	big := size * supersample
	canvas := image.NewRGBA(image.Rect(0, 0, big, big))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{0x20, 0x20, 0x28, 0xff}), image.Point{}, draw.Src)

	order := make([]faceTriangles, len(tris))
	copy(order, tris)
	sort.SliceStable(order, func(i, j int) bool {
		return faceDepth(m, order[i].face) > faceDepth(m, order[j].face)
	})

	v := newView(m, big)
	z := vector.NewRasterizer(big, big)
	gc := draw2dimg.NewGraphicContext(canvas)
	gc.SetLineWidth(float64(supersample))
	gc.SetStrokeColor(color.RGBA{0xf0, 0xf0, 0xf0, 0xff})
	for _, t := range order {
		src := image.NewUniform(shade(m, t.face))
		for i := 0; i < len(t.indices); i += 3 {
			z.Reset(big, big)
			ax, ay := v.pixel(m.Pos(t.indices[i]))
			bx, by := v.pixel(m.Pos(t.indices[i+1]))
			cx, cy := v.pixel(m.Pos(t.indices[i+2]))
			z.MoveTo(ax, ay)
			z.LineTo(bx, by)
			z.LineTo(cx, cy)
			z.ClosePath()
			z.Draw(canvas, canvas.Bounds(), src, image.Point{})
		}

		gc.BeginPath()
		first := true
		for e := range m.FaceEdges(t.face) {
			x, y := v.pixel(m.Pos(m.Origin(e)))
			if first {
				gc.MoveTo(float64(x), float64(y))
				first = false
				continue
			}
			gc.LineTo(float64(x), float64(y))
		}
		gc.Close()
		gc.Stroke()
	}

	if supersample == 1 {
		return canvas
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return dst
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "tga":
		return tga.Encode(w, img)
	}
	return errors.Errorf("meshsnap: unsupported format %q", format)
}

func writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "meshsnap: create output")
	}
	if err := encode(f, img, format); err != nil {
		f.Close()
		return errors.Wrapf(err, "meshsnap: encode %s", format)
	}
	return errors.Wrap(f.Close(), "meshsnap: close output")
}
