//go:build example
// +build example

package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"

	"github.com/hajimehoshi/go-halfedge"
	"github.com/hajimehoshi/go-halfedge/sweep"
	"github.com/hajimehoshi/go-halfedge/vecmath/mglvec"
)

const (
	screenWidth  = 480
	screenHeight = 360
)

type shape struct {
	name string
	pts  [][2]float64
}

func star(points int) shape {
	var pts [][2]float64
	for i := 0; i < 2*points; i++ {
		a := float64(i)*math.Pi/float64(points) + math.Pi/2
		r := 1.0
		if i%2 == 1 {
			r = 0.45
		}
		pts = append(pts, [2]float64{r * math.Cos(a), r * math.Sin(a)})
	}
	return shape{fmt.Sprintf("star %d", points), pts}
}

var shapes = []shape{
	{"castle", [][2]float64{
		{0, 0}, {5, 0}, {5, 2}, {4, 2}, {4, 1}, {3, 1},
		{3, 2}, {2, 2}, {2, 1}, {1, 1}, {1, 2}, {0, 2},
	}},
	{"comb", [][2]float64{
		{0, 0}, {1, 2}, {2, 0}, {3, 2}, {4, 0}, {4, 4}, {0, 4},
	}},
	star(5),
	star(9),
}

type viewer struct {
	shape    int
	strategy halfedge.Strategy

	mesh    *mglvec.Mesh2d
	face    halfedge.FaceID
	indices []halfedge.VertexID
	meta    halfedge.TesselationMeta

	white *ebiten.Image
}

func (v *viewer) rebuild() {
	s := shapes[v.shape]
	ps := make([]mglvec.Payload2d, len(s.pts))
	for i, p := range s.pts {
		ps[i] = mglvec.P2(p[0], p[1])
	}
	v.mesh = mglvec.NewMesh2d()
	v.face = v.mesh.AddPolygon(ps, false)
	v.meta = halfedge.TesselationMeta{}
	var tri sweep.Triangulation[halfedge.VertexID]
	halfedge.Tesselate[mglvec.Vec2](v.mesh, v.face, &tri, &halfedge.TesselationOptions{
		Strategy: v.strategy,
		Meta:     &v.meta,
	})
	v.indices = tri.Indices
	if err := sweep.Verify[float64](v.indices, halfedge.Vertices2D[mglvec.Vec2](v.mesh, v.face)); err != nil {
		log.Printf("%s: %v", s.name, err)
	}
}

// toScreen fits the shape into the window with y pointing up.
func (v *viewer) toScreen(p mglvec.Vec2) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for id := range v.mesh.Vertices() {
		q := v.mesh.Pos(id)
		minX, maxX = math.Min(minX, q.X()), math.Max(maxX, q.X())
		minY, maxY = math.Min(minY, q.Y()), math.Max(maxY, q.Y())
	}
	scale := math.Min((screenWidth-80)/(maxX-minX), (screenHeight-80)/(maxY-minY))
	x := 40 + (p.X()-minX)*scale
	y := screenHeight - 40 - (p.Y()-minY)*scale
	return x, y
}

func (v *viewer) update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.shape = (v.shape + 1) % len(shapes)
		v.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if v.strategy == halfedge.StrategySweepLine {
			v.strategy = halfedge.StrategySweepDynamic
		} else {
			v.strategy = halfedge.StrategySweepLine
		}
		v.rebuild()
	}
	if ebiten.IsDrawingSkipped() {
		return nil
	}

	var vs []ebiten.Vertex
	var is []uint16
	for i := 0; i < len(v.indices); i += 3 {
		shade := float32(0.3 + 0.5*float64(i/3%5)/4)
		for k := 0; k < 3; k++ {
			x, y := v.toScreen(v.mesh.Pos(v.indices[i+k]))
			vs = append(vs, ebiten.Vertex{
				DstX: float32(x), DstY: float32(y),
				SrcX: 1, SrcY: 1,
				ColorR: 0.2, ColorG: shade, ColorB: 0.4, ColorA: 1,
			})
			is = append(is, uint16(len(vs)-1))
		}
	}
	screen.DrawTriangles(vs, is, v.white, nil)

	for i := 0; i < len(v.indices); i += 3 {
		for k := 0; k < 3; k++ {
			x1, y1 := v.toScreen(v.mesh.Pos(v.indices[i+k]))
			x2, y2 := v.toScreen(v.mesh.Pos(v.indices[i+(k+1)%3]))
			ebitenutil.DrawLine(screen, x1, y1, x2, y2, color.Gray{0x80})
		}
	}
	for _, d := range v.meta.Sweep.Diagonals {
		x1, y1 := v.toScreen(v.mesh.Pos(d[0]))
		x2, y2 := v.toScreen(v.mesh.Pos(d[1]))
		ebitenutil.DrawLine(screen, x1, y1, x2, y2, color.RGBA{0xff, 0x40, 0x40, 0xff})
	}
	for e := range v.mesh.FaceEdges(v.face) {
		x1, y1 := v.toScreen(v.mesh.Pos(v.mesh.Origin(e)))
		x2, y2 := v.toScreen(v.mesh.Pos(v.mesh.Target(e)))
		ebitenutil.DrawLine(screen, x1, y1, x2, y2, color.White)
	}

	msg := fmt.Sprintf("%s, %v: %d triangles, %d diagonals\nSPACE: next shape, D: toggle strategy",
		shapes[v.shape].name, v.strategy, len(v.indices)/3, len(v.meta.Sweep.Diagonals))
	return ebitenutil.DebugPrint(screen, msg)
}

func main() {
	white, err := ebiten.NewImage(3, 3, ebiten.FilterDefault)
	if err != nil {
		log.Fatal(err)
	}
	if err := white.Fill(color.White); err != nil {
		log.Fatal(err)
	}
	v := &viewer{white: white}
	v.rebuild()
	if err := ebiten.Run(v.update, screenWidth, screenHeight, 2, "Sweep line triangulation"); err != nil {
		log.Fatal(err)
	}
}
