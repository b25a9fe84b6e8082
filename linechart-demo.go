// +build ignore

package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/graphima/linechart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const day = 86400000.0

// walk is a daily random walk starting at the given epoch millisecond
// and level.
func walk(n int, start, level float64) plotter.XYs {
	xy := make(plotter.XYs, n)
	for i := range xy {
		level += 20 * rand.NormFloat64()
		xy[i].X, xy[i].Y = start+float64(i)*day, level
	}
	return xy
}

func main() {
	coll := linechart.NewCollection(linechart.Date, linechart.Number)
	start := 1.6e12
	for i, name := range []string{"alpha", "beta", "gamma"} {
		s, err := linechart.NewSeriesFromXYs(name, walk(120, start, 100*float64(i+1)))
		if err != nil {
			panic(err)
		}
		if err := coll.Add(s); err != nil {
			panic(err)
		}
	}

	kind, err := linechart.PickKind(coll, 10)
	if err != nil {
		panic(err)
	}
	scale, err := linechart.NewScale(kind, coll.Bounds())
	if err != nil {
		panic(err)
	}
	cam := linechart.NewCamera(scale, coll)

	// Zoom into the middle third and render frames of the animation.
	b := coll.Bounds()
	span := b.Coord.Max - b.Coord.Min
	cam.ZoomTo(coll, b.Coord.Min+span/3, b.Coord.Max-span/3, 0)
	for frame, now := range []float64{0, 50000, 100000, 150000, 200000} {
		cam.Resolve(now)
		render(cam, coll, now, fmt.Sprintf("testdata/linechart-%02d.png", frame))
	}
}

func render(cam *linechart.Camera, coll *linechart.Collection, now float64, name string) {
	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.Title.Text = "Zoom"

	s := cam.Scale(now)
	p.X.Min, p.X.Max = s.CoordMin(), s.CoordMax()
	p.Y.Min, p.Y.Max = s.ValueMin(), s.ValueMax()
	p.X.Tick.Marker = linechart.CameraTicker{
		Camera:   cam,
		Axis:     linechart.CoordAxis,
		MaxTicks: 6,
		Now:      now,
		Format:   linechart.NewFormatter(linechart.Date, true),
	}
	p.Y.Tick.Marker = linechart.CameraTicker{
		Camera:   cam,
		Axis:     linechart.ValueAxis,
		MaxTicks: 6,
		Now:      now,
		Format:   linechart.NewFormatter(linechart.Number, true),
	}

	for i, series := range coll.Series() {
		pts, ok := series.Slice(s.CoordMin(), s.CoordMax())
		if !ok {
			continue
		}
		xy := make(plotter.XYs, len(pts))
		for j, pt := range pts {
			xy[j].X, xy[j].Y = pt.Coord, pt.Value
		}
		l, err := plotter.NewLine(xy)
		if err != nil {
			panic(err)
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(series.Name, l)
	}

	img := vgimg.New(600, 480)
	dc := draw.New(img)
	p.Draw(dc)
	write(img, name)
}

func write(canvas *vgimg.Canvas, name string) {
	w, err := os.Create(name)
	defer w.Close()
	if err != nil {
		panic(err)
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
