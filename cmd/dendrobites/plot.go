package main

import (
	"github.com/vertgenlab/gonomics/exception"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func plotHistogram(dists []float64, file string) {
	p := plot.New()
	h, err := plotter.NewHist(plotter.Values(dists), 16)
	exception.PanicOnErr(err)
	p.Add(h)

	p.Title.Text = "Pairwise distances"
	p.X.Label.Text = "distance"
	p.Y.Label.Text = "count"

	err = p.Save(15*vg.Centimeter, 10*vg.Centimeter, file)
	exception.PanicOnErr(err)
}
