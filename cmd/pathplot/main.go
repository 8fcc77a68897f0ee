// Command pathplot draws the dataset rows of a path list described by a
// YAML fixture.
//
// The fixture lists paths with their nodes, the datasets attached to each
// path and raw sample values per node, dataset and group. pathplot
// summarizes the samples into box plots, renders one pass and writes the
// result as SVG, PNG or PDF.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vdobler/pathplot"
	"github.com/vdobler/pathplot/scene"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

func main() {
	log.SetPrefix("pathplot: ")
	log.SetFlags(0)

	var (
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFormat = flag.String("format", "svg", "output `format`: svg, png or pdf")
		flagTilt   = flag.Bool("tilt", false, "draw vertical box plots")
		flagExpand = flag.Bool("expand", false, "expand all datasets")
		flagWidth  = flag.Int("width", 0, "output width in `pixels` (default: fit)")
		flagHeight = flag.Int("height", 0, "output height in `pixels` (default: fit)")
		flagFont   = flag.Float64("fontsize", 10, "base font `size` in points")
		flagStats  = flag.Bool("v", false, "print render counters to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] fixture.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	fixture, err := LoadFixture(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	bus := pathplot.NewBus()
	settings := pathplot.DefaultSettings(bus)
	style := pathplot.DefaultStyle(vg.Length(*flagFont))
	root := scene.New()
	layout := pathplot.NewFixedLayout(settings, style, root)
	if err := fixture.Build(layout, settings); err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	r := pathplot.NewDatasetRenderer(layout, fixture.Store(), settings)
	r.Style = style
	r.Metrics = pathplot.NewMetrics(reg)
	layout.OnUpdate = r.Render
	defer r.Subscribe(bus)()

	if err := r.Render(); err != nil {
		log.Fatal(err)
	}
	if *flagExpand {
		for _, pw := range layout.PathWrappers() {
			for _, d := range pw.Datasets {
				d.Collapsed = false
			}
		}
		layout.UpdatePathList()
	}
	if *flagTilt {
		settings.SetTiltAttributes(true)
	}
	root.Settle()

	w, h := layout.Size()
	width, height := *flagWidth, *flagHeight
	if width == 0 {
		width = int(math.Ceil(w))
	}
	if height == 0 {
		height = int(math.Ceil(h))
	}

	out := io.Writer(os.Stdout)
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Fatal(err)
			}
		}()
		out = f
	}

	if err := write(out, *flagFormat, root, width, height, settings, style); err != nil {
		log.Fatal(err)
	}

	if *flagStats {
		printCounters(reg)
	}
}

func write(w io.Writer, format string, root *scene.Element, width, height int,
	settings *pathplot.Settings, style pathplot.Style) error {

	switch format {
	case "svg":
		return scene.WriteSVG(w, root, width, height, pathplot.LabelClip(settings))
	case "png":
		c := vgimg.NewWith(vgimg.UseWH(vg.Length(width), vg.Length(height)), vgimg.UseDPI(72))
		paint(c, root, style)
		_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
		return err
	case "pdf":
		c := vgpdf.New(vg.Length(width), vg.Length(height))
		paint(c, root, style)
		_, err := c.WriteTo(w)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func paint(c vg.CanvasSizer, root *scene.Element, style pathplot.Style) {
	dc := draw.New(c)
	dc.SetColor(style.Background)
	dc.Fill(dc.Rectangle.Path())
	scene.Paint(dc, root, style.Label)
}

func printCounters(g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Print(err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			label := ""
			for _, lp := range m.GetLabel() {
				label += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			fmt.Fprintf(os.Stderr, "%s%s %g\n", mf.GetName(), label, m.GetCounter().GetValue())
		}
	}
}
