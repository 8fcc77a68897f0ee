package pathplot

import (
	"github.com/vdobler/pathplot/data"
	"github.com/vdobler/pathplot/geom"
)

// A Context carries everything one render pass draws with. It is built
// once per pass and passed down explicitly; no renderer keeps mode state of
// its own.
type Context struct {
	Orientation Orientation
	Settings    *Settings
	Store       DataStore
	Paths       PathList
	Style       Style
	Format      geom.Formatter
	Metrics     *Metrics
}

// Tilted reports whether the pass draws vertical rows.
func (c *Context) Tilted() bool { return c.Orientation == Vertical }

// axisSize is the length of a horizontal per-node value axis.
func (c *Context) axisSize() float64 {
	return c.Settings.NodeWidth + c.Settings.EdgeSize/2
}

// valueScale maps the values of d onto the value direction of the active
// orientation.
func (c *Context) valueScale(d *DatasetWrapper) geom.LinearScale {
	s := geom.LinearScale{Domain: geom.Interval{Min: d.MinValue, Max: d.MaxValue}}
	if c.Tilted() {
		s.Range = geom.Interval{Min: geom.AxisSize, Max: 0}
	} else {
		s.Range = geom.Interval{Min: 0, Max: c.axisSize()}
	}
	return s
}

// StatData is the statistics record of one node drawn in one pass.
type StatData struct {
	Stats     data.Stats
	Node      data.Node
	NodeIndex int
}

// statData collects the records of the nodes of pw which have statistics
// for the dataset and group. Nodes without a record are left out.
func (c *Context) statData(pw *PathWrapper, datasetID, group string) []StatData {
	var list []StatData
	for i, n := range pw.Path.Nodes {
		if st, ok := c.Store.StatsForNode(n, datasetID, group); ok {
			list = append(list, StatData{Stats: st, Node: n, NodeIndex: i})
		}
	}
	return list
}

func nodeKeys(list []StatData) []string {
	keys := make([]string, len(list))
	for i, sd := range list {
		keys[i] = sd.Node.ID
	}
	return keys
}
