package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/vdobler/pathplot"
	"github.com/vdobler/pathplot/data"
	"github.com/vdobler/pathplot/geom"
	"gopkg.in/yaml.v3"
)

// Fixture is the YAML description of a path list and its data.
type Fixture struct {
	Paths    []FixturePath    `yaml:"paths"`
	Datasets []FixtureDataset `yaml:"datasets"`
	Samples  []FixtureSample  `yaml:"samples"`
}

type FixturePath struct {
	ID       string      `yaml:"id"`
	Nodes    []data.Node `yaml:"nodes"`
	Datasets []string    `yaml:"datasets"` // dataset IDs
}

type FixtureDataset struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Color  string   `yaml:"color"`
	Type   string   `yaml:"type"`
	Min    *float64 `yaml:"min"` // nil: lowest sample
	Max    *float64 `yaml:"max"` // nil: highest sample
	Groups []string `yaml:"groups"`
	Sticky []string `yaml:"sticky"` // groups shown while collapsed
}

// FixtureSample are the raw values of one group of a dataset at one node.
// An empty group gives the dataset level values.
type FixtureSample struct {
	Node    string    `yaml:"node"`
	Dataset string    `yaml:"dataset"`
	Group   string    `yaml:"group"`
	Values  []float64 `yaml:"values"`
}

// ReadFixture decodes a fixture from r.
func ReadFixture(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	return &f, nil
}

// LoadFixture reads the fixture in file.
func LoadFixture(file string) (*Fixture, error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ReadFixture(fh)
}

// Store summarizes the samples. Nodes without dataset level samples get
// the summary of the values of all groups of the dataset at that node.
func (f *Fixture) Store() *data.MemStore {
	type key struct{ node, dataset string }
	store := data.NewMemStore()
	pooled := make(map[key][]float64)
	explicit := make(map[key]bool)
	var order []key
	for _, s := range f.Samples {
		store.AddSamples(s.Node, s.Dataset, s.Group, s.Values)
		k := key{s.Node, s.Dataset}
		if s.Group == "" {
			explicit[k] = true
			continue
		}
		if _, seen := pooled[k]; !seen {
			order = append(order, k)
		}
		pooled[k] = append(pooled[k], s.Values...)
	}
	for _, k := range order {
		if !explicit[k] {
			store.AddSamples(k.node, k.dataset, "", pooled[k])
		}
	}
	return store
}

// Range returns the value range of d: its configured edges, and for unset
// edges the extremes of its samples.
func (f *Fixture) Range(d FixtureDataset) (min, max float64) {
	r := geom.Interval{Min: math.NaN(), Max: math.NaN()}
	for _, s := range f.Samples {
		if s.Dataset == d.ID {
			r.Update(s.Values...)
		}
	}
	if d.Min != nil {
		r.Min = *d.Min
	}
	if d.Max != nil {
		r.Max = *d.Max
	}
	return r.Min, r.Max
}

// Build adds the paths of f to layout and marks the sticky groups in
// settings.
func (f *Fixture) Build(layout *pathplot.FixedLayout, settings *pathplot.Settings) error {
	byID := make(map[string]FixtureDataset)
	for _, d := range f.Datasets {
		if _, dup := byID[d.ID]; dup {
			return fmt.Errorf("dataset %q defined twice", d.ID)
		}
		byID[d.ID] = d
		for _, g := range d.Sticky {
			settings.SetDataGroupSticky(d.ID, g, true)
		}
	}

	for _, p := range f.Paths {
		var wrappers []*pathplot.DatasetWrapper
		for _, id := range p.Datasets {
			fd, ok := byID[id]
			if !ok {
				return fmt.Errorf("path %q: unknown dataset %q", p.ID, id)
			}
			ds := data.Dataset{ID: fd.ID, Name: fd.Name, Color: fd.Color, Type: fd.Type}
			ds.Stats.Min, ds.Stats.Max = f.Range(fd)
			wrappers = append(wrappers, pathplot.NewDatasetWrapper(ds, fd.Groups...))
		}
		layout.AddPath(data.Path{ID: p.ID, Nodes: p.Nodes}, wrappers...)
	}
	return nil
}
