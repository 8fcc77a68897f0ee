package pathplot

import "github.com/vdobler/pathplot/geom"

// Settings holds the geometry of the path list and the view switches
// shared by all renderers. Changes of the switches are announced on Bus.
type Settings struct {
	NodeStart     float64 // x of the first node
	SetTypeIndent float64 // indentation of row labels
	NodeWidth     float64
	NodeHeight    float64
	VSpacing      float64
	PathHeight    float64 // height of a path's header row
	EdgeSize      float64 // horizontal gap between two nodes
	SetHeight     float64
	SetTypeHeight float64
	PathSpacing   float64 // vertical gap between two paths

	Bus *Bus

	alignPathNodes bool
	tiltAttributes bool
	sticky         map[stickyKey]bool
}

type stickyKey struct {
	dataset, group string
}

// DefaultSettings returns the default geometry with both switches off.
// Notifications go to bus which may be nil.
func DefaultSettings(bus *Bus) *Settings {
	return &Settings{
		NodeStart:     90,
		SetTypeIndent: 10,
		NodeWidth:     50,
		NodeHeight:    20,
		VSpacing:      5,
		PathHeight:    30,
		EdgeSize:      50,
		SetHeight:     10,
		SetTypeHeight: 14,
		PathSpacing:   15,
		Bus:           bus,
		sticky:        make(map[stickyKey]bool),
	}
}

// SetAlignPathNodes switches node alignment across paths.
func (s *Settings) SetAlignPathNodes(align bool) {
	s.alignPathNodes = align
	s.Bus.Notify(Event{Type: EventAlignPathNodes, Flag: align})
}

// IsAlignPathNodes reports whether nodes are aligned across paths.
func (s *Settings) IsAlignPathNodes() bool { return s.alignPathNodes }

// SetTiltAttributes switches between horizontal and vertical (tilted)
// dataset rows.
func (s *Settings) SetTiltAttributes(tilt bool) {
	s.tiltAttributes = tilt
	s.Bus.Notify(Event{Type: EventTiltAttributes, Flag: tilt})
}

// IsTiltAttributes reports whether dataset rows are tilted.
func (s *Settings) IsTiltAttributes() bool { return s.tiltAttributes }

// Orientation returns the orientation of box plots and axes selected by
// the tilt switch.
func (s *Settings) Orientation() Orientation {
	if s.tiltAttributes {
		return Vertical
	}
	return Horizontal
}

// SetDataGroupSticky makes the data group of the given dataset visible even
// while the dataset is collapsed.
func (s *Settings) SetDataGroupSticky(datasetID, group string, sticky bool) {
	if s.sticky == nil {
		s.sticky = make(map[stickyKey]bool)
	}
	if sticky {
		s.sticky[stickyKey{datasetID, group}] = true
	} else {
		delete(s.sticky, stickyKey{datasetID, group})
	}
}

// IsDataGroupSticky reports whether the data group is sticky.
func (s *Settings) IsDataGroupSticky(datasetID, group string) bool {
	return s.sticky[stickyKey{datasetID, group}]
}

// Orientation selects the direction in which values are mapped.
type Orientation = geom.Orientation

const (
	Horizontal = geom.Horizontal
	Vertical   = geom.Vertical
)
