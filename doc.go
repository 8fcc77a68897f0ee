// Package pathplot draws box-and-whisker summaries of datasets below the
// nodes of paths in a path list.
//
// Every path of the list owns a dataset group container. Inside it each
// dataset attached to the path occupies one row: a collapse toggle, a color
// coded label and, per node of the path, a box plot of the statistics of
// the whole dataset at that node. An expanded dataset additionally shows one
// row per data group (e.g. one attribute of a matrix dataset) with a box plot
// per node for which the data store has statistics.
//
// # Orientation
//
// The rows come in two orientations selected by the tilt setting:
//   - Horizontal: values grow to the right; every node gets its own bottom
//     axis below an expanded dataset.
//   - Vertical: values grow upwards; a single left axis is drawn per
//     dataset and per data group.
//
// # Rendering
//
// A DatasetRenderer reconciles the scene below each dataset group container
// with the current paths, datasets and settings. Elements are bound to
// datasets by ID, to data groups by name and to nodes by ID, so repeated
// passes update the scene in place: new elements enter, kept elements are
// updated and elements without data are removed. Heights and vertical
// offsets of the rows are recomputed on every pass from the collapsed state
// of the datasets and the orientation.
package pathplot
