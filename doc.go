// Package cartesian maps data coordinates to screen coordinates and back.
//
// It tries to use or enhance gonum.org/v1/plot.
//
// Ranges and Scales
//
// A Range is the domain one axis varies over: a fixed interval (Range1d),
// an interval fitted to the data (DataRange1d) or a set of categorical
// factors (FactorRange). A Scale maps a source Range onto a target Range1d
// in pixel space. Continuous ranges must be paired with continuous scales
// (LinearScale, LogScale), factor ranges with a CategoricalScale.
//
// Frames
//
// A Frame owns all named ranges of a plot, one table per axis. The primary
// ranges are always available under the name "default", extra ranges
// (e.g. for a twin y-axis) under their own names. For every named range the
// Frame keeps an independent clone of the axis' scale prototype. Whenever
// the plot area changes Recompute re-targets all scales to the new pixel
// box.
//
// Coordinate Systems
//
// A CoordinateSystem selects one x and one y range by name. It does not
// copy anything from the Frame but looks ranges and scales up on every
// access, so it stays valid across Recompute.
package cartesian
