// Package splinefile provides the canonical JSON encoding for
// gospline.Spline values and thin file-persistence wrappers around it.
// It is built entirely on gospline's public constructors and accessors.
package splinefile
