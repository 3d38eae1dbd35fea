// Package interp builds interpolating splines through a sequence of
// points: natural cubic interpolation (piecewise cubic, C2-continuous,
// zero curvature at both ends) and Catmull-Rom-to-B-spline conversion.
// It is built entirely on gospline's public constructors and setters.
package interp
