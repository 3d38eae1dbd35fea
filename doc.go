// Package gospline implements B-spline, NURBS, Bézier, line and point
// curves of arbitrary degree and dimensionality.
//
// A Spline owns two buffers: control points, laid out as n contiguous
// d-tuples, and a non-decreasing knot vector of m = n + degree + 1 values.
// NURBS curves are represented projectively: the dimension is bumped by one
// and the trailing component of every control-point tuple holds the weight,
// with the preceding components pre-multiplied by it. The evaluation engine
// (Eval, EvalAll) is unaware of rationality; callers dehomogenize on output
// when they need Euclidean coordinates.
//
// All public operations that can fail return a *Error alongside their
// result; see errors.go for the stable numeric error taxonomy and the
// matching sentinel errors for use with errors.Is.
package gospline
