package splinefile

import (
	"encoding/json"
	"fmt"

	"github.com/vektorraum/gospline"
)

// document is the canonical on-disk/wire representation: degree,
// dimension, the flat n*dimension control-point buffer, and the full
// knot vector.
type document struct {
	Degree        int       `json:"degree"`
	Dimension     int       `json:"dimension"`
	ControlPoints []float64 `json:"control_points"`
	Knots         []float64 `json:"knots"`
}

// ToJSON encodes s into its canonical JSON form.
func ToJSON(s *gospline.Spline) ([]byte, error) {
	doc := document{
		Degree:        s.Degree(),
		Dimension:     s.Dimension(),
		ControlPoints: s.ControlPoints(),
		Knots:         s.KnotsSlice(),
	}
	return json.Marshal(doc)
}

// ParseJSON validates the canonical schema and reconstructs a spline,
// enforcing every construction invariant. Fails with ErrParse on
// malformed JSON, ErrDimZero, ErrLCtrlpDimMismatch (control_points length
// not a multiple of dimension), ErrDegGeNCtrlp, ErrNumKnots (knots length
// != n+order), ErrKnotsDecr or ErrMultiplicity (from the knot vector
// itself).
func ParseJSON(data []byte) (*gospline.Spline, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", gospline.ErrParse, err)
	}
	if doc.Dimension == 0 {
		return nil, fmt.Errorf("%w: dimension must be >= 1", gospline.ErrDimZero)
	}
	if len(doc.ControlPoints)%doc.Dimension != 0 {
		return nil, fmt.Errorf("%w: control_points length %d is not a multiple of dimension %d",
			gospline.ErrLCtrlpDimMismatch, len(doc.ControlPoints), doc.Dimension)
	}
	n := len(doc.ControlPoints) / doc.Dimension
	if doc.Degree >= n {
		return nil, fmt.Errorf("%w: degree %d >= num control points %d", gospline.ErrDegGeNCtrlp, doc.Degree, n)
	}
	order := doc.Degree + 1
	if len(doc.Knots) != n+order {
		return nil, fmt.Errorf("%w: knots length %d, want n+order=%d", gospline.ErrNumKnots, len(doc.Knots), n+order)
	}

	s, err := gospline.NewWithControlPoints(n, doc.Dimension, doc.Degree, gospline.Clamped, doc.ControlPoints)
	if err != nil {
		return nil, err
	}
	if err := s.SetKnots(doc.Knots); err != nil {
		return nil, err
	}
	return s, nil
}
