package splinefile

import (
	"fmt"
	"os"

	"github.com/vektorraum/gospline"
)

// Save writes s to path in the canonical JSON form, UTF-8 encoded.
// Filesystem failures are reported as ErrIO.
func Save(path string, s *gospline.Spline) error {
	data, err := ToJSON(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", gospline.ErrIO, err)
	}
	return nil
}

// Load reads and parses a spline previously written by Save.
// Filesystem failures are reported as ErrIO; schema/invariant violations
// propagate from ParseJSON.
func Load(path string) (*gospline.Spline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gospline.ErrIO, err)
	}
	return ParseJSON(data)
}
