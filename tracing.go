package gospline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the package tracer, selected by key "gospline".
func tracer() tracing.Trace {
	return tracing.Select("gospline")
}
