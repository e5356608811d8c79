// Package camera exposes the per-zone live video streams and synchronous
// frame capture the scan orchestrator runs on.
package camera

import (
	"context"
)

// FrameSource provides N independent camera streams, one per zone.
type FrameSource interface {
	// Available reports whether camera access is granted at all. A sweep
	// fails immediately when it is not.
	Available() bool

	// Ready reports whether stream zone has at least one decoded frame.
	Ready(zone int) bool

	// Capture returns the current frame of stream zone as an encoded still
	// image data URI.
	Capture(ctx context.Context, zone int) (string, error)
}
