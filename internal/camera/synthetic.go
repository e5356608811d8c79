package camera

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/drishti-ops/drishti/internal/domain"
)

// SyntheticSource generates test-pattern frames for development without any
// physical camera. Every zone is always ready.
type SyntheticSource struct {
	zones     int
	maxWidth  int
	maxHeight int
}

// NewSyntheticSource creates a source producing frames for the given number
// of zones.
func NewSyntheticSource(zones, maxWidth, maxHeight int) *SyntheticSource {
	return &SyntheticSource{zones: zones, maxWidth: maxWidth, maxHeight: maxHeight}
}

func (s *SyntheticSource) Available() bool {
	return s.zones > 0
}

func (s *SyntheticSource) Ready(zone int) bool {
	return zone >= 0 && zone < s.zones
}

func (s *SyntheticSource) Capture(ctx context.Context, zone int) (string, error) {
	if zone < 0 || zone >= s.zones {
		return "", domain.ErrZoneNotFound
	}
	return encodeFrame(s.testPattern(zone), s.maxWidth, s.maxHeight)
}

// testPattern renders a zone-tinted gradient with a moving band so
// consecutive captures differ.
func (s *SyntheticSource) testPattern(zone int) image.Image {
	const w, h = 640, 360
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	tint := uint8(60 + zone*45)
	band := int(time.Now().UnixMilli()/100) % w

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{
				R: tint,
				G: uint8(x * 255 / w),
				B: uint8(y * 255 / h),
				A: 255,
			}
			if x >= band && x < band+20 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

var _ FrameSource = (*SyntheticSource)(nil)
