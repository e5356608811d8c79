package camera

import (
	"bytes"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"

	"github.com/drishti-ops/drishti/internal/gateway"
)

const jpegQuality = 85

// encodeFrame re-encodes a decoded frame as a JPEG data URI, downscaling it
// first when it exceeds the configured bounds. Gateway payloads are base64
// data URIs, so oversized frames inflate every analysis request.
func encodeFrame(img image.Image, maxWidth, maxHeight int) (string, error) {
	img = scaleDown(img, maxWidth, maxHeight)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return gateway.EncodeDataURI("image/jpeg", buf.Bytes()), nil
}

func scaleDown(img image.Image, maxWidth, maxHeight int) image.Image {
	if maxWidth <= 0 || maxHeight <= 0 {
		return img
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth && h <= maxHeight {
		return img
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
