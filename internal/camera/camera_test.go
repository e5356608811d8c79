package camera

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/gateway"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSyntheticSource_Capture(t *testing.T) {
	src := NewSyntheticSource(4, 1280, 720)

	assert.True(t, src.Available())
	assert.True(t, src.Ready(0))
	assert.True(t, src.Ready(3))
	assert.False(t, src.Ready(4))
	assert.False(t, src.Ready(-1))

	uri, err := src.Capture(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))

	mime, data, err := gateway.ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
}

func TestSyntheticSource_CaptureOutOfRange(t *testing.T) {
	src := NewSyntheticSource(2, 1280, 720)

	_, err := src.Capture(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrZoneNotFound)
}

func TestScaleDown(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"no scaling needed", 640, 360, 1280, 720, 640, 360},
		{"scale by width", 2560, 1440, 1280, 720, 1280, 720},
		{"scale by height", 1000, 1500, 1280, 720, 480, 720},
		{"unbounded", 4000, 3000, 0, 0, 4000, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			dst := scaleDown(src, tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, dst.Bounds().Dx())
			assert.Equal(t, tt.wantH, dst.Bounds().Dy())
		})
	}
}

func TestMJPEGSource_NotReadyBeforeFirstFrame(t *testing.T) {
	src := NewMJPEGSource([]string{"http://cam1/stream"}, 1280, 720, testLogger())

	assert.True(t, src.Available())
	assert.False(t, src.Ready(0))

	_, err := src.Capture(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrCameraNotReady)
}

func TestMJPEGSource_CaptureDecodesLatestFrame(t *testing.T) {
	src := NewMJPEGSource([]string{"http://cam1/stream"}, 1280, 720, testLogger())

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 32, 32)), nil))
	src.latest[0] = buf.Bytes()

	assert.True(t, src.Ready(0))

	uri, err := src.Capture(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
}

func TestMJPEGSource_CaptureCorruptFrame(t *testing.T) {
	src := NewMJPEGSource([]string{"http://cam1/stream"}, 1280, 720, testLogger())
	src.latest[0] = []byte("not a jpeg")

	_, err := src.Capture(context.Background(), 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCameraNotReady)
}
