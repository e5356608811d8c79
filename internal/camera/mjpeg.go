package camera

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png" // some cameras emit PNG parts
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"github.com/drishti-ops/drishti/internal/domain"
)

const (
	reconnectDelay = 3 * time.Second
	maxPartSize    = 16 << 20
)

// MJPEGSource pulls MJPEG-over-HTTP streams, one per zone, and keeps only the
// most recent frame of each. Ready(i) turns true once stream i has delivered
// its first frame.
type MJPEGSource struct {
	urls       []string
	maxWidth   int
	maxHeight  int
	logger     *slog.Logger
	httpClient *http.Client

	mu     sync.RWMutex
	latest [][]byte

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMJPEGSource creates a source for the given per-zone stream URLs.
func NewMJPEGSource(urls []string, maxWidth, maxHeight int, logger *slog.Logger) *MJPEGSource {
	return &MJPEGSource{
		urls:      urls,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		logger:    logger,
		httpClient: &http.Client{
			// Streams are long-lived; only bound the connect phase.
			Timeout: 0,
		},
		latest: make([][]byte, len(urls)),
	}
}

// Start launches one puller goroutine per stream.
func (s *MJPEGSource) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	for i := range s.urls {
		s.wg.Add(1)
		go s.pull(ctx, i)
	}
}

// Stop tears down all pullers and waits for them to exit.
func (s *MJPEGSource) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *MJPEGSource) Available() bool {
	return len(s.urls) > 0
}

func (s *MJPEGSource) Ready(zone int) bool {
	if zone < 0 || zone >= len(s.urls) {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest[zone] != nil
}

func (s *MJPEGSource) Capture(ctx context.Context, zone int) (string, error) {
	if zone < 0 || zone >= len(s.urls) {
		return "", domain.ErrZoneNotFound
	}

	s.mu.RLock()
	frame := s.latest[zone]
	s.mu.RUnlock()

	if frame == nil {
		return "", domain.ErrCameraNotReady
	}

	img, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return "", domain.ErrFrameCaptureFailed.WithError(err)
	}

	uri, err := encodeFrame(img, s.maxWidth, s.maxHeight)
	if err != nil {
		return "", domain.ErrFrameCaptureFailed.WithError(err)
	}
	return uri, nil
}

// pull keeps one stream connection alive, reconnecting on failure.
func (s *MJPEGSource) pull(ctx context.Context, zone int) {
	defer s.wg.Done()

	for {
		err := s.streamOnce(ctx, zone)
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn("camera stream interrupted",
			slog.Int("zone", zone),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (s *MJPEGSource) streamOnce(ctx context.Context, zone int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.urls[zone], nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("camera returned status %d", resp.StatusCode)
	}

	mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return fmt.Errorf("parse content type: %w", err)
	}
	if mediaType != "multipart/x-mixed-replace" {
		return fmt.Errorf("unexpected content type %q", mediaType)
	}

	reader := multipart.NewReader(resp.Body, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err != nil {
			return err
		}

		frame, err := io.ReadAll(io.LimitReader(part, maxPartSize))
		_ = part.Close()
		if err != nil {
			return err
		}

		s.mu.Lock()
		s.latest[zone] = frame
		s.mu.Unlock()
	}
}

var _ FrameSource = (*MJPEGSource)(nil)
