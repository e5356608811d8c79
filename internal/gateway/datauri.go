package gateway

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/drishti-ops/drishti/internal/domain"
)

// ParseDataURI splits a "data:<mime>;base64,<data>" payload into its MIME
// type and decoded bytes.
func ParseDataURI(uri string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, domain.ErrInvalidImage.WithError(fmt.Errorf("missing data: scheme"))
	}
	rest := strings.TrimPrefix(uri, "data:")

	sep := strings.Index(rest, ",")
	if sep < 0 {
		return "", nil, domain.ErrInvalidImage.WithError(fmt.Errorf("missing payload separator"))
	}

	meta, payload := rest[:sep], rest[sep+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, domain.ErrInvalidImage.WithError(fmt.Errorf("only base64 payloads are supported"))
	}
	mime = strings.TrimSuffix(meta, ";base64")

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, domain.ErrInvalidImage.WithError(err)
	}
	return mime, data, nil
}

// EncodeDataURI builds a self-describing data URI from raw image bytes.
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ValidDataURI reports whether the payload looks like a base64 image data URI
// without decoding the whole body.
func ValidDataURI(uri string) bool {
	if !strings.HasPrefix(uri, "data:") {
		return false
	}
	sep := strings.Index(uri, ",")
	return sep > 0 && strings.HasSuffix(uri[:sep], ";base64")
}
