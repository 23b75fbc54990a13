// Package image decodes user uploaded images sent as base64 data URIs.
package image

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	dataURIPrefix = "data:"
	base64Marker  = ";base64,"

	// MaxSize is the largest decoded image accepted.
	MaxSize = 20 << 20 // ~ 20 MB
)

// allowedImageTypes lists the simple MIME types we accept.
var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/svg+xml",
	"image/webp",
	"image/gif",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrInvalidDataURI      = errors.New("invalid data uri")
	ErrEmptyImage          = errors.New("image is empty")
	ErrImageTooLarge       = errors.New("image is too large")
)

type File struct {
	Size     int64
	Data     []byte
	Suffix   string
	MimeType string
}

// IsDataURI reports whether s looks like a data URI rather than a stored file key.
func IsDataURI(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), dataURIPrefix)
}

// DecodeDataURI decodes a `data:image/<type>;base64,<payload>` string. The
// declared type is ignored; the payload is sniffed instead.
func DecodeDataURI(uri string) (*File, error) {
	uri = strings.TrimSpace(uri)
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return nil, fmt.Errorf("missing %q prefix: %w", dataURIPrefix, ErrInvalidDataURI)
	}
	header, payload, found := strings.Cut(uri, base64Marker)
	if !found {
		return nil, fmt.Errorf("missing base64 marker: %w", ErrInvalidDataURI)
	}
	if !strings.HasPrefix(header, dataURIPrefix+"image/") {
		return nil, fmt.Errorf("declared type %q: %w", strings.TrimPrefix(header, dataURIPrefix), ErrUnsupportedMimeType)
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxSize {
		return nil, ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Join(ErrInvalidDataURI, err)
	}
	return Read(data)
}

// Read sniffs data and returns it as a File if it is an allowed image type.
func Read(data []byte) (*File, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if len(data) > MaxSize {
		return nil, ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return nil, fmt.Errorf("mime type %q: %w", mtype.String(), ErrUnsupportedMimeType)
	}

	return &File{
		Size:     int64(len(data)),
		MimeType: mtype.String(),
		Suffix:   mtype.Extension(),
		Data:     data,
	}, nil
}
