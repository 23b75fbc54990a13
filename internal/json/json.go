// Package json reads request bodies and writes response bodies with
// goccy/go-json.
package json

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// NewDecoder returns a decoder that rejects unknown fields.
func NewDecoder(r io.Reader) *json.Decoder {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	return decoder
}

var ErrTrailingData = errors.New("unexpected data after JSON value")

// DecodeJSON decodes exactly one JSON value into dst.
func DecodeJSON(dst any, decoder *json.Decoder) error {
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// WriteJSON writes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	resp, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(resp); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
