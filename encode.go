package calcom

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
)

// Codec encodes request bodies and decodes response bodies for one media type.
type Codec interface {
	ContentType() string
	Encode(w io.Writer, v any) error
	Decode(r io.Reader, v any) error
}

// jsonCodec implements Codec for JSON.
type jsonCodec struct{}

func (jsonCodec) ContentType() string { return "application/json" }

func (jsonCodec) Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// Decode reads exactly one JSON value. An empty body and data after the
// value are errors.
func (jsonCodec) Decode(r io.Reader, v any) error {
	return decodeJSON(json.NewDecoder(r), v)
}

// errTrailingData reports bytes after the single value of a body.
var errTrailingData = errors.New("unexpected data after top-level value")

func decodeJSON(dec *json.Decoder, v any) error {
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body: %w", io.ErrUnexpectedEOF)
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// xmlCodec implements Codec for XML.
type xmlCodec struct{}

func (xmlCodec) ContentType() string { return "application/xml" }

func (xmlCodec) Encode(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(v)
}

func (xmlCodec) Decode(r io.Reader, v any) error {
	err := xml.NewDecoder(r).Decode(v)
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("empty body: %w", io.ErrUnexpectedEOF)
	}
	return err
}

// codecRegistry holds the codecs known to a client. Index 0 is always JSON.
type codecRegistry struct {
	codecs []Codec
}

var defaultCodecs = newCodecRegistry(nil)

// newCodecRegistry builds a registry with JSON first, XML second, then any
// user-registered codecs.
func newCodecRegistry(user []Codec) *codecRegistry {
	cr := &codecRegistry{codecs: make([]Codec, 0, 2+len(user))}
	cr.codecs = append(cr.codecs, jsonCodec{}, xmlCodec{})
	cr.codecs = append(cr.codecs, user...)
	return cr
}

// codecFor returns the codec matching a Content-Type value.
// Returns (JSON, true) for an empty content type and for any +json suffix.
// Returns (nil, false) if the content type is present but unrecognized.
func (cr *codecRegistry) codecFor(contentType string) (Codec, bool) {
	if contentType == "" {
		return cr.codecs[0], true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, false
	}

	for i := len(cr.codecs) - 1; i >= 0; i-- {
		if cr.codecs[i].ContentType() == mediaType {
			return cr.codecs[i], true
		}
	}
	if strings.HasSuffix(mediaType, "+json") {
		return cr.codecs[0], true
	}
	if strings.HasSuffix(mediaType, "+xml") || mediaType == "text/xml" {
		return cr.codecs[1], true
	}
	return nil, false
}

// selectAccept picks the single Accept value for an operation: the first
// JSON media type offered, otherwise the first offered.
func selectAccept(accepts []string) string {
	if len(accepts) == 0 {
		return ""
	}
	for _, a := range accepts {
		if isJSONMediaType(a) {
			return a
		}
	}
	return accepts[0]
}

func isJSONMediaType(s string) bool {
	mediaType, _, err := mime.ParseMediaType(s)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
