package calcom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
)

// Response is a decoded body together with the response metadata.
type Response[T any] struct {
	Data   T
	Status int
	Header http.Header
}

// decodeResponse maps a response to a value or an error by its status code.
// The body is always read to completion and closed.
func decodeResponse[T any](c *Client, op *Operation, resp *http.Response) (*Response[T], error) {
	defer resp.Body.Close()

	body, err := c.readBody(op, resp)
	if err != nil {
		return nil, err
	}

	out := &Response[T]{Status: resp.StatusCode, Header: resp.Header}
	spec, mapped := op.Response(resp.StatusCode)
	contentType := resp.Header.Get("Content-Type")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Op:     op.ID,
			Status: resp.StatusCode,
			Header: resp.Header,
			Body:   body,
		}
		if mapped && spec.Body != nil && len(body) > 0 {
			payload := reflect.New(spec.Body)
			if err := c.decodeBody(contentType, body, payload.Interface()); err == nil {
				apiErr.Payload = payload.Elem().Interface()
			}
		}
		return nil, apiErr
	}

	if !mapped || spec.Body == nil {
		return out, nil
	}

	if err := c.decodeBody(contentType, body, &out.Data); err != nil {
		return nil, &DecodeError{
			Op:          op.ID,
			Status:      resp.StatusCode,
			ContentType: contentType,
			Body:        body,
			Err:         err,
		}
	}
	return out, nil
}

// readBody reads the whole body within Config.MaxResponseBytes.
func (c *Client) readBody(op *Operation, resp *http.Response) ([]byte, error) {
	r := io.Reader(resp.Body)
	limit := c.cfg.MaxResponseBytes
	if limit > 0 {
		r = io.LimitReader(resp.Body, limit+1)
	}

	body, err := io.ReadAll(r)
	switch {
	case errors.Is(err, ErrResponseTooLarge):
		return nil, &DecodeError{
			Op:          op.ID,
			Status:      resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Err:         err,
		}
	case err != nil:
		req := resp.Request
		if req == nil {
			return nil, &TransportError{Op: op.ID, Method: op.Method, Err: err}
		}
		return nil, transportError(op.ID, req.Method, req.URL, err, timeoutCause(req.Context()))
	case limit > 0 && int64(len(body)) > limit:
		return nil, &DecodeError{
			Op:          op.ID,
			Status:      resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Err:         fmt.Errorf("%w: limit %d bytes", ErrResponseTooLarge, limit),
		}
	}
	return body, nil
}

// decodeBody decodes body into target, a non-nil pointer. Models are decoded
// with the configured date format and validated; byte slices and strings
// receive the body as is.
func (c *Client) decodeBody(contentType string, body []byte, target any) error {
	switch t := target.(type) {
	case *[]byte:
		*t = body
		return nil
	case *string:
		*t = string(body)
		return nil
	}

	codec, ok := c.codecs.codecFor(contentType)
	if !ok {
		return fmt.Errorf("unsupported content type %q", contentType)
	}

	if IsModel(target) && codec.ContentType() == "application/json" {
		var raw map[string]any
		if err := decodeJSONMap(body, &raw); err != nil {
			return err
		}
		if err := DecodeMap(raw, target, c.cfg.DateFormat); err != nil {
			return err
		}
		return Validate(target)
	}

	return codec.Decode(bytes.NewReader(body), target)
}
