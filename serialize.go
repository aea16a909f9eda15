package calcom

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// Build serializes args into a RequestDescriptor using the built-in codecs.
// It performs no I/O. Auth is not applied here; the client resolves the
// descriptor's Security names at call time.
func (op *Operation) Build(cfg *Config, args *Args) (*RequestDescriptor, error) {
	return op.build(cfg, defaultCodecs, args, "")
}

// build is Build with an explicit codec registry and an optional content type
// that replaces the operation's declared one.
func (op *Operation) build(cfg *Config, codecs *codecRegistry, args *Args, contentType string) (*RequestDescriptor, error) {
	dateFormat := DefaultDateFormat
	if cfg != nil && cfg.DateFormat != "" {
		dateFormat = cfg.DateFormat
	}
	if contentType == "" {
		contentType = op.ContentType
	}

	d := &RequestDescriptor{
		OperationID: op.ID,
		Method:      op.Method,
		Path:        op.Path,
		Header:      make(http.Header),
		Security:    append([]string(nil), op.Security...),
	}

	if err := op.checkArgs(args); err != nil {
		return nil, err
	}

	for _, p := range op.Params {
		v, ok := args.Get(p.Name)
		if !ok {
			if !p.Required {
				continue
			}
			sentinel := ErrMissingParam
			if p.In == InPath {
				sentinel = ErrMissingPathParam
			}
			return nil, &ValidationError{Field: p.Name, Err: sentinel}
		}
		if v.Kind() != p.Kind {
			return nil, &ValidationError{
				Field: p.Name,
				Value: v.Kind().String(),
				Err:   fmt.Errorf("%w: want %s", ErrKindMismatch, p.Kind),
			}
		}

		//exhaustive:ignore
		switch p.In {
		case InPath:
			s, err := runtime.StyleParamWithLocation("simple", false, p.Name, runtime.ParamLocationPath, v.pathArg(dateFormat))
			if err != nil {
				return nil, &ValidationError{Field: p.Name, Err: err}
			}
			d.Path = strings.ReplaceAll(d.Path, "{"+p.Name+"}", s)
		case InQuery:
			if p.Kind.IsList() {
				appendCollection(d, p, v.formatList())
				continue
			}
			d.AddQuery(p.Name, v.format(dateFormat))
		case InHeader:
			if p.Kind.IsList() {
				d.Header.Set(p.Name, strings.Join(v.formatList(), ","))
				continue
			}
			d.Header.Set(p.Name, v.format(dateFormat))
		}
	}

	if accept := selectAccept(op.Accepts); accept != "" {
		d.Header.Set("Accept", accept)
	}

	if body := args.Body(); body != nil {
		b, err := encodeBody(codecs, contentType, dateFormat, body)
		if err != nil {
			return nil, err
		}
		d.Body = b
		d.Header.Set("Content-Type", contentType)
	}

	return d, nil
}

// checkArgs rejects arguments that the operation does not declare.
func (op *Operation) checkArgs(args *Args) error {
	if args == nil {
		return nil
	}
	for name := range args.values {
		found := false
		for _, p := range op.Params {
			if p.Name == name {
				found = true
				break
			}
		}
		if !found {
			return &ValidationError{Field: name, Err: ErrUnknownParam}
		}
	}
	return nil
}

// appendCollection adds a list parameter using its collection format.
func appendCollection(d *RequestDescriptor, p ParamSpec, items []string) {
	if p.Collection == CollectionMulti {
		for _, item := range items {
			d.AddQuery(p.Name, item)
		}
		return
	}
	d.AddQuery(p.Name, strings.Join(items, p.Collection.separator()))
}

// encodeBody validates and encodes a request body. Models go through ToMap so
// unset fields are dropped and dates use the configured layout.
func encodeBody(codecs *codecRegistry, contentType, dateFormat string, body any) ([]byte, error) {
	switch b := body.(type) {
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	}

	payload := body
	if IsModel(body) {
		m, err := ToMap(body, dateFormat)
		if err != nil {
			return nil, err
		}
		payload = m
	}

	enc, ok := codecs.codecFor(contentType)
	if !ok {
		return nil, fmt.Errorf("calcom: no codec for content type %q", contentType)
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, payload); err != nil {
		return nil, fmt.Errorf("calcom: encode body: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
