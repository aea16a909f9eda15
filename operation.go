package calcom

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

// Location is where a parameter is carried in the request.
type Location uint8

const (
	InPath Location = iota + 1
	InQuery
	InHeader
)

func (l Location) String() string {
	switch l {
	case InPath:
		return "path"
	case InQuery:
		return "query"
	case InHeader:
		return "header"
	default:
		return "unknown"
	}
}

// CollectionFormat is the encoding of a list-valued parameter. The zero value
// repeats the key once per element.
type CollectionFormat uint8

const (
	CollectionMulti CollectionFormat = iota
	CollectionCSV
	CollectionSSV
	CollectionTSV
	CollectionPipes
)

func (f CollectionFormat) separator() string {
	//exhaustive:ignore
	switch f {
	case CollectionSSV:
		return " "
	case CollectionTSV:
		return "\t"
	case CollectionPipes:
		return "|"
	default:
		return ","
	}
}

func (f CollectionFormat) String() string {
	switch f {
	case CollectionMulti:
		return "multi"
	case CollectionCSV:
		return "csv"
	case CollectionSSV:
		return "ssv"
	case CollectionTSV:
		return "tsv"
	case CollectionPipes:
		return "pipes"
	default:
		return "unknown"
	}
}

// ParamSpec declares one parameter of an operation.
type ParamSpec struct {
	Name        string
	In          Location
	Kind        Kind
	Required    bool
	Collection  CollectionFormat
	Description string
}

// Path declares a path parameter. Path parameters are always required.
func Path(name string, kind Kind) ParamSpec {
	return ParamSpec{Name: name, In: InPath, Kind: kind, Required: true}
}

// Query declares an optional query parameter.
func Query(name string, kind Kind) ParamSpec {
	return ParamSpec{Name: name, In: InQuery, Kind: kind}
}

// Header declares an optional header parameter.
func Header(name string, kind Kind) ParamSpec {
	return ParamSpec{Name: name, In: InHeader, Kind: kind}
}

// Require marks the parameter as required.
func (p ParamSpec) Require() ParamSpec {
	p.Required = true
	return p
}

// Format sets the collection format of a list parameter.
func (p ParamSpec) Format(f CollectionFormat) ParamSpec {
	p.Collection = f
	return p
}

// Doc sets the parameter description.
func (p ParamSpec) Doc(s string) ParamSpec {
	p.Description = s
	return p
}

// ResponseSpec declares what the body of a response status decodes into.
// A nil Body means the status carries no content.
type ResponseSpec struct {
	Description string
	Body        reflect.Type
}

// Operation is one entry of the operation table: method, path template,
// parameter specs, body, auth and the status to response mapping.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool

	Params      []ParamSpec
	Accepts     []string
	ContentType string
	BodyType    reflect.Type
	Security    []string
	Responses   map[int]ResponseSpec
}

// OperationOption configures an Operation when it is declared.
type OperationOption func(*Operation)

// NewOperation declares an operation. It panics if the path template has a
// placeholder without a matching path parameter, or a path parameter without
// a placeholder.
func NewOperation(id, method, path string, opts ...OperationOption) *Operation {
	op := &Operation{
		ID:          id,
		Method:      method,
		Path:        path,
		Accepts:     []string{"application/json"},
		ContentType: "application/json",
		Responses:   make(map[int]ResponseSpec),
	}
	for _, opt := range opts {
		opt(op)
	}
	if err := op.check(); err != nil {
		panic(err)
	}
	return op
}

func (op *Operation) check() error {
	placeholders := pathPlaceholders(op.Path)
	declared := make(map[string]bool)
	for _, p := range op.Params {
		if p.In != InPath {
			continue
		}
		declared[p.Name] = true
		if !placeholders[p.Name] {
			return fmt.Errorf("calcom: operation %s: path parameter %q not in %s", op.ID, p.Name, op.Path)
		}
		if p.Kind.IsList() {
			return fmt.Errorf("calcom: operation %s: path parameter %q cannot be a list", op.ID, p.Name)
		}
	}
	for name := range placeholders {
		if !declared[name] {
			return fmt.Errorf("calcom: operation %s: placeholder {%s} has no path parameter", op.ID, name)
		}
	}
	return nil
}

// Response returns the ResponseSpec for status and whether the status is mapped.
func (op *Operation) Response(status int) (ResponseSpec, bool) {
	rs, ok := op.Responses[status]
	return rs, ok
}

// WithSummary sets the operation summary.
func WithSummary(s string) OperationOption {
	return func(op *Operation) {
		op.Summary = s
	}
}

// WithDescription sets the operation description.
func WithDescription(d string) OperationOption {
	return func(op *Operation) {
		op.Description = d
	}
}

// WithTags adds tags to the operation.
func WithTags(tags ...string) OperationOption {
	return func(op *Operation) {
		op.Tags = append(op.Tags, tags...)
	}
}

// WithDeprecated marks the operation as deprecated.
func WithDeprecated() OperationOption {
	return func(op *Operation) {
		op.Deprecated = true
	}
}

// WithParams appends parameter specs in declaration order.
func WithParams(params ...ParamSpec) OperationOption {
	return func(op *Operation) {
		op.Params = append(op.Params, params...)
	}
}

// WithAccepts replaces the acceptable response media types.
func WithAccepts(mediaTypes ...string) OperationOption {
	return func(op *Operation) {
		op.Accepts = mediaTypes
	}
}

// WithRequestBody declares the body type and its content type.
func WithRequestBody[T any](contentType string) OperationOption {
	return func(op *Operation) {
		op.BodyType = reflect.TypeFor[T]()
		if contentType != "" {
			op.ContentType = contentType
		}
	}
}

// WithSecurity sets the auth schemes required by the operation.
func WithSecurity(schemes ...string) OperationOption {
	return func(op *Operation) {
		op.Security = append(op.Security, schemes...)
	}
}

// WithResponse maps a status code to a body type.
func WithResponse[T any](status int, desc string) OperationOption {
	return func(op *Operation) {
		op.Responses[status] = ResponseSpec{Description: desc, Body: reflect.TypeFor[T]()}
	}
}

// WithEmptyResponses maps status codes to no content.
func WithEmptyResponses(statuses ...int) OperationOption {
	return func(op *Operation) {
		for _, s := range statuses {
			op.Responses[s] = ResponseSpec{Description: http.StatusText(s)}
		}
	}
}

// pathPlaceholders returns the set of {name} segments in a path template.
func pathPlaceholders(path string) map[string]bool {
	out := make(map[string]bool)
	for {
		start := strings.IndexByte(path, '{')
		if start < 0 {
			return out
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			return out
		}
		out[path[start+1:start+end]] = true
		path = path[start+end+1:]
	}
}
