package calcom

import (
	"slices"
	"strconv"
	"strings"
)

// OpenAPISpec is the top-level OpenAPI 3.1 document.
type OpenAPISpec struct {
	OpenAPI    string              `json:"openapi"`
	Info       OpenAPIInfo         `json:"info"`
	Servers    []Server            `json:"servers,omitempty"`
	Paths      map[string]PathItem `json:"paths"`
	Components *Components         `json:"components,omitempty"`
	Tags       []Tag               `json:"tags,omitempty"`
}

// OpenAPIInfo holds API metadata.
type OpenAPIInfo struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// Server is one entry of the OpenAPI servers array.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Tag describes an operation tag.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Components holds the reusable schemas and security schemes.
type Components struct {
	Schemas         map[string]JSONSchema     `json:"schemas,omitempty"`
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes,omitempty"`
}

// PathItem maps HTTP methods to operations.
type PathItem map[string]OperationObject

// OperationObject describes a single API operation on a path.
type OperationObject struct {
	Summary     string                `json:"summary,omitempty"`
	Description string                `json:"description,omitempty"`
	Tags        []string              `json:"tags,omitempty"`
	OperationID string                `json:"operationId,omitempty"`
	Parameters  []Parameter           `json:"parameters,omitempty"`
	RequestBody *RequestBody          `json:"requestBody,omitempty"`
	Responses   OperationResp         `json:"responses"`
	Security    []map[string][]string `json:"security,omitempty"`
	Deprecated  bool                  `json:"deprecated,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string     `json:"name"`
	In          string     `json:"in"`
	Description string     `json:"description,omitempty"`
	Required    bool       `json:"required,omitempty"`
	Style       string     `json:"style,omitempty"`
	Explode     *bool      `json:"explode,omitempty"`
	Schema      JSONSchema `json:"schema"`
}

// RequestBody describes the request body.
type RequestBody struct {
	Required bool                `json:"required"`
	Content  map[string]MediaObj `json:"content"`
}

// MediaObj is a media type object with an optional schema.
type MediaObj struct {
	Schema *JSONSchema `json:"schema,omitempty"`
}

// OperationResp maps HTTP status codes to response objects.
type OperationResp map[string]ResponseObj

// ResponseObj describes a single response.
type ResponseObj struct {
	Description string              `json:"description"`
	Content     map[string]MediaObj `json:"content,omitempty"`
}

// SpecOption configures a generated document.
type SpecOption func(*OpenAPISpec)

// WithTitle sets the API title.
func WithTitle(title string) SpecOption {
	return func(s *OpenAPISpec) {
		s.Info.Title = title
	}
}

// WithVersion sets the API version.
func WithVersion(version string) SpecOption {
	return func(s *OpenAPISpec) {
		s.Info.Version = version
	}
}

// WithServers sets the servers array.
func WithServers(servers ...Server) SpecOption {
	return func(s *OpenAPISpec) {
		s.Servers = servers
	}
}

// WithTagDescriptions describes tags used by the catalog.
func WithTagDescriptions(descs map[string]string) SpecOption {
	return func(s *OpenAPISpec) {
		for i := range s.Tags {
			if d, ok := descs[s.Tags[i].Name]; ok {
				s.Tags[i].Description = d
			}
		}
	}
}

// Spec generates an OpenAPI 3.1 document describing the catalog.
func (c Catalog) Spec(opts ...SpecOption) OpenAPISpec {
	reg := newSchemaRegistry()
	schemes := defaultSecuritySchemes()

	spec := OpenAPISpec{
		OpenAPI: "3.1.0",
		Info: OpenAPIInfo{
			Title:   "Cal.com API",
			Version: "1.0.0",
		},
		Servers: []Server{{URL: DefaultHost}},
		Paths:   make(map[string]PathItem),
		Components: &Components{
			Schemas:         reg.defs,
			SecuritySchemes: make(map[string]SecurityScheme),
		},
	}

	var tags []string
	for _, op := range c {
		method := strings.ToLower(op.Method)
		if spec.Paths[op.Path] == nil {
			spec.Paths[op.Path] = make(PathItem)
		}
		spec.Paths[op.Path][method] = buildOperation(reg, op)

		for _, name := range op.Security {
			if s, ok := schemes[name]; ok {
				spec.Components.SecuritySchemes[name] = s
			}
		}
		for _, t := range op.Tags {
			if !slices.Contains(tags, t) {
				tags = append(tags, t)
			}
		}
	}
	for _, t := range tags {
		spec.Tags = append(spec.Tags, Tag{Name: t})
	}

	for _, opt := range opts {
		opt(&spec)
	}
	return spec
}

// buildOperation creates an OperationObject from a catalog entry.
func buildOperation(reg *schemaRegistry, op *Operation) OperationObject {
	out := OperationObject{
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		OperationID: op.ID,
		Deprecated:  op.Deprecated,
		Responses:   make(OperationResp),
	}

	for _, p := range op.Params {
		out.Parameters = append(out.Parameters, buildParameter(p))
	}

	if op.BodyType != nil {
		schema := reg.typeToSchema(op.BodyType)
		out.RequestBody = &RequestBody{
			Required: true,
			Content: map[string]MediaObj{
				op.ContentType: {Schema: &schema},
			},
		}
	}

	statuses := make([]int, 0, len(op.Responses))
	for s := range op.Responses {
		statuses = append(statuses, s)
	}
	slices.Sort(statuses)

	accept := selectAccept(op.Accepts)
	if accept == "" {
		accept = "application/json"
	}
	for _, status := range statuses {
		rs := op.Responses[status]
		obj := ResponseObj{Description: rs.Description}
		if rs.Body != nil {
			schema := reg.typeToSchema(rs.Body)
			obj.Content = map[string]MediaObj{accept: {Schema: &schema}}
		}
		out.Responses[statusToString(status)] = obj
	}

	for _, name := range op.Security {
		out.Security = append(out.Security, map[string][]string{name: {}})
	}

	return out
}

// buildParameter describes one ParamSpec, including its collection style.
func buildParameter(p ParamSpec) Parameter {
	out := Parameter{
		Name:        p.Name,
		In:          p.In.String(),
		Description: p.Description,
		Required:    p.Required,
		Schema:      kindToSchema(p.Kind),
	}
	if !p.Kind.IsList() || p.In != InQuery {
		return out
	}

	explode := false
	//exhaustive:ignore
	switch p.Collection {
	case CollectionMulti:
		explode = true
		out.Style = "form"
	case CollectionCSV, CollectionTSV:
		out.Style = "form"
	case CollectionSSV:
		out.Style = "spaceDelimited"
	case CollectionPipes:
		out.Style = "pipeDelimited"
	}
	out.Explode = &explode
	return out
}

// statusToString converts an HTTP status code to its string representation.
func statusToString(code int) string {
	return strconv.Itoa(code)
}
