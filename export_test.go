package calcom

import "reflect"

// Test-only exports for internal functions.
var (
	TagOptions       = tagOptions
	JSONFieldName    = jsonFieldName
	EnumTag          = enumTag
	KindToSchema     = kindToSchema
	SelectAccept     = selectAccept
	PathPlaceholders = pathPlaceholders

	ErrCallTimeout    = errCallTimeout
	ErrConnectTimeout = errConnectTimeout
	ErrReadTimeout    = errReadTimeout
)

// BuildWithContentType builds op with the default codecs and a content type
// that replaces the declared one.
func BuildWithContentType(op *Operation, cfg *Config, args *Args, contentType string) (*RequestDescriptor, error) {
	return op.build(cfg, defaultCodecs, args, contentType)
}

// TestSchemaRegistry wraps schemaRegistry for external tests.
type TestSchemaRegistry struct {
	reg  *schemaRegistry
	Defs map[string]JSONSchema
}

// NewSchemaRegistry creates a TestSchemaRegistry for testing.
func NewSchemaRegistry() *TestSchemaRegistry {
	r := newSchemaRegistry()
	return &TestSchemaRegistry{reg: r, Defs: r.defs}
}

// TypeToSchema delegates to the internal registry.
func (t *TestSchemaRegistry) TypeToSchema(typ reflect.Type) JSONSchema {
	return t.reg.typeToSchema(typ)
}
