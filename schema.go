package calcom

import (
	"reflect"
	"time"
)

// JSONSchema represents a JSON Schema object (subset for OpenAPI 3.1).
type JSONSchema struct {
	Type        string                `json:"type,omitempty"`
	Format      string                `json:"format,omitempty"`
	Properties  map[string]JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema           `json:"items,omitempty"`
	Required    []string              `json:"required,omitempty"`
	Description string                `json:"description,omitempty"`
	Enum        []string              `json:"enum,omitempty"`
	Ref         string                `json:"$ref,omitempty"`
	OneOf       []JSONSchema          `json:"oneOf,omitempty"`

	// AdditionalProperties can be true (any) or a schema.
	AdditionalProperties *JSONSchema `json:"additionalProperties,omitempty"`
}

// schemaRegistry collects named model schemas while converting types.
type schemaRegistry struct {
	defs map[string]JSONSchema
}

func newSchemaRegistry() *schemaRegistry {
	return &schemaRegistry{defs: make(map[string]JSONSchema)}
}

var modelType = reflect.TypeFor[Model]()

// typeToSchema converts a reflect.Type to a JSONSchema. Model types are
// registered under their ModelName and returned as a $ref.
func (r *schemaRegistry) typeToSchema(t reflect.Type) JSONSchema {
	// Unwrap pointer.
	if t.Kind() == reflect.Pointer {
		return r.typeToSchema(t.Elem())
	}

	// Handle well-known types.
	switch t {
	case reflect.TypeFor[time.Time]():
		return JSONSchema{Type: "string", Format: "date-time"}
	case reflect.TypeFor[Date]():
		return JSONSchema{Type: "string", Format: "date"}
	case reflect.TypeFor[time.Duration]():
		return JSONSchema{Type: "string", Format: "duration"}
	}

	if t.Kind() == reflect.Struct && t.Implements(modelType) {
		return r.modelRef(t)
	}

	//exhaustive:ignore
	switch t.Kind() {
	case reflect.String:
		return JSONSchema{Type: "string"}
	case reflect.Bool:
		return JSONSchema{Type: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return JSONSchema{Type: "integer"}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return JSONSchema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return JSONSchema{Type: "number"}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return JSONSchema{Type: "string", Format: "byte"}
		}
		items := r.typeToSchema(t.Elem())
		return JSONSchema{Type: "array", Items: &items}
	case reflect.Array:
		items := r.typeToSchema(t.Elem())
		return JSONSchema{Type: "array", Items: &items}
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return JSONSchema{Type: "object"}
		}
		valSchema := r.typeToSchema(t.Elem())
		return JSONSchema{Type: "object", AdditionalProperties: &valSchema}
	case reflect.Struct:
		return r.structToSchema(t)
	default:
		return JSONSchema{}
	}
}

// modelRef registers a model schema once and returns a reference to it.
func (r *schemaRegistry) modelRef(t reflect.Type) JSONSchema {
	name := reflect.Zero(t).Interface().(Model).ModelName()
	ref := JSONSchema{Ref: "#/components/schemas/" + name}
	if _, ok := r.defs[name]; ok {
		return ref
	}
	r.defs[name] = JSONSchema{} // guards against recursive models
	r.defs[name] = r.modelSchema(t)
	return ref
}

// modelSchema derives an object schema from the Opt fields of a model.
func (r *schemaRegistry) modelSchema(t reflect.Type) JSONSchema {
	schema := JSONSchema{
		Type:       "object",
		Properties: make(map[string]JSONSchema),
	}

	for _, meta := range modelFields(t) {
		prop := r.typeToSchema(meta.elem)
		if meta.enum != nil {
			prop.Enum = meta.enum
		}
		if meta.nullable {
			prop = JSONSchema{OneOf: []JSONSchema{prop, {Type: "null"}}}
		}
		prop.Description = meta.doc
		schema.Properties[meta.wire] = prop

		if meta.required {
			schema.Required = append(schema.Required, meta.wire)
		}
	}

	return schema
}

// structToSchema converts a plain struct type to a JSONSchema with properties.
func (r *schemaRegistry) structToSchema(t reflect.Type) JSONSchema {
	schema := JSONSchema{
		Type:       "object",
		Properties: make(map[string]JSONSchema),
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := jsonFieldName(f)
		if name == "-" {
			continue
		}

		prop := r.typeToSchema(f.Type)

		if doc := f.Tag.Get("doc"); doc != "" {
			prop.Description = doc
		}

		schema.Properties[name] = prop

		if boolTag(f, "required") {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

// kindToSchema converts a parameter kind to a JSONSchema.
func kindToSchema(k Kind) JSONSchema {
	//exhaustive:ignore
	switch k {
	case KindString:
		return JSONSchema{Type: "string"}
	case KindInt:
		return JSONSchema{Type: "integer", Format: "int64"}
	case KindFloat:
		return JSONSchema{Type: "number"}
	case KindBool:
		return JSONSchema{Type: "boolean"}
	case KindDate:
		return JSONSchema{Type: "string", Format: "date"}
	case KindStringList:
		return JSONSchema{Type: "array", Items: &JSONSchema{Type: "string"}}
	case KindIntList:
		return JSONSchema{Type: "array", Items: &JSONSchema{Type: "integer", Format: "int64"}}
	default:
		return JSONSchema{}
	}
}
