package calcom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Model is implemented by every typed payload of the API. Model fields are
// Opt values; the json tag gives the wire name, and the enum, nullable and
// required tags declare constraints.
//
//	type WebhookEdit struct {
//	    EventTriggers Opt[WebhookTrigger] `json:"eventTriggers" enum:"BOOKING_CREATED,MEETING_ENDED"`
//	}
type Model interface {
	ModelName() string
}

// IsModel reports whether v (or the value it points to) is a Model.
func IsModel(v any) bool {
	if _, ok := v.(Model); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		_, ok := rv.Elem().Interface().(Model)
		return ok
	}
	return false
}

// fieldMeta describes one Opt field of a model type.
type fieldMeta struct {
	index    int
	goName   string
	wire     string
	enum     []string
	nullable bool
	required bool
	doc      string
	elem     reflect.Type
}

var modelFieldCache sync.Map // reflect.Type -> []fieldMeta

var optFieldType = reflect.TypeFor[optField]()

// modelFields returns the Opt fields of a struct type in declaration order.
func modelFields(t reflect.Type) []fieldMeta {
	if cached, ok := modelFieldCache.Load(t); ok {
		return cached.([]fieldMeta)
	}

	var fields []fieldMeta
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || !f.Type.Implements(optFieldType) {
			continue
		}
		name := jsonFieldName(f)
		if name == "-" {
			continue
		}
		meta := fieldMeta{
			index:    i,
			goName:   f.Name,
			wire:     name,
			enum:     enumTag(f),
			nullable: boolTag(f, "nullable"),
			required: boolTag(f, "required"),
			doc:      f.Tag.Get("doc"),
			elem:     reflect.Zero(f.Type).Interface().(optField).elemType(),
		}
		fields = append(fields, meta)
	}

	modelFieldCache.Store(t, fields)
	return fields
}

// modelValue returns the struct value behind m, addressable when m is a
// pointer.
func modelValue(m any) (reflect.Value, error) {
	rv := reflect.ValueOf(m)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("calcom: nil model %T", m)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("calcom: %T is not a model struct", m)
	}
	return rv, nil
}

// Validate checks every field of m against its declared constraints. The
// first violation is returned as a *ValidationError.
func Validate(m any) error {
	rv, err := modelValue(m)
	if err != nil {
		return err
	}

	for _, meta := range modelFields(rv.Type()) {
		f := rv.Field(meta.index).Interface().(optField)

		switch f.state() {
		case stateUnset:
			if meta.required {
				return &ValidationError{Field: meta.wire, Err: ErrMissingField}
			}
		case stateNull:
			if !meta.nullable {
				return &ValidationError{Field: meta.wire, Err: ErrNullNotAllowed}
			}
		case stateSet:
			if meta.enum == nil {
				continue
			}
			val := reflect.ValueOf(f.value())
			if val.Kind() != reflect.String {
				return &ValidationError{Field: meta.wire, Err: ErrFieldType, Value: f.value()}
			}
			if !slices.Contains(meta.enum, val.String()) {
				return &ValidationError{
					Field:   meta.wire,
					Allowed: meta.enum,
					Value:   val.String(),
					Err:     ErrInvalidEnum,
				}
			}
		}
	}

	return nil
}

// ToMap validates m and converts it to its wire form. Fields that were never
// set are omitted; explicit nulls are kept for nullable fields. Dates are
// formatted with dateFormat.
func ToMap(m any, dateFormat string) (map[string]any, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	rv, err := modelValue(m)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	for _, meta := range modelFields(rv.Type()) {
		f := rv.Field(meta.index).Interface().(optField)
		switch f.state() {
		case stateUnset:
			continue
		case stateNull:
			out[meta.wire] = nil
		case stateSet:
			out[meta.wire] = f.wire(dateFormat)
		}
	}
	return out, nil
}

// DecodeMap populates the model pointed to by target from wire-named keys.
// Unknown keys are ignored and missing keys leave fields unset. A nil value
// sets a nullable field to null and is treated as absent otherwise. DecodeMap
// does not validate.
func DecodeMap(data map[string]any, target any, dateFormat string) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("calcom: decode target must be a non-nil pointer, got %T", target)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("calcom: %T is not a model struct", target)
	}

	for _, meta := range modelFields(rv.Type()) {
		wire, ok := data[meta.wire]
		if !ok {
			continue
		}
		if wire == nil && !meta.nullable {
			continue
		}
		f := rv.Field(meta.index).Addr().Interface().(optFieldSetter)
		if err := f.decode(wire, dateFormat); err != nil {
			return &ValidationError{
				Field: meta.wire,
				Value: wire,
				Err:   fmt.Errorf("%w: %w", ErrFieldType, err),
			}
		}
	}
	return nil
}

// FromMap constructs and validates a model from wire-named keys.
func FromMap[T any](data map[string]any, dateFormat string) (*T, error) {
	m := new(T)
	if err := DecodeMap(data, m, dateFormat); err != nil {
		return nil, err
	}
	if err := Validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

// marshalModel implements json.Marshaler for models with the default date
// layout.
func marshalModel(m any) ([]byte, error) {
	out, err := ToMap(m, DefaultDateFormat)
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// unmarshalModel implements json.Unmarshaler for models with the default date
// layout.
func unmarshalModel(data []byte, target any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw map[string]any
	if err := decodeJSONMap(data, &raw); err != nil {
		return err
	}
	if err := DecodeMap(raw, target, DefaultDateFormat); err != nil {
		return err
	}
	return Validate(target)
}

// decodeJSONMap decodes exactly one JSON object keeping numbers exact.
func decodeJSONMap(data []byte, out *map[string]any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeJSON(dec, out)
}
