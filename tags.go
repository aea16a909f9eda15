package calcom

import (
	"reflect"
	"strings"
)

// tagOptions splits a struct tag value on comma and returns
// the name and remaining options.
func tagOptions(tag string) (string, string) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, opts
}

// jsonFieldName returns the JSON field name for a struct field.
func jsonFieldName(f reflect.StructField) string {
	name, _ := tagOptions(f.Tag.Get("json"))
	if name == "" {
		return f.Name
	}
	return name
}

// boolTag reports whether the named tag is "true".
func boolTag(f reflect.StructField, name string) bool {
	return f.Tag.Get(name) == "true"
}

// enumTag returns the allowed values listed in the enum tag, or nil.
func enumTag(f reflect.StructField) []string {
	tag := f.Tag.Get("enum")
	if tag == "" {
		return nil
	}
	values := strings.Split(tag, ",")
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}
