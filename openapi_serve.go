package calcom

import (
	"encoding/json"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"
)

// SpecHandler returns a handler that serves the catalog's OpenAPI document
// as JSON.
func (c Catalog) SpecHandler(opts ...SpecOption) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort after WriteHeader
		json.NewEncoder(w).Encode(c.Spec(opts...))
	})
}

// SpecHandlerYAML returns a handler that serves the catalog's OpenAPI
// document as YAML.
func (c Catalog) SpecHandlerYAML(opts ...SpecOption) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		//nolint:errcheck,gosec // best-effort after WriteHeader
		c.WriteSpecYAML(w, opts...)
	})
}

// WriteSpec writes the OpenAPI document as indented JSON to w.
func (c Catalog) WriteSpec(w io.Writer, opts ...SpecOption) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c.Spec(opts...))
}

// WriteSpecYAML writes the OpenAPI document as YAML to w. The document goes
// through its JSON form so YAML keys match the JSON field names.
func (c Catalog) WriteSpecYAML(w io.Writer, opts ...SpecOption) error {
	b, err := json.Marshal(c.Spec(opts...))
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
