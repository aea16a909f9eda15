package calcom

import (
	"net/url"
	"strings"
)

// APIKeyAuth is the name of the API-key-in-query scheme used by every
// authenticated operation.
const APIKeyAuth = "ApiKeyAuth"

// SecurityScheme describes how a named auth scheme is carried. Type "apiKey"
// schemes send Config.APIKey as the parameter Name in the location In
// ("query" or "header"). Type "http" schemes with Scheme "bearer" send
// Config.APIKey as a bearer token.
type SecurityScheme struct {
	Type         string `json:"type" yaml:"type"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	In           string `json:"in,omitempty" yaml:"in,omitempty"`
	Scheme       string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	BearerFormat string `json:"bearerFormat,omitempty" yaml:"bearerFormat,omitempty"`
}

func defaultSecuritySchemes() map[string]SecurityScheme {
	return map[string]SecurityScheme{
		APIKeyAuth: {
			Type:        "apiKey",
			Name:        "apiKey",
			In:          "query",
			Description: "Your Cal.com API key",
		},
	}
}

// Credential is one resolved auth value, ready to be placed on a request.
type Credential struct {
	In    Location
	Name  string
	Value string
}

// QueryCredential returns a Credential carried as a query parameter.
func QueryCredential(name, value string) Credential {
	return Credential{In: InQuery, Name: name, Value: value}
}

// HeaderCredential returns a Credential carried as a header.
func HeaderCredential(name, value string) Credential {
	return Credential{In: InHeader, Name: name, Value: value}
}

// resolveAuth turns the scheme names required by an operation into
// credentials using the client's configuration. Schemes without a configured
// key are skipped; the server decides whether the call is allowed.
func (c *Client) resolveAuth(names []string) []Credential {
	if len(names) == 0 {
		return nil
	}

	key := c.cfg.APIKey
	if key != "" && c.cfg.APIKeyPrefix != "" {
		key = c.cfg.APIKeyPrefix + " " + key
	}

	var out []Credential
	for _, name := range names {
		s, ok := c.schemes[name]
		if !ok {
			c.logger.Warn("unknown security scheme", "scheme", name)
			continue
		}
		if c.cfg.APIKey == "" {
			continue
		}
		switch {
		case s.Type == "apiKey" && s.In == "header":
			out = append(out, HeaderCredential(s.Name, key))
		case s.Type == "apiKey":
			out = append(out, QueryCredential(s.Name, key))
		case s.Type == "http" && strings.EqualFold(s.Scheme, "bearer"):
			out = append(out, HeaderCredential("Authorization", "Bearer "+c.cfg.APIKey))
		}
	}
	return out
}

// applyAuth places credentials on the descriptor. Query credentials come
// before the operation's own query parameters.
func applyAuth(d *RequestDescriptor, creds []Credential) {
	var query []QueryParam
	for _, cr := range creds {
		//exhaustive:ignore
		switch cr.In {
		case InHeader:
			d.Header.Set(cr.Name, cr.Value)
		default:
			query = append(query, QueryParam{Key: cr.Name, Value: cr.Value})
		}
	}
	if len(query) > 0 {
		d.Query = append(query, d.Query...)
	}
}

var secretQueryKeys = []string{"apiKey", "api_key", "apikey"}

// RedactURL masks credential query parameters in raw.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return redactURL(u)
}

func redactURL(u *url.URL) string {
	if u.RawQuery == "" {
		return u.String()
	}
	q := u.Query()
	changed := false
	for _, k := range secretQueryKeys {
		if q.Has(k) {
			q.Set(k, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return u.String()
	}
	c := *u
	c.RawQuery = q.Encode()
	return c.String()
}
