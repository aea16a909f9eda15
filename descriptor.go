package calcom

import (
	"net/http"
	"net/url"
	"strings"
)

// QueryParam is one key/value pair of a query string. Order is preserved and
// keys may repeat.
type QueryParam struct {
	Key   string
	Value string
}

// RequestDescriptor is a fully resolved, ready-to-send representation of one
// call. It is built per call and consumed immediately by the client.
type RequestDescriptor struct {
	OperationID string
	Method      string
	Path        string
	Query       []QueryParam
	Header      http.Header
	Body        []byte
	Security    []string
}

// AddQuery appends a query pair.
func (d *RequestDescriptor) AddQuery(key, value string) {
	d.Query = append(d.Query, QueryParam{Key: key, Value: value})
}

// QueryValues returns every value recorded for key, in order.
func (d *RequestDescriptor) QueryValues(key string) []string {
	var out []string
	for _, q := range d.Query {
		if q.Key == key {
			out = append(out, q.Value)
		}
	}
	return out
}

// RawQuery encodes the query list in declaration order.
func (d *RequestDescriptor) RawQuery() string {
	var b strings.Builder
	for i, q := range d.Query {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(q.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.Value))
	}
	return b.String()
}

// URL joins host, path and query into an absolute URL.
func (d *RequestDescriptor) URL(host string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(host, "/") + d.Path)
	if err != nil {
		return nil, err
	}
	u.RawQuery = d.RawQuery()
	return u, nil
}

// clone returns a copy of d that can be modified without affecting d.
func (d *RequestDescriptor) clone() *RequestDescriptor {
	c := *d
	c.Query = append([]QueryParam(nil), d.Query...)
	c.Header = d.Header.Clone()
	if c.Header == nil {
		c.Header = make(http.Header)
	}
	return &c
}
