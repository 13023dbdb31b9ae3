package paginate

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Param is one query parameter and all of its values, in request order.
type Param struct {
	Key    string
	Values []string
}

// RequestContext is a snapshot of the request a paginator renders for: the
// path links point at and the query parameters they must preserve. The zero
// value is valid and renders links with an empty path and no extra
// parameters.
type RequestContext struct {
	Path   string
	Params []Param
}

// FromRequest captures the path and query of r. A nil request yields the
// zero RequestContext.
func FromRequest(r *http.Request) RequestContext {
	if r == nil {
		return RequestContext{}
	}
	return FromURL(r.URL)
}

// FromURL captures the path and query of u, keeping parameters in the order
// they first appear. Malformed pairs are skipped.
func FromURL(u *url.URL) RequestContext {
	if u == nil {
		return RequestContext{}
	}
	return RequestContext{
		Path:   u.Path,
		Params: parseOrderedQuery(u.RawQuery),
	}
}

func parseOrderedQuery(raw string) []Param {
	var params []Param
	index := make(map[string]int)

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil || key == "" {
			continue
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			continue
		}
		if i, ok := index[key]; ok {
			params[i].Values = append(params[i].Values, value)
			continue
		}
		index[key] = len(params)
		params = append(params, Param{Key: key, Values: []string{value}})
	}

	return params
}

// Get returns the first value of key.
func (rc RequestContext) Get(key string) (string, bool) {
	for _, p := range rc.Params {
		if p.Key == key && len(p.Values) > 0 {
			return p.Values[0], true
		}
	}
	return "", false
}

// Page reads the page number stored under key. Missing, malformed and
// non-positive values all yield 1.
func (rc RequestContext) Page(key string) int {
	v, ok := rc.Get(key)
	if !ok {
		return 1
	}
	page, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Without returns the parameters other than key.
func (rc RequestContext) Without(key string) []Param {
	out := make([]Param, 0, len(rc.Params))
	for _, p := range rc.Params {
		if p.Key != key {
			out = append(out, p)
		}
	}
	return out
}

// PageURL builds the URL of page under key, preserving every other
// parameter after the page parameter.
func (rc RequestContext) PageURL(key string, page int) string {
	var b strings.Builder
	b.WriteString(rc.Path)
	b.WriteByte('?')
	b.WriteString(url.QueryEscape(key))
	b.WriteByte('=')
	b.WriteString(strconv.Itoa(page))
	for _, p := range rc.Without(key) {
		for _, v := range p.Values {
			b.WriteByte('&')
			b.WriteString(url.QueryEscape(p.Key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
