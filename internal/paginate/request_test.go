package paginate

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/pages?page=2&var=123&b=1&var=456", nil)

	rc := FromRequest(req)

	assert.Equal(t, "/pages", rc.Path)
	assert.Equal(t, []Param{
		{Key: "page", Values: []string{"2"}},
		{Key: "var", Values: []string{"123", "456"}},
		{Key: "b", Values: []string{"1"}},
	}, rc.Params)
}

func TestFromRequest_Nil(t *testing.T) {
	rc := FromRequest(nil)
	assert.Equal(t, RequestContext{}, rc)
	assert.Equal(t, 1, rc.Page("page"))
	assert.Equal(t, "?page=3", rc.PageURL("page", 3))
	assert.Equal(t, RequestContext{}, FromURL(nil))
}

func TestFromRequest_SkipsMalformedPairs(t *testing.T) {
	req := httptest.NewRequest("GET", "/x", nil)
	req.URL.RawQuery = "a=%zz&=empty&&ok=1&flag"

	rc := FromRequest(req)

	assert.Equal(t, []Param{
		{Key: "ok", Values: []string{"1"}},
		{Key: "flag", Values: []string{""}},
	}, rc.Params)
}

func TestRequestContext_Page(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"absent", "/x?other=1", 1},
		{"valid", "/x?page=7", 7},
		{"zero", "/x?page=0", 1},
		{"negative", "/x?page=-4", 1},
		{"garbage", "/x?page=abc", 1},
		{"first value wins", "/x?page=3&page=9", 3},
		{"padded", "/x?page=+5+", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := FromRequest(httptest.NewRequest("GET", tt.query, nil))
			assert.Equal(t, tt.want, rc.Page("page"))
		})
	}
}

func TestRequestContext_PageURL(t *testing.T) {
	rc := FromRequest(httptest.NewRequest("GET", "/list?sort=name&page=4&q=a%26b", nil))

	assert.Equal(t, "/list?page=5&sort=name&q=a%26b", rc.PageURL("page", 5))
	assert.Equal(t, "/list?p=1&sort=name&page=4&q=a%26b", rc.PageURL("p", 1))
}

func TestRequestContext_Without(t *testing.T) {
	rc := RequestContext{Params: []Param{
		{Key: "page", Values: []string{"1"}},
		{Key: "q", Values: []string{"x"}},
	}}

	assert.Equal(t, []Param{{Key: "q", Values: []string{"x"}}}, rc.Without("page"))
	assert.Len(t, rc.Params, 2)
}
