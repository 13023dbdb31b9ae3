package paginate

import (
	"html"
	"net/url"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, total, perPage, rng int) Config {
	t.Helper()
	cfg, err := NewConfig(total, perPage, rng)
	require.NoError(t, err)
	return cfg
}

func testRequest(t *testing.T, raw string) RequestContext {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return FromURL(u)
}

var hrefPattern = regexp.MustCompile(`href="([^"]*)"`)

// linkTargets extracts the target page of every anchor and the label of the
// current-page span.
func linkTargets(t *testing.T, fragments []string, key string) (targets []int, current []int) {
	t.Helper()
	for _, f := range fragments {
		m := hrefPattern.FindStringSubmatch(f)
		if m == nil {
			n, err := strconv.Atoi(regexp.MustCompile(`>(\d+)<`).FindStringSubmatch(f)[1])
			require.NoError(t, err)
			current = append(current, n)
			continue
		}
		u, err := url.Parse(html.UnescapeString(m[1]))
		require.NoError(t, err)
		n, err := strconv.Atoi(u.Query().Get(key))
		require.NoError(t, err)
		targets = append(targets, n)
	}
	return targets, current
}

func TestRenderLinks_MiddleWindowWithBookends(t *testing.T) {
	cfg := testConfig(t, 500, 10, 10)
	rc := testRequest(t, "/items?page=2&var=123")
	w := cfg.Window(25)

	links := RenderLinks(w, cfg, rc)
	require.Len(t, links, 14)

	assert.Equal(t, LinkStart, links[0].Kind)
	assert.Equal(t, 1, links[0].Page)
	assert.Equal(t, "&laquo;", links[0].Label)
	assert.Equal(t, LinkPrevious, links[1].Kind)
	assert.Equal(t, 24, links[1].Page)
	assert.Equal(t, LinkNext, links[12].Kind)
	assert.Equal(t, 26, links[12].Page)
	assert.Equal(t, LinkEnd, links[13].Kind)
	assert.Equal(t, 50, links[13].Page)

	for i, l := range links[2:12] {
		assert.Equal(t, 21+i, l.Page)
	}
	assert.True(t, links[6].Current())
	assert.Equal(t, "<span>25</span>", links[6].String())
	assert.Equal(t, `<a href="/items?page=21&amp;var=123">21</a>`, links[2].String())
}

func TestRenderLinks_RoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		total, page int
		bookends    map[BookendKind]*string
		wantTargets []int
	}{
		{
			name:        "first block",
			total:       127,
			page:        3,
			wantTargets: []int{1, 2, 4, 5, 6, 7, 8, 9, 10, 4, 13},
		},
		{
			name:        "trailing block",
			total:       127,
			page:        13,
			wantTargets: []int{1, 12, 11, 12},
		},
		{
			name:        "trailing block without start bookend",
			total:       127,
			page:        12,
			bookends:    map[BookendKind]*string{Start: nil},
			wantTargets: []int{11, 11, 13},
		},
		{
			name:        "middle block without next and end",
			total:       500,
			page:        15,
			bookends:    map[BookendKind]*string{Next: nil, End: nil},
			wantTargets: []int{1, 14, 11, 12, 13, 14, 16, 17, 18, 19, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.total, 10, 10)
			cfg.Bookends = cfg.Bookends.Merge(tt.bookends)
			w := cfg.Window(tt.page)

			fragments := LinkStrings(RenderLinks(w, cfg, testRequest(t, "/list?sort=name")))
			targets, current := linkTargets(t, fragments, "page")

			assert.Equal(t, tt.wantTargets, targets)
			assert.Equal(t, []int{tt.page}, current)
		})
	}
}

func TestRenderLinks_PagesAscending(t *testing.T) {
	cfg := testConfig(t, 500, 10, 10)
	cfg.Bookends = Bookends{}
	w := cfg.Window(37)

	var pages []int
	for _, l := range RenderLinks(w, cfg, RequestContext{}) {
		pages = append(pages, l.Page)
	}
	assert.Equal(t, w.Pages(), pages)
}

func TestRenderLinks_PreservesQueryAndOverridesKey(t *testing.T) {
	cfg := testConfig(t, 127, 10, 10)
	cfg.QueryKey = "p"
	rc := testRequest(t, "/search?q=go+lang&p=9&tag=a&tag=b")

	links := RenderLinks(cfg.Window(1), cfg, rc)
	require.NotEmpty(t, links)

	assert.Equal(t, "/search?p=2&q=go+lang&tag=a&tag=b", links[1].Href)
}

func TestRenderLinks_EmptyWindow(t *testing.T) {
	cfg := testConfig(t, 0, 10, 10)
	assert.Empty(t, RenderLinks(cfg.Window(1), cfg, RequestContext{}))
}

func TestRenderLinks_MissingRequestContext(t *testing.T) {
	cfg := testConfig(t, 30, 10, 10)

	links := RenderLinks(cfg.Window(1), cfg, RequestContext{})
	require.Len(t, links, 3)
	assert.Equal(t, "?page=2", links[1].Href)
}

func TestRenderLinks_Classes(t *testing.T) {
	cfg := testConfig(t, 30, 10, 10)
	cfg.ClassOn = "link-on"
	cfg.ClassOff = "link-off"

	fragments := LinkStrings(RenderLinks(cfg.Window(2), cfg, RequestContext{Path: "/x"}))
	assert.Equal(t, []string{
		`<a class="link-on" href="/x?page=1">1</a>`,
		`<span class="link-off">2</span>`,
		`<a class="link-on" href="/x?page=3">3</a>`,
	}, fragments)
}

func TestWrapLinks(t *testing.T) {
	cfg := testConfig(t, 30, 10, 10)
	links := RenderLinks(cfg.Window(2), cfg, RequestContext{Path: "/x"})

	wrapped := WrapLinks(links, "li", "active", "")
	assert.Equal(t, []string{
		`<li><a href="/x?page=1">1</a></li>`,
		`<li class="active"><span>2</span></li>`,
		`<li><a href="/x?page=3">3</a></li>`,
	}, wrapped)

	// The input is not touched, so wrapping again is stable.
	assert.Equal(t, wrapped, WrapLinks(links, "li", "active", ""))
}

func TestLinkKind_String(t *testing.T) {
	assert.Equal(t, "current", LinkCurrent.String())
	assert.Equal(t, "end", LinkEnd.String())
	assert.Equal(t, "unknown", LinkKind(42).String())
}
