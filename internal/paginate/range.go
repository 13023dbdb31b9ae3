package paginate

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// Range renders a window of page links with optional bookends.
type Range struct {
	paginator

	separator string

	links        []Link
	linksVersion int
	computed     bool
}

// NewRange creates a link paginator. perPage and rng must be at least 1.
func NewRange(total, perPage, rng int) (*Range, error) {
	p, err := newPaginator("paginate.NewRange", total, perPage, rng)
	if err != nil {
		return nil, err
	}
	return &Range{paginator: p, separator: " "}, nil
}

// NewRangeDefault creates a link paginator with 10 items per page and 10
// visible pages.
func NewRangeDefault(total int) (*Range, error) {
	return NewRange(total, DefaultPerPage, DefaultRange)
}

// Kind returns KindRange.
func (r *Range) Kind() Kind {
	return KindRange
}

// SetSeparator sets the string placed between fragments by String.
func (r *Range) SetSeparator(sep string) {
	r.separator = sep
}

// Separator returns the fragment separator.
func (r *Range) Separator() string {
	return r.separator
}

// SetClassOn sets the class of clickable links. Several class lists may be
// given; conflicting utility classes resolve in favour of later ones.
func (r *Range) SetClassOn(classes ...string) {
	r.cfg.ClassOn = twmerge.Merge(classes...)
	r.version++
}

// SetClassOff sets the class of the current-page marker, merged like SetClassOn.
func (r *Range) SetClassOff(classes ...string) {
	r.cfg.ClassOff = twmerge.Merge(classes...)
	r.version++
}

// ClassOn returns the class of clickable links.
func (r *Range) ClassOn() string {
	return r.cfg.ClassOn
}

// ClassOff returns the class of the current-page marker.
func (r *Range) ClassOff() string {
	return r.cfg.ClassOff
}

// Links calculates page and returns the structured fragments.
func (r *Range) Links(page int) []Link {
	w := r.calculate(page)
	r.links = RenderLinks(w, r.cfg, r.request)
	r.linksVersion = r.version
	r.computed = true
	return r.links
}

// LinkRange calculates page and returns the rendered fragments.
func (r *Range) LinkRange(page int) []string {
	return LinkStrings(r.Links(page))
}

// RequestedLinkRange renders the page asked for by the bound request.
func (r *Range) RequestedLinkRange() []string {
	return r.LinkRange(r.RequestedPage())
}

// LastLinkRange returns the rendered fragments of the last computed page
// without calculating it again.
func (r *Range) LastLinkRange() []string {
	return LinkStrings(r.lastLinks())
}

// lastLinks returns the last computed fragments, recomputing them for the
// current page when none exist or the configuration changed since.
func (r *Range) lastLinks() []Link {
	if !r.computed || r.linksVersion != r.version {
		return r.Links(r.currentPage)
	}
	return r.links
}

// WrapLinks wraps the last computed fragments in tag. classOn decorates the
// wrapper of the current page and classOff the wrappers of links. Calling it
// again with the same arguments returns the same strings.
func (r *Range) WrapLinks(tag, classOn, classOff string) []string {
	return WrapLinks(r.lastLinks(), tag, classOn, classOff)
}

// Render calculates page and joins the fragments with the separator.
func (r *Range) Render(page int) string {
	return strings.Join(r.LinkRange(page), r.separator)
}

// String joins the last computed fragments with the separator.
func (r *Range) String() string {
	return strings.Join(LinkStrings(r.lastLinks()), r.separator)
}

// Component returns the last computed fragments as a templ component.
func (r *Range) Component() templ.Component {
	return LinksComponent(r.lastLinks(), r.separator)
}
