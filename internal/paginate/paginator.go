package paginate

import (
	"fmt"
	"log/slog"

	"github.com/a-h/templ"
)

// paginator holds the state shared by Range and Form.
type paginator struct {
	cfg         Config
	request     RequestContext
	currentPage int
	bound       bool
	window      Window
	logger      *slog.Logger

	// version increases on every change that can alter rendered output.
	version int
}

func newPaginator(op string, total, perPage, rng int) (paginator, error) {
	cfg, err := newConfig(op, total, perPage, rng)
	if err != nil {
		return paginator{}, err
	}

	p := paginator{
		cfg:         cfg,
		currentPage: 1,
		logger:      slog.New(slog.DiscardHandler),
	}
	// The page count is known from the start; no uncalculated state exists.
	p.window = cfg.Window(1)
	return p, nil
}

// SetLogger sets the logger used to report out-of-range pages.
func (p *paginator) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p.logger = logger
}

// SetQueryKey sets the query parameter that carries the page number. An
// empty key is ignored. With a bound request the current page is re-read
// under the new key.
func (p *paginator) SetQueryKey(key string) {
	if key == "" {
		return
	}
	p.cfg.QueryKey = key
	if p.bound {
		p.currentPage = p.request.Page(key)
	}
	p.version++
}

// SetBookends applies a partial bookend update; see Bookends.Merge.
func (p *paginator) SetBookends(update map[BookendKind]*string) {
	p.cfg.Bookends = p.cfg.Bookends.Merge(update)
	p.version++
}

// SetRequest binds the request snapshot used for link targets and hidden
// fields. The current page becomes the page requested in the snapshot.
func (p *paginator) SetRequest(rc RequestContext) {
	p.request = rc
	p.bound = true
	p.currentPage = rc.Page(p.cfg.QueryKey)
	p.version++
}

// RequestedPage returns the page asked for by the bound request snapshot.
func (p *paginator) RequestedPage() int {
	return p.request.Page(p.cfg.QueryKey)
}

func (p *paginator) Total() int {
	return p.cfg.Total
}

func (p *paginator) PerPage() int {
	return p.cfg.PerPage
}

func (p *paginator) Range() int {
	return p.cfg.Range
}

func (p *paginator) QueryKey() string {
	return p.cfg.QueryKey
}

func (p *paginator) CurrentPage() int {
	return p.currentPage
}

func (p *paginator) NumberOfPages() int {
	return p.window.NumberOfPages
}

// Request returns the bound request snapshot.
func (p *paginator) Request() RequestContext {
	return p.request
}

// Window returns the most recently calculated window.
func (p *paginator) Window() Window {
	return p.window
}

// Config returns a copy of the configuration.
func (p *paginator) Config() Config {
	cfg := p.cfg
	cfg.Bookends = p.cfg.Bookends.Clone()
	return cfg
}

// Bookend returns the label for kind and whether it is enabled.
func (p *paginator) Bookend(kind BookendKind) (string, bool) {
	return p.cfg.Bookends.Label(kind)
}

// Bookends returns a copy of the enabled bookend labels.
func (p *paginator) Bookends() Bookends {
	return p.cfg.Bookends.Clone()
}

func (p *paginator) calculate(page int) Window {
	p.currentPage = page
	p.window = p.cfg.Window(page)
	if p.window.OutOfRange {
		p.logger.Debug("page out of range",
			"page", page,
			"number_of_pages", p.window.NumberOfPages,
			"total", p.cfg.Total,
		)
	}
	return p.window
}

// Kind selects a presentation for New.
type Kind int

const (
	KindRange Kind = iota
	KindForm
)

func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindForm:
		return "form"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Renderer is the behaviour Range and Form have in common.
type Renderer interface {
	fmt.Stringer
	SetLogger(*slog.Logger)
	SetQueryKey(string)
	SetBookends(map[BookendKind]*string)
	SetRequest(RequestContext)
	RequestedPage() int
	CurrentPage() int
	NumberOfPages() int
	Window() Window
	Kind() Kind
	// Render calculates page and returns the complete markup.
	Render(page int) string
	// Component renders the last calculated page as a templ component.
	Component() templ.Component
}

var (
	_ Renderer = (*Range)(nil)
	_ Renderer = (*Form)(nil)
)

// New creates a paginator of the given kind. rng is ignored for KindForm,
// which always uses a range of 1.
func New(kind Kind, total, perPage, rng int) (Renderer, error) {
	switch kind {
	case KindRange:
		r, err := NewRange(total, perPage, rng)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindForm:
		f, err := NewForm(total, perPage)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("paginate.New: unknown kind %s", kind)
	}
}
