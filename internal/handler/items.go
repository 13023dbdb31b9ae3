package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/DukeRupert/pageturn/internal/catalog"
	"github.com/DukeRupert/pageturn/internal/domain"
	"github.com/DukeRupert/pageturn/internal/metrics"
	"github.com/DukeRupert/pageturn/internal/paginate"
)

const (
	itemsPath = "/items"

	// viewParam selects the pager presentation on /items/pager.
	viewParam = "view"
)

// PaginationSettings configures the paginators built for each request.
type PaginationSettings struct {
	PerPage        int
	PageRange      int
	QueryKey       string
	LinkSeparator  string
	LinkClassOn    string
	LinkClassOff   string
	InputSeparator string
}

// ItemsHandler serves the paginated catalog listing.
type ItemsHandler struct {
	source    catalog.Source
	settings  PaginationSettings
	logger    *slog.Logger
	templates *template.Template
}

// NewItemsHandler creates the listing handler. The pagination settings are
// checked once here so a bad configuration fails at startup.
func NewItemsHandler(source catalog.Source, settings PaginationSettings, logger *slog.Logger) (*ItemsHandler, error) {
	if _, err := paginate.NewRange(0, settings.PerPage, settings.PageRange); err != nil {
		return nil, err
	}
	if settings.QueryKey == "" {
		settings.QueryKey = paginate.DefaultQueryKey
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, domain.Internal(err, "handler.NewItemsHandler", "parse templates")
	}

	return &ItemsHandler{
		source:    source,
		settings:  settings,
		logger:    logger,
		templates: tmpl,
	}, nil
}

// RegisterRoutes registers the listing routes on mux.
func (h *ItemsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /items", h.List)
	mux.HandleFunc("GET /items/pager", h.Pager)
	mux.HandleFunc("GET /items.json", h.JSON)
}

// itemsPage is the data of the items template.
type itemsPage struct {
	Heading string
	Total   int
	Items   []catalog.Item
	Window  paginate.Window
	Links   template.HTML
	Form    template.HTML
}

// List renders the full listing page: the items of the requested page, the
// page links and the page-jump form.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rc := paginate.FromRequest(r)

	total, err := h.source.Count(ctx)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	links, err := h.render(paginate.KindRange, total, rc)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	form, err := h.render(paginate.KindForm, total, rc)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	win := links.Window()
	items, err := h.listWindow(r, win)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	data := itemsPage{
		Heading: "catalog items",
		Total:   total,
		Items:   items,
		Window:  win,
		// Both fragments are escaped by the paginate renderers.
		Links: template.HTML(links.String()),
		Form:  template.HTML(form.String()),
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "items", data); err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Pager renders only the paginator as an htmx partial. ?view=form selects
// the page-jump form; anything else renders page links. Targets point at
// the listing page, not at the partial.
func (h *ItemsHandler) Pager(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.source.Count(ctx)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	rc := paginate.FromRequest(r)
	kind := paginate.KindRange
	if v, _ := rc.Get(viewParam); v == paginate.KindForm.String() {
		kind = paginate.KindForm
	}
	rc = paginate.RequestContext{Path: itemsPath, Params: rc.Without(viewParam)}

	p, err := h.render(kind, total, rc)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.Component().Render(ctx, w); err != nil {
		h.logger.Error("render pager", "error", err, "kind", kind.String())
	}
}

// itemsJSON is the body of GET /items.json.
type itemsJSON struct {
	Total  int             `json:"total"`
	Items  []catalog.Item  `json:"items"`
	Window paginate.Window `json:"window"`
	Links  []string        `json:"links"`
}

// JSON returns the requested page and its window as JSON.
func (h *ItemsHandler) JSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.source.Count(ctx)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	rc := paginate.FromRequest(r)
	rc.Path = itemsPath

	p, err := h.render(paginate.KindRange, total, rc)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	rng := p.(*paginate.Range)
	links := rng.LastLinkRange()

	win := rng.Window()
	items, err := h.listWindow(r, win)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if items == nil {
		items = []catalog.Item{}
	}
	if links == nil {
		links = []string{}
	}

	writeJSON(w, http.StatusOK, itemsJSON{
		Total:  total,
		Items:  items,
		Window: win,
		Links:  links,
	})
}

// listWindow fetches the item slice of win. An empty catalog has no items
// even though the fallback slice of an out-of-range window is non-empty.
func (h *ItemsHandler) listWindow(r *http.Request, win paginate.Window) ([]catalog.Item, error) {
	if win.NumberOfPages == 0 {
		metrics.ItemsListed(0)
		return nil, nil
	}

	items, err := h.source.List(r.Context(), win.ItemStart, win.Limit())
	if err != nil {
		return nil, err
	}
	metrics.ItemsListed(len(items))
	return items, nil
}

// render builds a paginator of kind for rc and renders the requested page.
func (h *ItemsHandler) render(kind paginate.Kind, total int, rc paginate.RequestContext) (paginate.Renderer, error) {
	p, err := paginate.New(kind, total, h.settings.PerPage, h.settings.PageRange)
	if err != nil {
		return nil, err
	}
	h.configure(p, rc)

	p.Render(p.RequestedPage())
	metrics.PaginationRendered(p.Kind(), p.Window())
	return p, nil
}

// configure applies the settings to p and binds the request snapshot.
func (h *ItemsHandler) configure(p paginate.Renderer, rc paginate.RequestContext) {
	p.SetLogger(h.logger)
	p.SetQueryKey(h.settings.QueryKey)

	switch v := p.(type) {
	case *paginate.Range:
		v.SetSeparator(h.settings.LinkSeparator)
		v.SetClassOn(h.settings.LinkClassOn)
		v.SetClassOff(h.settings.LinkClassOff)
	case *paginate.Form:
		if h.settings.InputSeparator != "" {
			v.SetInputSeparator(h.settings.InputSeparator)
		}
	}

	p.SetRequest(rc)
}
