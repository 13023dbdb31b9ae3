// Package paginate computes pagination windows and renders them as page
// links or as a page-jump form.
//
// The calculation is a pure function of (total, perPage, range, page):
//
//	w := paginate.Calculate(127, 10, 10, 13)
//	// w.NumberOfPages == 13, w.Start == 11, w.End == 13, w.HasPrev == true
//
// Rendering is layered on top of a Window and an explicit RequestContext
// snapshot, so the same inputs always produce the same markup.
package paginate

// Window is the pagination state for one page: how many pages exist, which
// slice of the underlying items belongs to the page, and which page numbers
// are visible.
type Window struct {
	CurrentPage   int `json:"current_page"`
	NumberOfPages int `json:"number_of_pages"`

	// ItemStart and ItemEnd form the half-open slice [ItemStart, ItemEnd)
	// into the item collection.
	ItemStart int `json:"item_start"`
	ItemEnd   int `json:"item_end"`

	// Start and End are the first and last page numbers to display.
	Start int `json:"start"`
	End   int `json:"end"`

	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`

	// OutOfRange is set when the requested page is below 1 or past the last
	// item and the item slice fell back to the first page.
	OutOfRange bool `json:"out_of_range"`

	// Rule names the window rule that produced Start/End.
	Rule string `json:"rule"`
}

// Pages returns the visible page numbers in ascending order.
func (w Window) Pages() []int {
	if w.End < w.Start {
		return nil
	}
	pages := make([]int, 0, w.End-w.Start+1)
	for i := w.Start; i <= w.End; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Empty reports whether the window shows no page numbers at all.
func (w Window) Empty() bool {
	return w.End < w.Start
}

// Limit returns the number of items on the page.
func (w Window) Limit() int {
	return w.ItemEnd - w.ItemStart
}

// Calculate maps (total, perPage, rng, page) to a Window.
//
// perPage and rng must be at least 1; constructors enforce that before
// Calculate is reached. page is used as given: callers detect a bad page
// through OutOfRange and the window fields.
func Calculate(total, perPage, rng, page int) Window {
	remainder := total % perPage
	numberOfPages := total / perPage
	if remainder != 0 {
		numberOfPages++
	}

	w := Window{
		CurrentPage:   page,
		NumberOfPages: numberOfPages,
	}

	// Decided on page numbers so a huge page cannot overflow into a valid slice.
	switch {
	case page < 1 || page > numberOfPages:
		w.ItemStart = 0
		w.ItemEnd = perPage
		w.OutOfRange = true
	case page == numberOfPages && remainder != 0:
		w.ItemStart = (page - 1) * perPage
		w.ItemEnd = w.ItemStart + remainder
	default:
		w.ItemStart = (page - 1) * perPage
		w.ItemEnd = w.ItemStart + perPage
	}

	p := windowParams{page: page, pages: numberOfPages, rng: rng}
	for _, rule := range windowRules {
		if rule.match(p) {
			span := rule.apply(p)
			w.Start, w.End = span.start, span.end
			w.HasPrev, w.HasNext = span.prev, span.next
			w.Rule = rule.name
			break
		}
	}

	return w
}

type windowParams struct {
	page  int
	pages int
	rng   int
}

// fullBlocks returns the number of pages covered by complete blocks of rng pages.
func (p windowParams) fullBlocks() int {
	return p.rng * (p.pages / p.rng)
}

type windowSpan struct {
	start, end int
	prev, next bool
}

type windowRule struct {
	name  string
	match func(windowParams) bool
	apply func(windowParams) windowSpan
}

// Window rule names.
const (
	RuleFirstBlockAll   = "first-block-all"
	RuleFirstBlockMore  = "first-block-more"
	RuleTrailingPartial = "trailing-partial"
	RuleTrailingFull    = "trailing-full"
	RuleMiddle          = "middle"
)

// windowRules is evaluated in order and the first match wins. Pages in the
// first block never get a previous link and pages in the last block never
// get a next link, whether or not rng divides the page count.
var windowRules = []windowRule{
	{
		name: RuleFirstBlockAll,
		match: func(p windowParams) bool {
			return p.page <= p.rng && p.pages <= p.rng
		},
		apply: func(p windowParams) windowSpan {
			return windowSpan{start: 1, end: p.pages}
		},
	},
	{
		name: RuleFirstBlockMore,
		match: func(p windowParams) bool {
			return p.page <= p.rng && p.pages > p.rng
		},
		apply: func(p windowParams) windowSpan {
			return windowSpan{start: 1, end: p.rng, next: true}
		},
	},
	{
		name: RuleTrailingPartial,
		match: func(p windowParams) bool {
			return p.page > p.fullBlocks()
		},
		apply: func(p windowParams) windowSpan {
			return windowSpan{start: p.fullBlocks() + 1, end: p.pages, prev: true}
		},
	},
	{
		name: RuleTrailingFull,
		match: func(p windowParams) bool {
			return p.pages%p.rng == 0 && p.page > p.rng*(p.pages/p.rng-1)
		},
		apply: func(p windowParams) windowSpan {
			return windowSpan{start: p.rng*(p.pages/p.rng-1) + 1, end: p.pages, prev: true}
		},
	},
	{
		name:  RuleMiddle,
		match: func(windowParams) bool { return true },
		apply: func(p windowParams) windowSpan {
			pos := p.page % p.rng
			if pos == 0 {
				pos = p.rng
			}
			start := p.page - (pos - 1)
			return windowSpan{start: start, end: start + p.rng - 1, prev: true, next: true}
		},
	},
}
