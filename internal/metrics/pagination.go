package metrics

import "github.com/DukeRupert/pageturn/internal/paginate"

// PaginationRendered records one rendered paginator and the window it showed.
func PaginationRendered(kind paginate.Kind, w paginate.Window) {
	PaginationRendersTotal.WithLabelValues(kind.String()).Inc()
	PaginationWindowRules.WithLabelValues(w.Rule).Inc()
	if w.OutOfRange {
		PaginationOutOfRangeTotal.WithLabelValues(kind.String()).Inc()
	}
}

// ItemsListed records the size of a listed page.
func ItemsListed(n int) {
	CatalogItemsListed.Observe(float64(n))
}
