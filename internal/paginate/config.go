package paginate

import (
	"github.com/DukeRupert/pageturn/internal/domain"
)

// Defaults used by the constructors.
const (
	DefaultPerPage  = 10
	DefaultRange    = 10
	DefaultQueryKey = "page"
)

// Config is everything the renderers need besides the window and the
// request snapshot.
type Config struct {
	Total    int
	PerPage  int
	Range    int
	QueryKey string
	Bookends Bookends

	// ClassOn decorates clickable links, ClassOff the inert current page.
	ClassOn  string
	ClassOff string
}

// NewConfig returns a validated Config with the default query key and
// bookends.
func NewConfig(total, perPage, rng int) (Config, error) {
	return newConfig("paginate.NewConfig", total, perPage, rng)
}

func newConfig(op string, total, perPage, rng int) (Config, error) {
	cfg := Config{
		Total:    total,
		PerPage:  perPage,
		Range:    rng,
		QueryKey: DefaultQueryKey,
		Bookends: DefaultBookends(),
	}
	if err := cfg.validate(op); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations Calculate cannot work with.
func (c Config) Validate() error {
	return c.validate("paginate.Config.Validate")
}

func (c Config) validate(op string) error {
	if c.Total < 0 {
		return domain.InvalidConfiguration(op, "total must not be negative, got %d", c.Total)
	}
	if c.PerPage < 1 {
		return domain.InvalidConfiguration(op, "per page must be at least 1, got %d", c.PerPage)
	}
	if c.Range < 1 {
		return domain.InvalidConfiguration(op, "range must be at least 1, got %d", c.Range)
	}
	if c.QueryKey == "" {
		return domain.InvalidConfiguration(op, "query key must not be empty")
	}
	return nil
}

// Window calculates the window for page.
func (c Config) Window(page int) Window {
	return Calculate(c.Total, c.PerPage, c.Range, page)
}
