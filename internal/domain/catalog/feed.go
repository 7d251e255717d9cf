package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/retailnet/backend/internal/domain/shared"
)

// ErrMalformedFeed is returned when a supplier feed fails structural validation
var ErrMalformedFeed = shared.NewDomainError("MALFORMED_FEED", "Feed document is malformed")

// Feed is a supplier-submitted catalog document. The wire format is YAML
// (JSON payloads parse as well, YAML being a superset).
type Feed struct {
	Shop       string         `yaml:"shop"`
	Categories []FeedCategory `yaml:"categories"`
	Goods      []FeedGood     `yaml:"goods"`
}

// FeedCategory is a category declaration inside a feed
type FeedCategory struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// FeedGood is one sellable listing inside a feed. Required numeric fields are
// pointers so that an absent field is distinguishable from a zero value.
type FeedGood struct {
	ID         int64             `yaml:"id"`
	Category   *int64            `yaml:"category"`
	Name       string            `yaml:"name"`
	Model      string            `yaml:"model"`
	Price      *float64          `yaml:"price"`
	PriceRRC   *float64          `yaml:"price_rrc"`
	Quantity   *int              `yaml:"quantity"`
	Parameters map[string]string `yaml:"parameters"`
}

// ParseFeed decodes and structurally validates a feed document. Validation
// runs before any ingestion write, so a malformed feed never touches the store.
func ParseFeed(data []byte) (*Feed, error) {
	var feed Feed
	if err := yaml.Unmarshal(data, &feed); err != nil {
		return nil, shared.NewDomainError("MALFORMED_FEED", "Feed document is not valid YAML: "+err.Error())
	}
	if err := feed.Validate(); err != nil {
		return nil, err
	}
	return &feed, nil
}

// Validate checks the structural invariants of the feed
func (f *Feed) Validate() error {
	if f.Shop == "" {
		return shared.NewDomainError("MALFORMED_FEED", "Feed is missing the top-level shop field")
	}

	declared := make(map[int64]struct{}, len(f.Categories))
	for i, c := range f.Categories {
		if c.ID <= 0 {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Category at index %d is missing a positive id", i))
		}
		if c.Name == "" {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Category %d is missing a name", c.ID))
		}
		declared[c.ID] = struct{}{}
	}

	for i, g := range f.Goods {
		if g.ID <= 0 {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Good at index %d is missing a positive id", i))
		}
		if g.Name == "" {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Good %d is missing a name", g.ID))
		}
		if g.Category == nil {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Good %d is missing a category reference", g.ID))
		}
		if _, ok := declared[*g.Category]; !ok {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Good %d references undeclared category %d", g.ID, *g.Category))
		}
		if g.Price == nil {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Good %d is missing a price", g.ID))
		}
		if *g.Price < 0 {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Good %d has a negative price", g.ID))
		}
		if g.PriceRRC == nil {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Good %d is missing a price_rrc", g.ID))
		}
		if g.Quantity == nil {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Good %d is missing a quantity", g.ID))
		}
		if *g.Quantity < 0 {
			return shared.NewDomainError("MALFORMED_FEED", fmt.Sprintf("Good %d has a negative quantity", g.ID))
		}
	}

	return nil
}
