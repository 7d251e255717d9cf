package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailnet/backend/internal/domain/shared"
)

const validFeed = `
shop: Svyaznoy
categories:
  - id: 224
    name: Smartphones
  - id: 15
    name: Accessories
goods:
  - id: 4216292
    category: 224
    model: apple/iphone/xs-max
    name: Smartphone Apple iPhone XS Max 512GB (golden)
    price: 110000
    price_rrc: 116990
    quantity: 14
    parameters:
      "Screen Size (inches)": "6.5"
      "Color": "golden"
  - id: 4216313
    category: 15
    model: leather-case
    name: Leather case iPhone XS Max
    price: 1100
    price_rrc: 1490
    quantity: 0
`

func TestParseFeed(t *testing.T) {
	t.Run("parses a valid document", func(t *testing.T) {
		feed, err := ParseFeed([]byte(validFeed))

		require.NoError(t, err)
		assert.Equal(t, "Svyaznoy", feed.Shop)
		assert.Len(t, feed.Categories, 2)
		require.Len(t, feed.Goods, 2)

		good := feed.Goods[0]
		assert.Equal(t, int64(4216292), good.ID)
		assert.Equal(t, int64(224), *good.Category)
		assert.Equal(t, float64(110000), *good.Price)
		assert.Equal(t, 14, *good.Quantity)
		assert.Equal(t, "golden", good.Parameters["Color"])

		// zero quantity is a present value, not an absent field
		assert.Equal(t, 0, *feed.Goods[1].Quantity)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := ParseFeed([]byte("shop: [unclosed"))
		assertMalformed(t, err)
	})

	t.Run("rejects missing shop", func(t *testing.T) {
		_, err := ParseFeed([]byte("categories: []\ngoods: []"))
		assertMalformed(t, err)
	})
}

func TestFeedValidate(t *testing.T) {
	base := func() *Feed {
		feed, err := ParseFeed([]byte(validFeed))
		if err != nil {
			t.Fatal(err)
		}
		return feed
	}

	t.Run("category without name", func(t *testing.T) {
		feed := base()
		feed.Categories[0].Name = ""
		assertMalformed(t, feed.Validate())
	})

	t.Run("category with non-positive id", func(t *testing.T) {
		feed := base()
		feed.Categories[0].ID = 0
		assertMalformed(t, feed.Validate())
	})

	t.Run("good referencing undeclared category", func(t *testing.T) {
		feed := base()
		unknown := int64(999)
		feed.Goods[0].Category = &unknown
		assertMalformed(t, feed.Validate())
	})

	t.Run("good without category", func(t *testing.T) {
		feed := base()
		feed.Goods[0].Category = nil
		assertMalformed(t, feed.Validate())
	})

	t.Run("good without name", func(t *testing.T) {
		feed := base()
		feed.Goods[0].Name = ""
		assertMalformed(t, feed.Validate())
	})

	t.Run("good without price", func(t *testing.T) {
		feed := base()
		feed.Goods[0].Price = nil
		assertMalformed(t, feed.Validate())
	})

	t.Run("good with negative price", func(t *testing.T) {
		feed := base()
		negative := -1.0
		feed.Goods[0].Price = &negative
		assertMalformed(t, feed.Validate())
	})

	t.Run("good without quantity", func(t *testing.T) {
		feed := base()
		feed.Goods[0].Quantity = nil
		assertMalformed(t, feed.Validate())
	})

	t.Run("good with negative quantity", func(t *testing.T) {
		feed := base()
		negative := -3
		feed.Goods[0].Quantity = &negative
		assertMalformed(t, feed.Validate())
	})

	t.Run("empty goods list is valid", func(t *testing.T) {
		feed := base()
		feed.Goods = nil
		assert.NoError(t, feed.Validate())
	})
}

func assertMalformed(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MALFORMED_FEED", domainErr.Code)
}
