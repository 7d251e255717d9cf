package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/retailnet/backend/internal/domain/shared"
)

func TestStateTransitions(t *testing.T) {
	t.Run("basket can only move to new", func(t *testing.T) {
		assert.True(t, StateBasket.CanTransitionTo(StateNew))
		assert.False(t, StateBasket.CanTransitionTo(StateConfirmed))
		assert.False(t, StateBasket.CanTransitionTo(StateCanceled))
	})

	t.Run("fulfilment chain", func(t *testing.T) {
		assert.True(t, StateNew.CanTransitionTo(StateConfirmed))
		assert.True(t, StateNew.CanTransitionTo(StateCanceled))
		assert.True(t, StateConfirmed.CanTransitionTo(StateAssembled))
		assert.True(t, StateAssembled.CanTransitionTo(StateSent))
		assert.True(t, StateSent.CanTransitionTo(StateDelivered))
	})

	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, StateDelivered.CanTransitionTo(StateNew))
		assert.False(t, StateCanceled.CanTransitionTo(StateNew))
	})

	t.Run("no backwards moves", func(t *testing.T) {
		assert.False(t, StateNew.CanTransitionTo(StateBasket))
		assert.False(t, StateSent.CanTransitionTo(StateAssembled))
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, StateBasket.IsValid())
		assert.True(t, StateDelivered.IsValid())
		assert.False(t, State("shipped").IsValid())
	})
}

func TestNewBasket(t *testing.T) {
	t.Run("creates empty basket", func(t *testing.T) {
		userID := uuid.New()
		basket, err := NewBasket(userID)

		assert.NoError(t, err)
		assert.Equal(t, userID, basket.UserID)
		assert.Equal(t, StateBasket, basket.State)
		assert.True(t, basket.IsBasket())
		assert.Equal(t, 0, basket.ItemCount())
	})

	t.Run("rejects empty user", func(t *testing.T) {
		_, err := NewBasket(uuid.Nil)
		assert.Error(t, err)
	})
}

func TestOrderAddItem(t *testing.T) {
	t.Run("adds line item", func(t *testing.T) {
		basket, _ := NewBasket(uuid.New())
		listingID := uuid.New()

		item, err := basket.AddItem(listingID, 3)

		assert.NoError(t, err)
		assert.Equal(t, listingID, item.ProductInfoID)
		assert.Equal(t, 3, item.Quantity)
		assert.Equal(t, 1, basket.ItemCount())
	})

	t.Run("rejects duplicate listing", func(t *testing.T) {
		basket, _ := NewBasket(uuid.New())
		listingID := uuid.New()

		_, err := basket.AddItem(listingID, 1)
		assert.NoError(t, err)

		_, err = basket.AddItem(listingID, 5)
		assert.Error(t, err)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_ITEM", domainErr.Code)
		assert.Equal(t, 1, basket.ItemCount())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		basket, _ := NewBasket(uuid.New())

		_, err := basket.AddItem(uuid.New(), 0)
		assert.Error(t, err)

		_, err = basket.AddItem(uuid.New(), -2)
		assert.Error(t, err)
		assert.Equal(t, 0, basket.ItemCount())
	})

	t.Run("rejects adds after submission", func(t *testing.T) {
		basket, _ := NewBasket(uuid.New())
		_, _ = basket.AddItem(uuid.New(), 1)
		assert.NoError(t, basket.Submit())

		_, err := basket.AddItem(uuid.New(), 1)
		assert.Error(t, err)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})
}

func TestOrderSubmit(t *testing.T) {
	t.Run("flips basket to new", func(t *testing.T) {
		basket, _ := NewBasket(uuid.New())
		versionBefore := basket.Version

		err := basket.Submit()

		assert.NoError(t, err)
		assert.Equal(t, StateNew, basket.State)
		assert.False(t, basket.IsBasket())
		assert.Equal(t, versionBefore+1, basket.Version)
	})

	t.Run("second submit fails", func(t *testing.T) {
		basket, _ := NewBasket(uuid.New())
		assert.NoError(t, basket.Submit())

		err := basket.Submit()
		assert.Error(t, err)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})
}

func TestOrderItemUpdateQuantity(t *testing.T) {
	item, err := NewOrderItem(uuid.New(), uuid.New(), 2)
	assert.NoError(t, err)

	assert.NoError(t, item.UpdateQuantity(7))
	assert.Equal(t, 7, item.Quantity)

	assert.Error(t, item.UpdateQuantity(0))
	assert.Error(t, item.UpdateQuantity(-1))
	assert.Equal(t, 7, item.Quantity)
}

func TestItemByListing(t *testing.T) {
	basket, _ := NewBasket(uuid.New())
	listingID := uuid.New()
	_, _ = basket.AddItem(listingID, 2)

	found := basket.ItemByListing(listingID)
	assert.NotNil(t, found)
	assert.Equal(t, 2, found.Quantity)

	assert.Nil(t, basket.ItemByListing(uuid.New()))
}
