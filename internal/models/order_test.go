package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled} {
		assert.True(t, IsValidOrderStatus(s), s)
	}
	assert.False(t, IsValidOrderStatus("expédiée"))
	assert.False(t, IsValidOrderStatus(""))
	assert.False(t, IsValidOrderStatus("PENDING"))
}

func TestCanTransition(t *testing.T) {
	t.Run("Progression normale", func(t *testing.T) {
		assert.True(t, CanTransition(OrderPending, OrderConfirmed))
		assert.True(t, CanTransition(OrderConfirmed, OrderProcessing))
		assert.True(t, CanTransition(OrderProcessing, OrderShipped))
		assert.True(t, CanTransition(OrderShipped, OrderDelivered))
	})

	t.Run("Sauts en avant autorisés", func(t *testing.T) {
		assert.True(t, CanTransition(OrderPending, OrderShipped))
		assert.True(t, CanTransition(OrderConfirmed, OrderDelivered))
	})

	t.Run("Jamais de régression", func(t *testing.T) {
		assert.False(t, CanTransition(OrderShipped, OrderPending))
		assert.False(t, CanTransition(OrderDelivered, OrderShipped))
		assert.False(t, CanTransition(OrderConfirmed, OrderPending))
	})

	t.Run("Pas de transition vers soi-même", func(t *testing.T) {
		assert.False(t, CanTransition(OrderConfirmed, OrderConfirmed))
	})

	t.Run("Annulation depuis tout état non terminal", func(t *testing.T) {
		for _, from := range []string{OrderPending, OrderConfirmed, OrderProcessing, OrderShipped} {
			assert.True(t, CanTransition(from, OrderCancelled), from)
		}
	})

	t.Run("États terminaux figés", func(t *testing.T) {
		assert.False(t, CanTransition(OrderCancelled, OrderConfirmed))
		assert.False(t, CanTransition(OrderCancelled, OrderCancelled))
		assert.False(t, CanTransition(OrderDelivered, OrderCancelled))
	})

	t.Run("Statuts inconnus refusés", func(t *testing.T) {
		assert.False(t, CanTransition("inconnu", OrderConfirmed))
		assert.False(t, CanTransition(OrderPending, "inconnu"))
	})
}
