package services

import (
	"testing"

	"anantha_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeCharge(t *testing.T) {
	guntur := &models.Location{Name: "Guntur", State: "Andhra Pradesh", Charge: 49, FreeDeliveryThreshold: 1000, Enabled: true}
	hyderabad := &models.Location{Name: "Hyderabad", State: "Telangana", Charge: 149, FreeDeliveryThreshold: 2000, Enabled: true}

	t.Run("Sous le seuil", func(t *testing.T) {
		assert.Equal(t, 49.0, ComputeCharge(guntur, 500))
		assert.Equal(t, 149.0, ComputeCharge(hyderabad, 1500))
	})

	t.Run("Au-dessus du seuil", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeCharge(guntur, 1200))
		assert.Equal(t, 0.0, ComputeCharge(hyderabad, 2500))
	})

	t.Run("Exactement au seuil", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeCharge(guntur, 1000))
	})

	t.Run("Sous-total zéro", func(t *testing.T) {
		assert.Equal(t, 49.0, ComputeCharge(guntur, 0))
	})

	t.Run("Seuil zéro livre toujours gratuitement", func(t *testing.T) {
		free := &models.Location{Name: "Tenali", Charge: 49, FreeDeliveryThreshold: 0}
		assert.Equal(t, 0.0, ComputeCharge(free, 10))
	})
}

func TestDefaultCustomCityCharge(t *testing.T) {
	assert.Equal(t, 99.0, DefaultCustomCityCharge)
}
