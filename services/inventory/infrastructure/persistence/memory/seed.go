package memory

import (
	"time"

	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// SeedItems returns the demo fixture set the store is booted with. Tomato
// Sauce is deliberately at 8 against a reorder point of 10 so the low-stock
// view has something to show out of the box.
func SeedItems() []models.Item {
	seeded := time.Now().UTC().Add(-4 * time.Hour)
	return []models.Item{
		{
			ID:           "seed-mozzarella",
			Name:         "Mozzarella Cheese",
			Category:     models.CategoryIngredient,
			Quantity:     45,
			Unit:         "lbs",
			ReorderPoint: 20,
			Supplier:     "Dairy Fresh Co.",
			LastUpdated:  seeded,
		},
		{
			ID:           "seed-pizza-boxes",
			Name:         "Pizza Boxes (Large)",
			Category:     models.CategoryPackaging,
			Quantity:     150,
			Unit:         "units",
			ReorderPoint: 50,
			Supplier:     "PackPro Inc.",
			LastUpdated:  seeded,
		},
		{
			ID:           "seed-tomato-sauce",
			Name:         "Tomato Sauce",
			Category:     models.CategoryIngredient,
			Quantity:     8,
			Unit:         "gallons",
			ReorderPoint: 10,
			Supplier:     "Fresh Tomato Inc.",
			LastUpdated:  seeded,
		},
	}
}
