// Package services contains stateless domain services for the inventory
// bounded context. These are the pure validation rules checked before any
// mutation is accepted; they operate only on domain types and never panic
// for expected bad input.
package services

import (
	"math"
	"strings"

	"github.com/ghuser/stockroom/services/inventory/domain"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

const (
	minNameLength   = 2
	minReasonLength = 5
)

// ValidateDraft checks every field constraint on an item draft and returns a
// *domain.ValidationError naming all violated fields, or nil when valid.
//
// Rules:
//   - name: trimmed length >= 2
//   - category: member of the closed category set
//   - quantity: finite, >= 0
//   - unit: non-empty after trimming
//   - reorderPoint: finite, >= 0
//   - supplier: optional, any string
func ValidateDraft(draft models.Draft) error {
	v := domain.NewValidationError()

	if len(strings.TrimSpace(draft.Name)) < minNameLength {
		v.Add("name", "must be at least 2 characters")
	}
	if !draft.Category.Valid() {
		v.Add("category", "must be one of: ingredient, packaging, beverage, other")
	}
	if !finite(draft.Quantity) {
		v.Add("quantity", "must be a finite number")
	} else if draft.Quantity < 0 {
		v.Add("quantity", "must be zero or greater")
	}
	if strings.TrimSpace(draft.Unit) == "" {
		v.Add("unit", "must not be empty")
	}
	if !finite(draft.ReorderPoint) {
		v.Add("reorderPoint", "must be a finite number")
	} else if draft.ReorderPoint < 0 {
		v.Add("reorderPoint", "must be zero or greater")
	}

	return v.OrNil()
}

// ValidateItem re-checks a full Item after a patch merge. The constraints are
// identical to ValidateDraft; ID and LastUpdated are store-owned and not
// validated here.
func ValidateItem(item models.Item) error {
	return ValidateDraft(models.Draft{
		Name:         item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		ReorderPoint: item.ReorderPoint,
		Supplier:     item.Supplier,
	})
}

// ValidateAdjustment checks the constraints on a stock adjustment request:
// a known direction, amount > 0, and a trimmed reason of at least 5
// characters. Returns nil or a *domain.ValidationError listing every
// violated field.
func ValidateAdjustment(typ models.AdjustmentType, amount float64, reason string) error {
	v := domain.NewValidationError()

	if !typ.Valid() {
		v.Add("type", "must be add or remove")
	}
	if !finite(amount) || amount <= 0 {
		v.Add("amount", "must be greater than zero")
	}
	if len(strings.TrimSpace(reason)) < minReasonLength {
		v.Add("reason", "must be at least 5 characters")
	}

	return v.OrNil()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
