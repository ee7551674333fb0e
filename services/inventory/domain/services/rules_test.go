package services

import (
	"errors"
	"math"
	"testing"

	"github.com/ghuser/stockroom/services/inventory/domain"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

func validDraft() models.Draft {
	return models.Draft{
		Name:         "Flour",
		Category:     models.CategoryIngredient,
		Quantity:     10,
		Unit:         "lbs",
		ReorderPoint: 5,
	}
}

func violatedFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return ve.Fields
}

func TestValidateDraft(t *testing.T) {
	t.Run("valid draft passes", func(t *testing.T) {
		if err := ValidateDraft(validDraft()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("supplier is optional", func(t *testing.T) {
		d := validDraft()
		d.Supplier = ""
		if err := ValidateDraft(d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*models.Draft)
		field  string
	}{
		{"name too short", func(d *models.Draft) { d.Name = "F" }, "name"},
		{"name only whitespace", func(d *models.Draft) { d.Name = "   " }, "name"},
		{"unknown category", func(d *models.Draft) { d.Category = "dairy" }, "category"},
		{"negative quantity", func(d *models.Draft) { d.Quantity = -1 }, "quantity"},
		{"NaN quantity", func(d *models.Draft) { d.Quantity = math.NaN() }, "quantity"},
		{"empty unit", func(d *models.Draft) { d.Unit = " " }, "unit"},
		{"negative reorder point", func(d *models.Draft) { d.ReorderPoint = -0.5 }, "reorderPoint"},
		{"infinite reorder point", func(d *models.Draft) { d.ReorderPoint = math.Inf(1) }, "reorderPoint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := ValidateDraft(d)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation match, got %v", err)
			}
			if _, ok := violatedFields(t, err)[tt.field]; !ok {
				t.Fatalf("expected violation on %q, got %v", tt.field, err)
			}
		})
	}

	t.Run("zero quantity and zero reorder point are allowed", func(t *testing.T) {
		d := validDraft()
		d.Quantity = 0
		d.ReorderPoint = 0
		if err := ValidateDraft(d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("all violations reported together", func(t *testing.T) {
		err := ValidateDraft(models.Draft{Quantity: -1})
		fields := violatedFields(t, err)
		for _, f := range []string{"name", "category", "quantity", "unit"} {
			if _, ok := fields[f]; !ok {
				t.Errorf("expected violation on %q", f)
			}
		}
	})
}

func TestValidateAdjustment(t *testing.T) {
	t.Run("valid adjustment passes", func(t *testing.T) {
		if err := ValidateAdjustment(models.AdjustmentRemove, 3, "used in dough"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		typ    models.AdjustmentType
		amount float64
		reason string
		field  string
	}{
		{"unknown type", "transfer", 1, "counted stock", "type"},
		{"zero amount", models.AdjustmentAdd, 0, "counted stock", "amount"},
		{"negative amount", models.AdjustmentRemove, -2, "counted stock", "amount"},
		{"NaN amount", models.AdjustmentAdd, math.NaN(), "counted stock", "amount"},
		{"reason too short", models.AdjustmentRemove, 1, "hi", "reason"},
		{"reason whitespace-padded below minimum", models.AdjustmentRemove, 1, "  hey  ", "reason"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdjustment(tt.typ, tt.amount, tt.reason)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := violatedFields(t, err)[tt.field]; !ok {
				t.Fatalf("expected violation on %q, got %v", tt.field, err)
			}
		})
	}

	t.Run("five character reason is the minimum", func(t *testing.T) {
		if err := ValidateAdjustment(models.AdjustmentAdd, 1, "spill"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
