package models

import "testing"

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}

	for _, c := range []Category{"", "dairy", "Ingredient", "ingredients"} {
		if c.Valid() {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestItemLowStock(t *testing.T) {
	t.Run("above reorder point", func(t *testing.T) {
		item := Item{Quantity: 11, ReorderPoint: 10}
		if item.LowStock() {
			t.Error("expected not low stock")
		}
	})

	t.Run("exactly at reorder point is low", func(t *testing.T) {
		item := Item{Quantity: 10, ReorderPoint: 10}
		if !item.LowStock() {
			t.Error("expected low stock at the boundary")
		}
	})

	t.Run("below reorder point", func(t *testing.T) {
		item := Item{Quantity: 8, ReorderPoint: 10}
		if !item.LowStock() {
			t.Error("expected low stock")
		}
	})
}

func TestPatchApply(t *testing.T) {
	base := Item{
		ID:           "id-1",
		Name:         "Flour",
		Category:     CategoryIngredient,
		Quantity:     10,
		Unit:         "lbs",
		ReorderPoint: 5,
		Supplier:     "Mill Co.",
	}

	t.Run("empty patch changes nothing", func(t *testing.T) {
		merged := Patch{}.Apply(base)
		if merged != base {
			t.Fatalf("expected %+v, got %+v", base, merged)
		}
	})

	t.Run("set fields are merged, others kept", func(t *testing.T) {
		name := "Bread Flour"
		qty := 12.5
		merged := Patch{Name: &name, Quantity: &qty}.Apply(base)

		if merged.Name != "Bread Flour" {
			t.Errorf("expected merged name, got %q", merged.Name)
		}
		if merged.Quantity != 12.5 {
			t.Errorf("expected merged quantity, got %v", merged.Quantity)
		}
		if merged.Unit != "lbs" || merged.Supplier != "Mill Co." {
			t.Error("expected untouched fields to be kept")
		}
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		name := "Changed"
		_ = Patch{Name: &name}.Apply(base)
		if base.Name != "Flour" {
			t.Fatal("Apply must not modify its input")
		}
	})

	t.Run("supplier can be cleared with empty string", func(t *testing.T) {
		empty := ""
		merged := Patch{Supplier: &empty}.Apply(base)
		if merged.Supplier != "" {
			t.Errorf("expected cleared supplier, got %q", merged.Supplier)
		}
	})
}
