package models

import "time"

// Category is the closed set of stock groupings used by the shop.
type Category string

const (
	CategoryIngredient Category = "ingredient"
	CategoryPackaging  Category = "packaging"
	CategoryBeverage   Category = "beverage"
	CategoryOther      Category = "other"
)

// Categories lists every valid Category, in display order.
func Categories() []Category {
	return []Category{CategoryIngredient, CategoryPackaging, CategoryBeverage, CategoryOther}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryIngredient, CategoryPackaging, CategoryBeverage, CategoryOther:
		return true
	}
	return false
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}

// Item is the core aggregate: one stocked good.
// ID and LastUpdated are owned by the store; clients never set them.
type Item struct {
	ID           string
	Name         string
	Category     Category
	Quantity     float64 // invariant: >= 0, enforced by every mutator
	Unit         string
	ReorderPoint float64
	Supplier     string // optional
	LastUpdated  time.Time
}

// LowStock reports the derived low-stock state. It is computed on read,
// never stored.
func (i Item) LowStock() bool {
	return i.Quantity <= i.ReorderPoint
}

// Draft is an Item payload lacking ID and LastUpdated, used only for creation.
type Draft struct {
	Name         string
	Category     Category
	Quantity     float64
	Unit         string
	ReorderPoint float64
	Supplier     string
}

// Patch is a partial Item update. Nil fields are left unchanged by the merge.
type Patch struct {
	Name         *string
	Category     *Category
	Quantity     *float64
	Unit         *string
	ReorderPoint *float64
	Supplier     *string
}

// Apply merges the patch onto item and returns the merged copy.
// The receiver item is not modified.
func (p Patch) Apply(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.ReorderPoint != nil {
		item.ReorderPoint = *p.ReorderPoint
	}
	if p.Supplier != nil {
		item.Supplier = *p.Supplier
	}
	return item
}
