package models

import "time"

// AdjustmentType is the direction of a stock change.
type AdjustmentType string

const (
	AdjustmentAdd    AdjustmentType = "add"
	AdjustmentRemove AdjustmentType = "remove"
)

// Valid reports whether t is a known adjustment direction.
func (t AdjustmentType) Valid() bool {
	return t == AdjustmentAdd || t == AdjustmentRemove
}

// String returns the underlying string value.
func (t AdjustmentType) String() string {
	return string(t)
}

// AdjustmentLog is an immutable record of one committed stock change.
// Entries are only ever created or cascade-deleted with their parent Item.
type AdjustmentLog struct {
	ID        string
	ItemID    string
	Type      AdjustmentType
	Amount    float64 // invariant: > 0
	Reason    string
	Timestamp time.Time
	User      string
}
