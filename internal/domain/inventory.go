package domain

import "time"

// InventoryItem is an accepted donation held by the organization. Exactly one
// exists per accepted DonationRequest. IsActive starts true and flips to false
// exactly once, when the item is distributed.
type InventoryItem struct {
	ID          int32         `json:"id"`
	OrgID       int32         `json:"org_id"`
	RequestID   int32         `json:"request_id"`
	ItemName    string        `json:"item_name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Condition   ItemCondition `json:"condition"`
	Size        string        `json:"size"`
	Gender      ItemGender    `json:"gender"`
	PhotoRefs   []string      `json:"photo_refs"`
	IsActive    bool          `json:"is_active"`
	AddedAt     time.Time     `json:"added_at"`
}
