package domain

import "time"

// DistributionRecord is the immutable ledger entry marking an inventory item as
// given to a beneficiary group, with the sustainability impact computed at
// distribution time. At most one exists per InventoryItem.
type DistributionRecord struct {
	ID               int32     `json:"id"`
	InventoryID      int32     `json:"inventory_id"`
	RequestID        int32     `json:"request_id"`
	OrgID            int32     `json:"org_id"`
	BeneficiaryGroup string    `json:"beneficiary_group"`
	HandledBy        int32     `json:"handled_by"`
	CO2SavedKg       float64   `json:"co2_saved_kg"`
	LandfillSavedKg  float64   `json:"landfill_saved_kg"`
	Beneficiaries    int32     `json:"beneficiaries"`
	DistributedAt    time.Time `json:"distributed_at"`
}
