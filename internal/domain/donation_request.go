package domain

import "time"

type DonationRequestStatus string

const (
	DonationStatusPending   DonationRequestStatus = "PENDING"
	DonationStatusAccepted  DonationRequestStatus = "ACCEPTED"
	DonationStatusDeclined  DonationRequestStatus = "DECLINED"
	DonationStatusCancelled DonationRequestStatus = "CANCELLED"
)

// Terminal reports whether the status can never change again.
func (s DonationRequestStatus) Terminal() bool {
	return s == DonationStatusAccepted || s == DonationStatusDeclined || s == DonationStatusCancelled
}

type ItemCondition string

const (
	ItemConditionNew        ItemCondition = "NEW"
	ItemConditionExcellent  ItemCondition = "EXCELLENT"
	ItemConditionGood       ItemCondition = "GOOD"
	ItemConditionAcceptable ItemCondition = "ACCEPTABLE"
)

type ItemGender string

const (
	ItemGenderMen    ItemGender = "MEN"
	ItemGenderWomen  ItemGender = "WOMEN"
	ItemGenderKids   ItemGender = "KIDS"
	ItemGenderUnisex ItemGender = "UNISEX"
)

// DonationRequest is a donor's offer of one clothing item to one organization.
// It is created PENDING and moves exactly once to a terminal status.
type DonationRequest struct {
	ID          int32                 `json:"id"`
	DonorID     int32                 `json:"donor_id"`
	OrgID       int32                 `json:"org_id"`
	ItemName    string                `json:"item_name"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Condition   ItemCondition         `json:"condition"`
	Size        string                `json:"size"`
	Gender      ItemGender            `json:"gender"`
	PhotoRefs   []string              `json:"photo_refs"`
	Status      DonationRequestStatus `json:"status"`
	HandledBy   *int32                `json:"handled_by,omitempty"`
	HandledAt   *time.Time            `json:"handled_at,omitempty"`
	Reason      string                `json:"reason,omitempty"`
	CreatedOn   time.Time             `json:"created_on"`
}

const (
	MinPhotoRefs = 1
	MaxPhotoRefs = 4
)
