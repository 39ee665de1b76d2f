package domain

import "time"

type PhotoStatus string

const (
	PhotoStatusPending  PhotoStatus = "PENDING"
	PhotoStatusAttached PhotoStatus = "ATTACHED"
)

// Photo is an uploaded item picture referenced by its opaque storage key. A
// photo starts PENDING when the upload slot is issued and becomes ATTACHED when
// a donation request submission claims it. Pending photos past ExpiresAt are
// purged by the cronjob.
type Photo struct {
	Key         string      `json:"key"`
	UserID      int32       `json:"user_id"`
	FileName    string      `json:"file_name"`
	ContentType string      `json:"content_type"`
	Status      PhotoStatus `json:"status"`
	RequestID   *int32      `json:"request_id,omitempty"`
	ExpiresAt   time.Time   `json:"expires_at"`
	CreatedOn   time.Time   `json:"created_on"`
}
