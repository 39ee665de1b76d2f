package domain

type Organization struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	ContactEmail string `json:"contact_email"`
	CreatedOn    string `json:"created_on"`
}
