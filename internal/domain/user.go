package domain

type User struct {
	ID          int32  `json:"id"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	CreatedOn   string `json:"created_on"`
}

type UserOrgStatus string

const (
	UserOrgStatusActive  UserOrgStatus = "ACTIVE"
	UserOrgStatusSuspend UserOrgStatus = "SUSPEND"
	UserOrgStatusBlock   UserOrgStatus = "BLOCK"
)

type UserOrgRole string

const (
	UserOrgRoleAdmin UserOrgRole = "ADMIN"
	UserOrgRoleStaff UserOrgRole = "STAFF"
	UserOrgRoleDonor UserOrgRole = "DONOR"
)

// UserOrg ties a user to an organization with a role. Staff authorization for
// lifecycle operations requires an ACTIVE row with role STAFF or ADMIN.
type UserOrg struct {
	UserID   int32         `json:"user_id"`
	OrgID    int32         `json:"org_id"`
	Role     UserOrgRole   `json:"role"`
	Status   UserOrgStatus `json:"status"`
	JoinedOn string        `json:"joined_on"`
}

// CanHandleDonations reports whether this membership authorizes accept/decline
// and distribution decisions for the org.
func (uo *UserOrg) CanHandleDonations() bool {
	return uo.Status == UserOrgStatusActive &&
		(uo.Role == UserOrgRoleStaff || uo.Role == UserOrgRoleAdmin)
}
