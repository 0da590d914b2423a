package entity

// Role determines what a user may do. FACTORY_ADMIN is the top-level role at
// the hub; the other two are branch-level (restricted) roles.
type Role string

const (
	RoleFactoryAdmin Role = "FACTORY_ADMIN"
	RoleBranchAdmin  Role = "BRANCH_ADMIN"
	RoleSalesStaff   Role = "SALES_STAFF"
)

// User is one of the predefined operators selectable at login.
// BranchID is empty-or-hub for factory staff.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	BranchID string `json:"branchId"`
}

// HomeBranch returns the branch the user acts for, defaulting to the hub.
func (u User) HomeBranch() string {
	if u.BranchID == "" {
		return HubBranchID
	}
	return u.BranchID
}
