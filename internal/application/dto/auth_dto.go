package dto

// LoginRequest body for POST /api/auth/login. Users sign in with a numeric
// PIN, as on a shop-counter terminal.
type LoginRequest struct {
	UserID string `json:"userId"`
	PIN    string `json:"pin"`
}

// UserResponse user profile in responses. The PIN hash never leaves the
// server.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	BranchID string `json:"branchId"`
}

// LoginResponse token plus the signed-in user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
