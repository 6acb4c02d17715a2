package dto

// ── user requests ──

// CreateUserRequest registers a back-office user.
type CreateUserRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role"     binding:"required,oneof=admin manager clerk"`
}

// UpdateUserRequest updates user profile fields.
type UpdateUserRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role"  binding:"omitempty,oneof=admin manager clerk"`
}

// UserListRequest is the user list query.
type UserListRequest struct {
	PaginationRequest
}

// ── user responses ──

// UserResponse is the sanitized user view.
type UserResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
}
