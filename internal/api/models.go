package api

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6,max=72"`
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName"  validate:"omitempty,min=2,max=50"`
	Phone     string `json:"phone"     validate:"omitempty,max=20"`
}

// LoginRequest defines the payload for the user login endpoint.
// Only presence is checked; a wrong credential is reported by the service.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// MeResponse echoes the verified token payload. Times are Unix seconds.
type MeResponse struct {
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=5000"`
}

// UpdateTaskRequest defines the payload for a partial task update.
// Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	IsComplete  *bool   `json:"isComplete"`
}

// TaskListQuery holds the parsed query string of a task listing.
// Pointer fields distinguish "absent" from an explicit zero.
type TaskListQuery struct {
	Search     *string `query:"search"     validate:"omitempty,max=255"`
	IsComplete *bool   `query:"isComplete"`
	SortBy     string  `query:"sortBy"     validate:"omitempty,oneof=createdAt updatedAt title isComplete id"`
	SortOrder  string  `query:"sortOrder"  validate:"omitempty,oneof=asc desc"`
	Page       *int    `query:"page"       validate:"omitempty,min=1,max=1000000"`
	Limit      *int    `query:"limit"      validate:"omitempty,min=1,max=100"`
}
