package department

type CreateDepartmentRequest struct {
	Name       string  `json:"name" binding:"required"`
	LocationID *string `json:"location_id" binding:"omitempty,uuid"`
}

type UpdateDepartmentRequest struct {
	Name       string  `json:"name" binding:"required"`
	LocationID *string `json:"location_id" binding:"omitempty,uuid"`
}

type DepartmentResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LocationID string `json:"location_id,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type MemberResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	JobID    string `json:"job_id"`
}
