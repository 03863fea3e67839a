package job

type CreateJobRequest struct {
	Title     string  `json:"title" binding:"required"`
	MinSalary *string `json:"min_salary"`
	MaxSalary *string `json:"max_salary"`
}

type UpdateJobRequest struct {
	Title     string  `json:"title" binding:"required"`
	MinSalary *string `json:"min_salary"`
	MaxSalary *string `json:"max_salary"`
}

type JobResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	MinSalary string `json:"min_salary,omitempty"`
	MaxSalary string `json:"max_salary,omitempty"`
}
