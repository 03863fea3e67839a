package employee

type CreateEmployeeRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone"`
	HireDate     string  `json:"hire_date" binding:"required"`
	JobID        string  `json:"job_id" binding:"required,uuid"`
	Salary       string  `json:"salary" binding:"required"`
	ManagerID    *string `json:"manager_id"`
	DepartmentID *string `json:"department_id"`
}

type UpdateEmployeeRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone"`
	HireDate     string  `json:"hire_date" binding:"required"`
	JobID        string  `json:"job_id" binding:"required,uuid"`
	Salary       string  `json:"salary" binding:"required"`
	ManagerID    *string `json:"manager_id"`
	DepartmentID *string `json:"department_id"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	HireDate     string  `json:"hire_date"`
	JobID        string  `json:"job_id"`
	Salary       string  `json:"salary"`
	ManagerID    string  `json:"manager_id,omitempty"`
	ManagerName  string  `json:"manager_name,omitempty"`
	DepartmentID string  `json:"department_id,omitempty"`
}

type CreateDependentRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Relationship string `json:"relationship" binding:"required"`
}

type DependentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Relationship string `json:"relationship"`
}
