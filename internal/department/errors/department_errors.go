package departmenterrors

import (
	"net/http"

	"go-hrpay/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrDepartmentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"department with this name already exists",
		http.StatusConflict,
	)
)
