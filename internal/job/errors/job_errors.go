package joberrors

import (
	"net/http"

	"go-hrpay/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"job not found",
		http.StatusNotFound,
	)
	ErrJobAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"job with this title already exists",
		http.StatusConflict,
	)
	ErrInvalidSalaryRange = apperror.New(
		apperror.CodeInvalidInput,
		"min_salary must not exceed max_salary",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"salary bounds must be non-negative decimals",
		http.StatusBadRequest,
	)
)
