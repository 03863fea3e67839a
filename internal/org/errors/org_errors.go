package orgerrors

import (
	"net/http"

	"go-hrpay/internal/shared/apperror"
)

var (
	ErrRegionNotFound = apperror.New(
		apperror.CodeNotFound,
		"region not found",
		http.StatusNotFound,
	)
	ErrRegionAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"region with this name already exists",
		http.StatusConflict,
	)
	ErrCountryNotFound = apperror.New(
		apperror.CodeNotFound,
		"country not found",
		http.StatusNotFound,
	)
	ErrCountryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"country with this code already exists",
		http.StatusConflict,
	)
	ErrLocationNotFound = apperror.New(
		apperror.CodeNotFound,
		"location not found",
		http.StatusNotFound,
	)
)
