package employeeerrors

import (
	"net/http"

	"employee-service/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrMissingEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Email query parameter is required",
		http.StatusBadRequest,
	)
	ErrFieldTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"One of the employee fields exceeds the allowed length",
		http.StatusBadRequest,
	)
)
