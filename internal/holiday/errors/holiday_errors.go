package holidayerrors

import (
	"net/http"

	"leave-approval/internal/shared/apperror"
)

var (
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrHolidayAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a holiday already exists on this date",
		http.StatusConflict,
	)
)
