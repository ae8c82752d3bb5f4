package leaveerrors

import (
	"net/http"

	"leave-approval/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"leaveStartDate must be before or equal leaveEndDate",
		http.StatusBadRequest,
	)
	ErrLeaveRangeTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"leave request cannot span more than 366 days",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave status",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrNoLeaveRequests = apperror.New(
		apperror.CodeNotFound,
		"no leave requests found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid leave status transition",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"rejection reason is required",
		http.StatusBadRequest,
	)
	ErrMedicalDocumentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"medical document is required for sick leave longer than 2 business days",
		http.StatusBadRequest,
	)
	ErrDocumentContainerMissing = apperror.New(
		apperror.CodeNotFound,
		"File upload failed",
		http.StatusNotFound,
	)
	ErrDocumentExists = apperror.New(
		apperror.CodeConflict,
		"File upload failed",
		http.StatusConflict,
	)
	ErrFileNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"fileName is required",
		http.StatusBadRequest,
	)
	ErrFileNotFound = apperror.New(
		apperror.CodeNotFound,
		"file not found",
		http.StatusNotFound,
	)
)
