package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"leave-approval/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", apperror.ErrConflict)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "Resource already exists", got.Message)
	})

	t.Run("unknown error is sanitized", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})

	t.Run("wrap keeps the cause", func(t *testing.T) {
		cause := errors.New("container gone")
		err := apperror.Wrap(cause, apperror.CodeNotFound, "File upload failed: container gone", http.StatusNotFound)

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
		assert.Nil(t, apperror.Wrap(nil, apperror.CodeNotFound, "x", http.StatusNotFound))
	})

	t.Run("because keeps the sentinel and the cause", func(t *testing.T) {
		sentinel := apperror.New(apperror.CodeNotFound, "File upload failed", http.StatusNotFound)
		cause := errors.New("container gone")

		err := sentinel.Because(cause)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, apperror.ErrNotFound)
		assert.Equal(t, "File upload failed: container gone", apperror.ToHTTP(err).Message)
		assert.ErrorIs(t, err.Because(errors.New("again")), sentinel)
		assert.Same(t, sentinel, sentinel.Because(nil))
		assert.Equal(t, "File upload failed", sentinel.Message)
	})
}

type sample struct {
	LeaveStartDate string `json:"leaveStartDate" validate:"required"`
	Email          string `json:"email" validate:"email"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()

	t.Run("required", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(sample{Email: "a@b.c"}))

		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, apperror.CodeValidation, got.Code)
		assert.Equal(t, "Leave Start Date is required", got.Message)
	})

	t.Run("invalid", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(sample{LeaveStartDate: "2025-01-01", Email: "nope"}))

		assert.Equal(t, "Email is invalid", apperror.ToHTTP(err).Message)
	})

	t.Run("non validator error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("EOF"))

		assert.Equal(t, "Input tidak valid", apperror.ToHTTP(err).Message)
	})
}
