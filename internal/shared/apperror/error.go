package apperror

import "fmt"

// AppError is an error the HTTP layer can render as is. Sentinels are
// declared with New; per-request variants come from Because so that
// errors.Is still matches the sentinel.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error

	origin *AppError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel e was derived from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e == t || (e.origin != nil && e.origin == t)
}

// Because returns a copy of e that wraps cause and shows its text after the
// sentinel message, e.g. "File upload failed: container not found".
func (e *AppError) Because(cause error) *AppError {
	if cause == nil {
		return e
	}
	origin := e
	if e.origin != nil {
		origin = e.origin
	}
	return &AppError{
		Code:       e.Code,
		Message:    e.Message + ": " + cause.Error(),
		HTTPStatus: e.HTTPStatus,
		Err:        cause,
		origin:     origin,
	}
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
