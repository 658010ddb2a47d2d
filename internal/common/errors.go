package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors. Every external-collaborator failure is converted
// to one of these before it reaches the presentation layer.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateField = errors.New("field name already exists")
	ErrPlanRestricted = errors.New("feature not available on current plan")
	ErrExtraction     = errors.New("extraction failed")
	ErrStorage        = errors.New("object storage failure")
	ErrTimeout        = errors.New("operation timed out")
	ErrPartialMerge   = errors.New("merge completed with skipped documents")
	ErrInternal       = errors.New("internal error")
)

// NewAppError builds an AppError with a stable code.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// GRPCStatus maps the error taxonomy onto gRPC status codes at the server
// boundary. Raw transport errors never leak through.
func GRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrDuplicateField):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrPlanRestricted):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrTimeout):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgumentError rejects malformed request fields before any service
// call is made.
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}
