package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCCode maps an error type to its gRPC status code
func (t ErrorType) GRPCCode() codes.Code {
	switch t {
	case ErrorTypeValidation:
		return codes.InvalidArgument
	case ErrorTypeNotFound:
		return codes.NotFound
	case ErrorTypeUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// ToGRPCStatus converts application errors to a gRPC status error.
// Internal failures are reported with a generic message; the cause stays in
// the server logs.
func ToGRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	appErr := GetAppError(err)
	if appErr == nil {
		return status.Error(codes.Internal, "an unexpected error occurred")
	}

	code := appErr.Type.GRPCCode()
	if code == codes.Internal {
		return status.Error(code, "an unexpected error occurred")
	}
	return status.Error(code, appErr.Message)
}
