package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrTokenMissing         = fmt.Errorf("token missing")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrPermissionDenied     = fmt.Errorf("permission denied")
	ErrAuthorityUnavailable = fmt.Errorf("identity authority unavailable")
	ErrServerShuttingDown   = fmt.Errorf("server shutting down")

	ErrRoomAlreadyExists = fmt.Errorf("room already exists")
	ErrRoomNotFound      = fmt.Errorf("room not found")
	ErrInvalidRoomName   = fmt.Errorf("invalid room name")

	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)

// MapToGRPCError turns a domain error into a gRPC status.
// It must only be called by the transport layer.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrTokenMissing),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrAuthorityUnavailable), errors.Is(err, ErrServerShuttingDown):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, ErrRoomAlreadyExists), errors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrInvalidRoomName):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
