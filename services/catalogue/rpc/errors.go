package rpc

import (
	"errors"

	"catalogue-service/internal/catalogueerrors"
	"catalogue-service/utils"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError maps domain errors to gRPC status codes
func statusFromError(err error) error {
	switch {
	case errors.Is(err, catalogueerrors.ErrInvalidItem), errors.Is(err, catalogueerrors.ErrInvalidSeller):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, catalogueerrors.ErrItemNotFound):
		return status.Error(codes.NotFound, "item not found")
	case errors.Is(err, catalogueerrors.ErrSellerNotFound):
		return status.Error(codes.NotFound, "seller not found")
	case errors.Is(err, catalogueerrors.ErrSellerExists):
		return status.Error(codes.AlreadyExists, "seller already exists")
	case errors.Is(err, catalogueerrors.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "user not logged in")
	default:
		utils.Error("gRPC: service error", map[string]any{"error": err.Error()})
		return status.Error(codes.Internal, "internal server error")
	}
}
