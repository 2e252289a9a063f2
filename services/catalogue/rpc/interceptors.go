package rpc

import (
	"context"
	"time"

	"catalogue-service/utils"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryInterceptor turns a handler panic into codes.Internal
func RecoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			utils.Error("gRPC handler panic", map[string]any{
				"method": info.FullMethod,
				"panic":  r,
			})
			err = status.Error(codes.Internal, "internal server error")
		}
	}()
	return handler(ctx, req)
}

// LoggingInterceptor logs each unary call with its status code and timing
func LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	fields := map[string]any{
		"method":  info.FullMethod,
		"code":    code.String(),
		"latency": time.Since(start).String(),
	}
	switch code {
	case codes.OK:
		utils.Info("gRPC Request", fields)
	case codes.Internal, codes.Unknown:
		fields["error"] = err.Error()
		utils.Error("gRPC Request", fields)
	default:
		fields["error"] = err.Error()
		utils.Warn("gRPC Request", fields)
	}
	return resp, err
}
