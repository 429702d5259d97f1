package grpclib

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryHandlerFunc converts a panic into an Internal status
func RecoveryHandlerFunc(p interface{}) error {
	fmt.Println("[PANIC]", p)
	return status.Errorf(codes.Internal, "panic: %v", p)
}
