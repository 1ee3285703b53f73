package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	pb "uploadd/api/gen"
	"uploadd/internal/uploadd/admission"
	"uploadd/internal/uploadd/liveness"
	"uploadd/internal/uploadd/registry"
	"uploadd/pkg/config"
	"uploadd/pkg/logger"
)

// StartGRPCServer wires the upload service into a gRPC server and starts
// serving in the background. The returned server is stopped by the caller.
func StartGRPCServer(cfg *config.Config, admitter *admission.Admitter, sessions *registry.Registry, tracker *liveness.Tracker) (*grpc.Server, error) {
	serverLogger := logger.WithField("component", "grpc-server")

	address := cfg.GetServerAddress()
	serverLogger.Info("initializing gRPC server", "address", address)

	grpcOptions := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(int(cfg.GRPC.MaxRecvMsgSize)),
		grpc.MaxSendMsgSize(int(cfg.GRPC.MaxSendMsgSize)),
		grpc.MaxHeaderListSize(uint32(cfg.GRPC.MaxHeaderListSize)),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    cfg.GRPC.KeepAliveTime,
			Timeout: cfg.GRPC.KeepAliveTimeout,
		}),
	}

	serverLogger.Debug("gRPC server options configured",
		"maxRecvMsgSize", cfg.GRPC.MaxRecvMsgSize,
		"maxSendMsgSize", cfg.GRPC.MaxSendMsgSize,
		"maxHeaderListSize", cfg.GRPC.MaxHeaderListSize,
		"keepAliveTime", cfg.GRPC.KeepAliveTime)

	grpcServer := grpc.NewServer(grpcOptions...)

	uploadService := NewUploadServiceServer(admitter, sessions, tracker)
	pb.RegisterUploadServiceServer(grpcServer, uploadService)

	serverLogger.Info("upload service registered successfully")

	lis, err := net.Listen("tcp", address)
	if err != nil {
		serverLogger.Error("failed to create listener", "address", address, "error", err)
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	go func() {
		serverLogger.Info("starting gRPC server", "address", address, "ready", true)

		if serveErr := grpcServer.Serve(lis); serveErr != nil {
			serverLogger.Error("gRPC server stopped with error", "error", serveErr)
		} else {
			serverLogger.Info("gRPC server stopped gracefully")
		}
	}()

	return grpcServer, nil
}
