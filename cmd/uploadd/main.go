package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"uploadd/internal/uploadd/admission"
	"uploadd/internal/uploadd/domain"
	"uploadd/internal/uploadd/liveness"
	"uploadd/internal/uploadd/registry"
	"uploadd/internal/uploadd/server"
	"uploadd/internal/uploadd/store"
	"uploadd/pkg/config"
	"uploadd/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, cfgPath, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if level, err := logger.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	log := logger.WithField("component", "main")
	log.Info("starting uploadd",
		"address", cfg.GetServerAddress(),
		"configPath", cfgPath,
		"tempDir", cfg.Upload.TempDir,
		"maxSessionsPerOwner", cfg.Upload.MaxSessionsPerOwner)

	tokens := admission.NewTokenTable()
	for _, seed := range cfg.Upload.Tokens {
		tokens.Seed(seed.Token, domain.OwnerRef(seed.Owner))
	}
	if len(cfg.Upload.Tokens) > 0 {
		log.Info("seeded join tokens from configuration", "count", len(cfg.Upload.Tokens))
	}

	slotCfg := domain.SlotConfig{
		MaxFileSize:  cfg.Upload.DefaultMaxFileSize,
		ChunkTimeout: cfg.Upload.DefaultChunkTimeout,
	}
	if err := slotCfg.Validate(); err != nil {
		return fmt.Errorf("invalid slot configuration: %w", err)
	}
	slots := admission.NewCountingSlots(cfg.Upload.MaxSessionsPerOwner, slotCfg)

	tmp, err := store.NewDirStore(cfg.Upload.TempDir)
	if err != nil {
		return fmt.Errorf("failed to initialize temp storage: %w", err)
	}

	sessions := registry.New()
	tracker := liveness.NewTracker()
	admitter := admission.NewAdmitter(tokens, slots, tmp)

	grpcServer, err := server.StartGRPCServer(cfg, admitter, sessions, tracker)
	if err != nil {
		return fmt.Errorf("failed to start gRPC server: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info("uploadd started successfully", "address", cfg.GetServerAddress())

	<-sigChan
	log.Info("received shutdown signal, stopping server...")

	// cancel live sessions first so their close-out paths run before the
	// transport goes away
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()
	sessions.CancelAll(shutdownCtx)

	grpcServer.GracefulStop()
	log.Info("uploadd stopped gracefully")

	return nil
}
