package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	v1 "github.com/keyops/crypto-keyops/internal/api/rest/v1"
	"github.com/keyops/crypto-keyops/internal/app"
	"github.com/keyops/crypto-keyops/internal/domain/keys"
	"github.com/keyops/crypto-keyops/internal/infrastructure/cryptography"
	"github.com/keyops/crypto-keyops/internal/infrastructure/persistence"
	"github.com/keyops/crypto-keyops/internal/infrastructure/persistence/models"
	"github.com/keyops/crypto-keyops/internal/pkg/config"
	"github.com/keyops/crypto-keyops/internal/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "crypto-keyops-rest-api",
		Short:        "REST API for the unified key-operations service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			return run(configPath)
		},
	}
	rootCmd.Flags().String("config", "configs/rest-app.yaml", "path to the YAML configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	keyVaultService, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, keyVaultService, log)
}

// initializeDependencies sets up the database, adapters and services.
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (keys.KeyVaultService, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.KeyModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	keyRepo, err := persistence.NewGormKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key repository: %w", err)
	}

	signatureAdapter, err := cryptography.NewECDSAAdapter(rand.Reader, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature adapter: %w", err)
	}
	kemAdapter, err := cryptography.NewKyberAdapter(rand.Reader, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create KEM adapter: %w", err)
	}

	keyOps, err := app.NewKeyOperationService(signatureAdapter, kemAdapter, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key operation service: %w", err)
	}

	keyVaultService, err := app.NewKeyVaultService(keyRepo, keyOps, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key vault service: %w", err)
	}

	return keyVaultService, nil
}

// startServerWithGracefulShutdown starts the HTTP server and drains it on
// SIGINT/SIGTERM.
func startServerWithGracefulShutdown(cfg *config.RestConfig, keyVaultService keys.KeyVaultService, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, keyVaultService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
