package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/config"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/seed"
	"github.com/Jeomhps/projet-IAC/bola-go/internal/server"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:           "bola-go",
		Short:         "Reservation lookup service with a vulnerable and a secure endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $CONFIG_FILE)")

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Print the seed reservations grouped by user as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printSeed(cmd, configPath)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errors.ErrorStack(err))
		os.Exit(1)
	}
}

func serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Trace(err)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return errors.Trace(err)
	}
	defer func() { _ = log.Sync() }()

	deps, closeStore, err := server.Build(ctx, cfg, log)
	defer func() { _ = closeStore() }()
	if err != nil {
		return errors.Trace(err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := server.NewRouter(deps)

	log.Info("reservation service ready",
		zap.String("store_backend", cfg.StoreBackend),
		zap.String("identity_mode", cfg.IdentityMode),
		zap.String("vulnerable", "GET /vulnerable/users/{user_id}"),
		zap.String("secure", "GET /secure/users/{user_id}"),
		zap.String("identity_header", cfg.IdentityHeader))

	return server.Run(ctx, cfg.Addr, r, log)
}

func printSeed(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Trace(err)
	}
	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return errors.Trace(err)
	}
	_, groups := data.ByUser()
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return errors.Trace(enc.Encode(groups))
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Annotatef(err, "log level %q", level)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}
