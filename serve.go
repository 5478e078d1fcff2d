package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/23CSE311-SeeFood/seeFood-Backend/configs"
	"github.com/23CSE311-SeeFood/seeFood-Backend/payments"
	"github.com/23CSE311-SeeFood/seeFood-Backend/repository"
	"github.com/23CSE311-SeeFood/seeFood-Backend/routes"
	"github.com/23CSE311-SeeFood/seeFood-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd(v *viper.Viper) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(v)
		},
	}
	cmd.Flags().String("port", "", "listen port (overrides PORT)")
	cmd.Flags().Bool("migrate", true, "run schema migrations before serving")

	err := bindFlags(v, cmd, map[string]string{
		"PORT":         "port",
		"AUTO_MIGRATE": "migrate",
	})
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// bindFlags binds viper keys to the command's flags by name.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s to %s: %w", flag, key, err)
		}
	}
	return nil
}

func runServe(v *viper.Viper) error {
	cfg, err := configs.LoadConfig(v)
	if err != nil {
		return err
	}

	log := configs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := configs.ConnectDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := configs.CloseDB(db); err != nil {
			log.Error("closing database", "error", err)
		}
	}()

	if v.GetBool("AUTO_MIGRATE") {
		if err := configs.SetupDatabase(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	warnMissingSecrets(cfg, log)

	payCfg := payments.Config{
		KeyID:         cfg.RazorpayKeyID,
		KeySecret:     cfg.RazorpaySecret,
		WebhookSecret: cfg.WebhookSecret,
	}
	router := routes.NewRouter(routes.Deps{
		Store:       repository.NewStore(db),
		Tokens:      utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Payments:    payCfg,
		Gateway:     payments.NewRazorpayClient(payCfg),
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server stopped gracefully")
	return nil
}

func warnMissingSecrets(cfg *configs.Config, log *slog.Logger) {
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set; register and login will fail")
	}
	if cfg.RazorpayKeyID == "" || cfg.RazorpaySecret == "" {
		log.Warn("Razorpay keys are not set; create-order and verify will fail")
	}
	if cfg.WebhookSecret == "" {
		log.Warn("RAZORPAY_WEBHOOK_SECRET is not set; webhooks will be rejected")
	}
}
