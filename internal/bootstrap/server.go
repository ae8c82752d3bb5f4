package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// StartHTTPServer menjalankan Gin server sampai SIGINT/SIGTERM lalu shutdown
// dengan graceful. onShutdown hooks run once the listener is closed, also
// when the listener itself failed.
func StartHTTPServer(
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger AuditLogger,
	onShutdown ...func(),
) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, router, cfg, auditLogger, onShutdown...)
}

func serve(
	ctx context.Context,
	handler http.Handler,
	cfg ServerConfig,
	auditLogger AuditLogger,
	onShutdown ...func(),
) error {
	defer func() {
		for _, fn := range onShutdown {
			fn()
		}
	}()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	listenErr := make(chan error, 1)
	go func() {
		zap.L().Info("HTTP server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	reason := "signal"
	select {
	case err, ok := <-listenErr:
		if ok {
			zap.L().Error("ListenAndServe error", zap.Error(err))
			auditLogger.Log(context.Background(), AuditLog{
				Action:  "SERVER_FAILED",
				Message: "Server stopped accepting requests",
				Meta:    map[string]any{"port": cfg.Port, "error": err.Error()},
			})
			return fmt.Errorf("listen on :%s: %w", cfg.Port, err)
		}
		reason = "listener closed"
	case <-ctx.Done():
	}

	zap.L().Info("Shutdown requested", zap.String("reason", reason))

	// Audit log BEFORE shutdown
	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"port": cfg.Port, "reason": reason},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
		return err
	}
	zap.L().Info("Server exited gracefully")
	return nil
}
