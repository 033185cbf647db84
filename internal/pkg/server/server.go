package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/kiosk404/taskmind/pkg/logger"
)

// Config is the configuration for the generic HTTP API server.
type Config struct {
	Mode            string
	BindAddress     string
	BindPort        int
	Healthz         bool
	EnableProfiling bool
	Middlewares     []string
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Mode:            gin.ReleaseMode,
		BindAddress:     "127.0.0.1",
		BindPort:        8080,
		Healthz:         true,
		EnableProfiling: false,
	}
}

// CompletedConfig is the completed configuration for GenericAPIServer.
type CompletedConfig struct {
	*Config
}

// Complete fills in any fields not set that are required to have valid data.
func (c *Config) Complete() CompletedConfig {
	if c.Mode == "" {
		c.Mode = gin.ReleaseMode
	}
	if c.BindAddress == "" {
		c.BindAddress = "127.0.0.1"
	}
	if c.BindPort == 0 {
		c.BindPort = 8080
	}
	return CompletedConfig{c}
}

// New returns a new instance of GenericAPIServer from the completed config.
func (c CompletedConfig) New() (*GenericAPIServer, error) {
	gin.SetMode(c.Mode)

	s := &GenericAPIServer{
		Engine:          gin.New(),
		address:         fmt.Sprintf("%s:%d", c.BindAddress, c.BindPort),
		healthz:         c.Healthz,
		enableProfiling: c.EnableProfiling,
	}

	s.installAPIs()

	return s, nil
}

// GenericAPIServer wraps a gin engine with an HTTP server that shuts down
// gracefully on SIGINT/SIGTERM.
type GenericAPIServer struct {
	*gin.Engine

	address         string
	healthz         bool
	enableProfiling bool

	insecureServer *http.Server
}

func (s *GenericAPIServer) installAPIs() {
	if s.healthz {
		s.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	if s.enableProfiling {
		pprof.Register(s.Engine)
	}
}

// Run starts the HTTP server and blocks until shutdown completes.
func (s *GenericAPIServer) Run() error {
	s.insecureServer = &http.Server{
		Addr:    s.address,
		Handler: s,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[Server] start to listening on %s", s.address)
		if err := s.insecureServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("[Server] shutdown signal received, draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.insecureServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("[Server] graceful shutdown failed: %v", err)
		return err
	}

	return <-errCh
}

// Close immediately closes the underlying HTTP server, if running.
func (s *GenericAPIServer) Close() {
	if s.insecureServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.insecureServer.Shutdown(ctx); err != nil {
		logger.Warn("[Server] shutdown server failed: %v", err)
	}
}
