package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PeterJCLaw/sb-vision/internal/config"
	"github.com/PeterJCLaw/sb-vision/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPServer struct {
	Server *http.Server
}

func NewHTTPServer(config *config.ServerConfig, router *gin.Engine) (*HTTPServer, error) {
	serverAddr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &HTTPServer{
		Server: &http.Server{
			Addr:    serverAddr,
			Handler: router,
		},
	}
	return server, nil
}

func (s *HTTPServer) Start(ctx context.Context) error {
	// Start server in background
	go func() {
		if err := s.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", err)
		}
	}()
	logger.Info("Started HTTP server", zap.String("addr", s.Server.Addr))

	// Listen for shutdown signal
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		_ = s.Stop(shutdownCtx)
	}()

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	if err := s.Server.Shutdown(ctx); err != nil {
		logger.Error("Failed to stop HTTP server", err)
		return err
	}
	logger.Info("Stopped HTTP server")
	return nil
}
