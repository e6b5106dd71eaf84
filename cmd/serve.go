package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"bizstat/internal/api"
	"bizstat/internal/config"
	"bizstat/internal/logger"
	"bizstat/internal/lookup"
	"bizstat/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lookup web front-end",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if serveAddr != "" {
			cfg.ListenAddr = serveAddr
		}

		log := logger.New(cfg.DebugMode)
		defer func() {
			_ = log.Sync()
		}()

		if cfg.ServiceKey == "" {
			log.Warnw("service key is not configured; lookups will fail",
				"env", "NTS_SERVICE_KEY",
			)
		}

		gin.SetMode(gin.ReleaseMode)
		if cfg.DebugMode {
			gin.SetMode(gin.DebugMode)
		}

		client := api.NewClient(cfg.ServiceKey, cfg.RequestTimeout)
		svc := lookup.New(client, cfg.BatchSize)
		server := web.New(svc, cfg, log)

		srv := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           server.Routes(),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		go func() {
			log.Infow("server starting",
				"addr", cfg.ListenAddr,
				"batch_size", cfg.BatchSize,
				"debug_mode", cfg.DebugMode,
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalw("server failed to start", "error", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Infow("shutdown signal received, shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorw("server shutdown error", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
}
