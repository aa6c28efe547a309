package serve

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"verbaflow/cmd/verbaflow/cmd/common"
	"verbaflow/internal/api/server"
	v1routes "verbaflow/internal/api/v1/routes"
	"verbaflow/internal/app"
)

const shutdownTimeout = 10 * time.Second

var (
	host string
	port string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen host (overrides the configuration)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides the configuration)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local HTTP API",
	Long: `Serve the local HTTP API under /api/v1.

- Swagger UI is available at /swagger/index.html
- Prometheus metrics are available at /metrics
- Stop with Ctrl+C; a running transcription is abandoned`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := common.LoadConfig()
		if err != nil {
			return err
		}
		if host != "" {
			cfg.Server.Host = host
		}
		if port != "" {
			cfg.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		application, cleanup, err := app.InitializeApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()
		defer application.Logger.Sync()

		srv := server.NewServer(server.Config{
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			Environment:  cfg.Server.Environment,
		}, &v1routes.ServiceContainer{
			Controller: application.Controller,
			Exporter:   application.Exporter,
		}, application.Metrics.Handler(), application.Logger.Named("http"))

		if err := srv.Start(); err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "VerbaFlow API listening on http://%s (docs at /swagger/index.html)\n", srv.Addr())

		var serveErr error
		select {
		case <-ctx.Done():
		case serveErr = <-srv.Errors():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			application.Logger.Warn("graceful shutdown failed", zap.Error(err))
		}
		// Abandon a running transcription so its late result is discarded.
		application.Controller.Reset()
		return serveErr
	},
}
