package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinereview/internal/wire"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const initialLoadTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().String("port", "", "listen port (overrides PORT)")
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		rt.config.App.Port = port
	}

	rt.logger.Info("Starting application",
		zap.String("port", rt.config.App.Port),
		zap.Bool("debug", rt.config.App.Debug),
		zap.String("store", rt.config.Store.Driver),
	)

	app := wire.Wiring(rt.repo, rt.config, rt.logger)

	loadCtx, cancel := context.WithTimeout(ctx, initialLoadTimeout)
	app.Page.Mount(loadCtx)
	cancel()

	return APIServer(ctx, app.Router, rt.config.App.Port, rt.logger)
}
