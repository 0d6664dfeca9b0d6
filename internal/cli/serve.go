package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/config"
	transportHttp "github.com/iamasit07/4-in-a-row/hotseat/internal/transport/http"
	"github.com/iamasit07/4-in-a-row/hotseat/internal/transport/websocket"
)

const shutdownTimeout = 10 * time.Second

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the game to a browser",
		Long: `Serve the board page, its websocket and a small JSON API.

Examples:
  connect4 serve
  connect4 serve --port 9000 --store memory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), rootOpts.Config)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver, store, err := openDriver(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	connManager := websocket.NewConnectionManager()
	driver.OnSnapshot(connManager.BroadcastState)
	wsHandler := websocket.NewHandler(connManager, driver, cfg.AllowedOrigins)

	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := transportHttp.NewRouter(transportHttp.RouterDeps{
		Game:           transportHttp.NewGameHandler(driver),
		WebSocket:      wsHandler.HandleWebSocket,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	driverDone := make(chan error, 1)
	go func() { driverDone <- driver.Run(ctx) }()

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.ScoreStore).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("server is shutting down")
	case err := <-serverErr:
		runErr = WrapExitError(ExitCommandError, "server error", err)
		stop()
	}

	connManager.CloseAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	// the driver saves any unsaved tally before it returns
	<-driverDone
	return runErr
}
