package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/server"
	"github.com/jsphweid/chordex/watch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("watch", false, "reload CHORDS_PATH when it changes")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chord lookups over http",
	Long: `Serves chord lookups over http on PORT (default 8080).
CORS_ORIGINS is a comma separated list of allowed origins (default *).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		watchData, _ := cmd.Flags().GetBool("watch")
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return serve(ctx, logger, watchData)
	},
}

func serve(ctx context.Context, logger *slog.Logger, watchData bool) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	store := server.NewStore(table)

	if path := constants.GetChordsPath(); watchData && path != "" {
		w, err := watch.New(path, logger)
		if err != nil {
			return err
		}
		defer w.Stop()
		w.Start(func(t *chord.Table) { store.Swap(t) })
		logger.Info("Watching chord data", slog.String("path", path))
	} else if watchData {
		logger.Warn("--watch needs CHORDS_PATH, serving packaged chord data")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + constants.GetPort(),
		Handler:           server.New(store, logger, constants.GetAllowedOrigins()).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("Listening", slog.String("addr", srv.Addr), slog.Int("names", table.Len()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
