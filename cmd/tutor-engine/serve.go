// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/tutor-engine/internal/engine"
	"github.com/pdiddy/tutor-engine/internal/profile"
	"github.com/pdiddy/tutor-engine/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve starts the JSON HTTP API: semantic search, professor profiles,
database statistics, availability rankings, user profiles with search
history, and personalized recommendations.

The server starts even when the corpus is missing; search routes then
answer 503 until an ingest run creates it.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	var eng *engine.Engine
	if e, store, err := openEngine(cfg); err != nil {
		log.WithError(err).Warn("corpus unavailable, search routes will answer 503")
	} else {
		defer store.Close()
		eng = e
	}

	profiles, err := profile.NewStore(cfg.Profile)
	if err != nil {
		return err
	}
	defer profiles.Close()

	handler := server.NewRouter(&server.Deps{
		Log:         log,
		Engine:      eng,
		Profiles:    profiles,
		Version:     version,
		CORSOrigins: cfg.Server.AllowOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
