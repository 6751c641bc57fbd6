package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	httpapi "lgame/internal/api/http"
	"lgame/internal/api/ws"
	"lgame/internal/config"
	"lgame/internal/match"
	"lgame/internal/store"
)

func main() {
	cfg := config.Get()
	config.SetupLogging(*cfg)
	gin.SetMode(cfg.GinMode)

	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	mgr := match.NewManager(mem, *cfg, hub)
	hub.SetManager(mgr)
	r := httpapi.NewRouter(mgr, hub, *cfg)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Int("depth", cfg.Search.Depth).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
