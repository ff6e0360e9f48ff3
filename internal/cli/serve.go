package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spantable/internal/api"
	"github.com/matzehuels/spantable/pkg/cache"
	"github.com/matzehuels/spantable/pkg/pipeline"
)

// shutdownTimeout bounds how long serve waits for in-flight requests on exit.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command exposing the layout pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	addr := c.config.Addr
	if addr == "" {
		addr = ":8080"
	}
	redisAddr := c.config.Redis
	noCache := c.config.NoCache

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

POST /v1/layout accepts {"spans": ..., "table": ...} and responds with the
computed grid. GET /healthz reports liveness.

By default results are cached on disk; pass --redis to share the cache
across instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisAddr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", redisAddr, "redis address for the shared cache (default: file cache)")
	cmd.Flags().BoolVar(&noCache, "no-cache", noCache, "disable caching")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr string, noCache bool) error {
	store, err := newServeCache(ctx, redisAddr, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	runner := pipeline.NewRunner(store, c.Logger)
	defer runner.Close()

	server := api.NewServer(runner, c.Logger)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("Listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// newServeCache picks the cache backend for serve mode: Redis when an
// address is given, the local file cache otherwise.
func newServeCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	}
	return newCache(false)
}
