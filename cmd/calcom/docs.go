package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bjaus/calcom"
)

func newDocsCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Serve browsable API documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			a.logger.Info("serving docs", "addr", addr, "docs", "http://"+addr+"/docs")
			err := serveDocs(ctx, addr)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrap(err, "serve docs")
			}
			a.logger.Info("docs server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	return cmd
}

func docsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /openapi.json", calcom.Operations.SpecHandler())
	mux.Handle("GET /openapi.yaml", calcom.Operations.SpecHandlerYAML())
	mux.Handle("GET /docs", calcom.Operations.DocsHandler())
	return mux
}

// serveDocs blocks until ctx is cancelled, then shuts the server down.
func serveDocs(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           docsMux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
