package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"modeler/internal/httpapi"
)

func newServeCmd(rt *runtime) *cobra.Command {
	var addr, catalogPath, corsOrigins string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				rt.cfg.Addr = addr
			}
			if cmd.Flags().Changed("cors-origins") {
				rt.cfg.CORSEnabled = true
				rt.cfg.CORSOrigins = splitCSV(corsOrigins)
			}
			p, err := rt.planner(catalogPath, 0)
			if err != nil {
				return err
			}
			httpapi.SetLogger(rt.log)
			httpapi.SetDefaultLogLevel(rt.cfg.LogLevel)
			httpapi.SetMaxBodyBytes(rt.cfg.MaxBodyBytes)
			httpapi.SetDefaultAccelerator(rt.cfg.DefaultAccelerator)
			httpapi.SetCORSOptions(rt.cfg.CORSEnabled, rt.cfg.CORSOrigins, rt.cfg.CORSMethods, rt.cfg.CORSHeaders)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, rt, &http.Server{Addr: rt.cfg.Addr, Handler: httpapi.NewMux(p)})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address, e.g. :8080 (defaults to config)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog overlay file merged over the built-in catalog")
	cmd.Flags().StringVar(&corsOrigins, "cors-origins", "", "Comma-separated CORS origins; enables CORS")
	return cmd
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, rt *runtime, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		rt.log.Info().Str("addr", srv.Addr).Msg("modeler listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		rt.log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	return nil
}

// splitCSV splits a comma-separated list, trimming blanks and dropping empties.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
