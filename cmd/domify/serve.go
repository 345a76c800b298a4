package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/domify-dev/domify/internal/config"
	clierrors "github.com/domify-dev/domify/internal/errors"
	"github.com/domify-dev/domify/pkg/diag"
	"github.com/domify-dev/domify/pkg/render"
)

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve a live preview of a YAML document",
		Long: `Serve FILE as HTML on --addr. The document is reloaded on every request,
so edits show up on refresh. Attribute warnings are counted in Prometheus
metrics on /metrics.`,
		Args: fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector())
			metrics := diag.NewMetrics(diag.WithRegistry(reg))

			srv := &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           newPreviewRouter(a, args[0], metrics, reg),
				ReadHeaderTimeout: 5 * time.Second,
			}
			a.logger.Info("serving preview", "addr", a.cfg.Addr, "file", args[0])
			return serve(ctx, srv)
		},
	}

	cmd.Flags().String(config.KeyAddr, config.DefaultAddr, "listen address")

	return cmd
}

// serve runs srv until ctx is done, then shuts it down.
func serve(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newPreviewRouter(a *app, path string, metrics *diag.Metrics, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		root, warnings, err := a.load(path, metrics)
		if err != nil {
			a.logger.Error("document failed to load", "file", path, "error", err)
			http.Error(w, compact(err), http.StatusUnprocessableEntity)
			return
		}

		var buf bytes.Buffer
		start := time.Now()
		err = render.NewRenderer(a.cfg.RendererConfig()).RenderContext(req.Context(), &buf, root)
		metrics.ObserveRender(time.Since(start))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := a.checkStrict(warnings); err != nil {
			w.Header().Set("X-Domify-Warnings", strconv.Itoa(warnings.Len()))
			http.Error(w, compact(err), http.StatusUnprocessableEntity)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

// compact renders err on one line for a response body.
func compact(err error) string {
	var e *clierrors.Error
	if errors.As(err, &e) {
		return e.FormatCompact()
	}
	return err.Error()
}
