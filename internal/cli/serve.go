package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toolradar/pkg/cache"
	"github.com/matzehuels/toolradar/pkg/dataset"
	"github.com/matzehuels/toolradar/pkg/errors"
	"github.com/matzehuels/toolradar/pkg/pipeline"
)

// serveCommand creates the serve command, a small preview server that renders
// radars on demand.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		datasetP  string
		mongoURI  string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve radar previews over HTTP",
		Long: `Serve radar previews over HTTP.

The server renders a local dataset at /radar.svg with query parameters for
type, style, popups, search, and frame size. With --mongo it additionally
exposes published team datasets under /datasets.

Rendered artifacts are cached; pass --redis to share the cache between
server instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if datasetP == "" && mongoURI == "" {
				return errors.New(errors.ErrCodeInvalidInput, "serve needs --dataset or --mongo")
			}
			return c.runServe(cmd.Context(), serveConfig{
				addr:      addr,
				dataset:   datasetP,
				mongoURI:  mongoURI,
				redisAddr: redisAddr,
				noCache:   noCache,
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&datasetP, "dataset", "d", "", "local dataset file to serve")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for published datasets")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for a shared artifact cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// serveConfig bundles the serve command flags.
type serveConfig struct {
	addr      string
	dataset   string
	mongoURI  string
	redisAddr string
	noCache   bool
}

// server holds the HTTP handler state.
type server struct {
	cli     *CLI
	runner  *pipeline.Runner
	store   *dataset.Store
	dataset string
}

func (c *CLI) runServe(ctx context.Context, cfg serveConfig) error {
	store, err := c.serveCache(ctx, cfg)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	s := &server{cli: c, runner: runner, dataset: cfg.dataset}
	if cfg.mongoURI != "" {
		st, err := dataset.NewStore(ctx, dataset.StoreConfig{URI: cfg.mongoURI})
		if err != nil {
			return err
		}
		defer st.Close(context.Background())
		s.store = st
	}

	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	c.Logger.Info("serving radar previews", "addr", cfg.addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// serveCache picks the cache backend for the server.
func (c *CLI) serveCache(ctx context.Context, cfg serveConfig) (cache.Cache, error) {
	if cfg.noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: cfg.redisAddr})
	}
	return newCache(false)
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if s.dataset != "" {
		r.Get("/radar.svg", s.handleRadar)
		r.Get("/layout.json", s.handleLayout)
	}
	if s.store != nil {
		r.Get("/datasets", s.handleDatasetList)
		r.Get("/datasets/{name}.svg", s.handleDatasetRadar)
	}

	return r
}

// requestLogger tags every request with a UUID and logs its completion.
func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		logger := s.cli.Logger.With("request_id", id)
		ctx := withLogger(r.Context(), logger)

		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// handleRadar renders the configured local dataset as SVG.
func (s *server) handleRadar(w http.ResponseWriter, r *http.Request) {
	opts := optionsFromQuery(r)
	opts.Dataset = s.dataset

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}

// handleLayout returns the computed layout for the configured dataset.
func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts := optionsFromQuery(r)
	opts.Dataset = s.dataset

	ds, err := s.runner.Load(r.Context(), opts)
	if err != nil {
		writeHTTPError(w, err)
		return
	}
	layout, err := s.runner.Position(r.Context(), ds, opts)
	if err != nil {
		writeHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(layout)
}

// handleDatasetList returns summaries of published datasets.
func (s *server) handleDatasetList(w http.ResponseWriter, r *http.Request) {
	infos, err := s.store.List(r.Context())
	if err != nil {
		writeHTTPError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(infos)
}

// handleDatasetRadar renders a published dataset as SVG.
func (s *server) handleDatasetRadar(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	ds, err := s.store.FetchStored(r.Context(), name)
	if err != nil {
		writeHTTPError(w, err)
		return
	}

	opts := optionsFromQuery(r)
	opts.Dataset = "mongo:" + name // source label for logs, never read as a path
	if err := opts.ValidateForRender(); err != nil {
		writeHTTPError(w, err)
		return
	}

	layout, err := s.runner.Position(r.Context(), ds, opts)
	if err != nil {
		writeHTTPError(w, err)
		return
	}
	artifacts, err := s.runner.Render(r.Context(), layout, opts)
	if err != nil {
		writeHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(artifacts[pipeline.FormatSVG])
}

// optionsFromQuery builds pipeline options from request query parameters.
func optionsFromQuery(r *http.Request) pipeline.Options {
	q := r.URL.Query()
	opts := pipeline.Options{
		VizType:       q.Get("type"),
		Style:         q.Get("style"),
		Formats:       []string{pipeline.FormatSVG},
		Popups:        boolParam(q.Get("popups"), true),
		Search:        boolParam(q.Get("search"), false),
		OpenOutermost: boolParam(q.Get("open"), false),
		Detailed:      boolParam(q.Get("detailed"), false),
	}
	if v, err := strconv.ParseFloat(q.Get("width"), 64); err == nil && v > 0 {
		opts.Width = v
	}
	if v, err := strconv.ParseFloat(q.Get("height"), 64); err == nil && v > 0 {
		opts.Height = v
	}
	return opts
}

// boolParam parses a query flag, empty means the default.
func boolParam(s string, def bool) bool {
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

// writeHTTPError maps structured error codes to HTTP statuses.
func writeHTTPError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeDatasetNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDataset, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidVizType, errors.ErrCodeInvalidRings:
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
