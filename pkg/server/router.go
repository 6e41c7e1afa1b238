package server

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fakegen/pkg/catalog"
	"github.com/dmitrymomot/fakegen/pkg/generator"
	"github.com/dmitrymomot/fakegen/pkg/logger"
)

// DefaultMaxCount caps the count query parameter when RouterOptions.MaxCount is zero.
const DefaultMaxCount = 1000

// RouterOptions configures the sampling API.
type RouterOptions struct {
	// Catalogs keyed by locale name, e.g. the result of catalog.LoadAll.
	Catalogs map[string]*catalog.Catalog
	// DefaultLocale is used when neither ?locale nor Accept-Language resolves.
	// Defaults to catalog.DefaultLocale when present, else the first locale.
	DefaultLocale string
	MaxCount      int
	Logger        *slog.Logger
}

type api struct {
	catalogs      map[string]*catalog.Catalog
	locales       []string
	defaultLocale string
	maxCount      int
	log           *slog.Logger
}

// Router returns the HTTP sampling API:
//
//	GET /healthz
//	GET /v1/locales
//	GET /v1/generators?locale=
//	GET /v1/generators/{name}?locale=&seed=&count=
func Router(opts RouterOptions) (chi.Router, error) {
	if len(opts.Catalogs) == 0 {
		return nil, ErrNoCatalogs
	}

	a := &api{
		catalogs: opts.Catalogs,
		locales:  slices.Sorted(maps.Keys(opts.Catalogs)),
		maxCount: opts.MaxCount,
		log:      opts.Logger,
	}
	if a.maxCount <= 0 {
		a.maxCount = DefaultMaxCount
	}
	if a.log == nil {
		a.log = logger.Noop()
	}

	switch {
	case opts.DefaultLocale != "":
		l, err := catalog.ResolveLocale(opts.DefaultLocale, a.locales...)
		if err != nil {
			return nil, fmt.Errorf("default locale: %w", err)
		}
		a.defaultLocale = l
	case opts.Catalogs[catalog.DefaultLocale] != nil:
		a.defaultLocale = catalog.DefaultLocale
	default:
		a.defaultLocale = a.locales[0]
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(a.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", HealthCheckHandler)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/locales", a.listLocales)
		r.Get("/generators", a.listGenerators)
		r.Get("/generators/{name}", a.sample)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, a.log, notFound("not_found", "no such endpoint"))
	})

	return r, nil
}

// HealthCheckHandler reports liveness.
func HealthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (a *api) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.log.DebugContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

func (a *api) listLocales(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, response{Data: a.locales})
}

type localeMeta struct {
	Locale string `json:"locale"`
}

func (a *api) listGenerators(w http.ResponseWriter, r *http.Request) {
	c, err := a.catalogFor(r)
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, response{
		Data: c.Names(),
		Meta: localeMeta{Locale: c.Locale()},
	})
}

type sampleMeta struct {
	Generator string `json:"generator"`
	Locale    string `json:"locale"`
	// Seed is a string so JavaScript clients keep all 64 bits.
	Seed  uint64 `json:"seed,string"`
	Count int    `json:"count"`
}

func (a *api) sample(w http.ResponseWriter, r *http.Request) {
	c, err := a.catalogFor(r)
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}

	name := chi.URLParam(r, "name")
	g, err := c.Get(name)
	if err != nil {
		if errors.Is(err, catalog.ErrGeneratorNotFound) {
			err = notFound("generator_not_found", fmt.Sprintf("generator %q does not exist in locale %q", name, c.Locale()))
		}
		writeError(w, r, a.log, err)
		return
	}

	seed, err := parseSeed(r.URL.Query().Get("seed"))
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}
	count, err := a.parseCount(r.URL.Query().Get("count"))
	if err != nil {
		writeError(w, r, a.log, err)
		return
	}

	values := g.SampleN(generator.NewSource(seed), count)
	a.log.InfoContext(r.Context(), "sampled",
		logger.Generator(name),
		logger.Locale(c.Locale()),
		logger.Seed(seed),
		logger.Count(count),
	)
	writeJSON(w, http.StatusOK, response{
		Data: values,
		Meta: sampleMeta{Generator: name, Locale: c.Locale(), Seed: seed, Count: count},
	})
}

// catalogFor picks the catalog from ?locale, then Accept-Language, then the default.
// An explicit but unsupported ?locale is an error; an unmatched header is not.
func (a *api) catalogFor(r *http.Request) (*catalog.Catalog, error) {
	if q := r.URL.Query().Get("locale"); q != "" {
		l, err := catalog.ResolveLocale(q, a.locales...)
		if err != nil {
			return nil, badRequest("unsupported_locale", fmt.Sprintf("locale %q is not supported", q))
		}
		return a.catalogs[l], nil
	}
	if h := r.Header.Get("Accept-Language"); h != "" {
		if l, err := catalog.ResolveLocale(h, a.locales...); err == nil {
			return a.catalogs[l], nil
		}
	}
	return a.catalogs[a.defaultLocale], nil
}

func parseSeed(s string) (uint64, error) {
	if s == "" {
		return generator.RandomSeed(), nil
	}
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, badRequest("invalid_seed", "seed must be an unsigned 64-bit integer")
	}
	return seed, nil
}

func (a *api) parseCount(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > a.maxCount {
		return 0, badRequest("invalid_count", fmt.Sprintf("count must be between 1 and %d", a.maxCount))
	}
	return n, nil
}
