package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gend/internal/manager"
	"gend/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	GenerateProgressive(ctx context.Context, req types.GenerateRequest) (types.GenerateResponse, error)
	GenerateFull(ctx context.Context, req types.GenerateRequest) (types.TextResponse, error)
	Poll(id string) (types.ContinueResponse, error)
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.TestResponse{Status: "ok", Message: "text generation API is up"})
	})

	r.Post("/generate", func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		// Limit body size (configurable, default 1MiB)
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		// Empty prompts are allowed: the composed prompt degenerates to the
		// style instruction alone.

		lvl := requestLogLevel(r)
		start := time.Now()
		progressive := req.Progressive == nil || *req.Progressive
		if lvl >= LevelInfo {
			logGenerateStart(r, req, progressive)
		}
		// Join server base context with request context so shutdown cancels
		// the synchronous call too. The background completion runs on its
		// own context and is unaffected.
		joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()

		if !progressive {
			resp, err := svc.GenerateFull(joinedCtx, req)
			if err != nil {
				writeServiceError(w, r, err, lvl, start)
				return
			}
			writeJSON(w, resp)
			logGenerateEnd(r, lvl, http.StatusOK, start, nil)
			return
		}
		resp, err := svc.GenerateProgressive(joinedCtx, req)
		if err != nil {
			writeServiceError(w, r, err, lvl, start)
			return
		}
		writeJSON(w, resp)
		logGenerateEnd(r, lvl, http.StatusOK, start, nil)
	})

	r.Get("/continue_generation/{generation_id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "generation_id")
		resp, err := svc.Poll(id)
		if err != nil {
			if manager.IsSessionNotFound(err) {
				writeJSONError(w, http.StatusNotFound, err.Error())
				return
			}
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, resp)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// writeServiceError maps manager errors to HTTP status codes. The step-1
// engine failure path deliberately surfaces as a server error rather than
// being swallowed.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, lvl LogLevel, start time.Time) {
	status := http.StatusInternalServerError
	switch {
	case manager.IsSessionNotFound(err):
		status = http.StatusNotFound
	case manager.IsEngineUnavailable(err):
		status = http.StatusServiceUnavailable
	default:
		if he, ok := err.(HTTPError); ok {
			status = he.StatusCode()
		}
	}
	writeJSONError(w, status, err.Error())
	logGenerateEnd(r, lvl, status, start, err)
}

func logGenerateStart(r *http.Request, req types.GenerateRequest, progressive bool) {
	if zlog != nil {
		z := zlog.Info().Str("path", r.URL.Path).Str("style", req.Style).Bool("progressive", progressive)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		z.Msg("generate start")
		return
	}
	log.Printf("generate start path=%s style=%s progressive=%v", r.URL.Path, req.Style, progressive)
}

func logGenerateEnd(r *http.Request, lvl LogLevel, status int, start time.Time, err error) {
	if lvl < LevelInfo {
		return
	}
	if zlog != nil {
		z := zlog.Info().Int("status", status).Dur("dur", time.Since(start))
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		if err != nil {
			z = z.Err(err)
		}
		z.Msg("generate end")
		return
	}
	if err != nil {
		log.Printf("generate end status=%d dur=%s err=%v", status, time.Since(start), err)
		return
	}
	log.Printf("generate end status=%d dur=%s", status, time.Since(start))
}
