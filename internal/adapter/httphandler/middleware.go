package httphandler

import (
	"cmp"
	"crypto/subtle"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

// ActorHeader carries the name of the admin making the request.
const ActorHeader = "X-Admin-User"

type Middleware func(http.Handler) http.Handler

// Chain applies mws so that the first one is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// AllowJSON rejects request bodies that are not JSON. Multipart bodies are
// let through to the image upload route.
func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		switch {
		case err != nil:
		case mt == "application/json":
			next.ServeHTTP(w, r)
			return
		case mt == "multipart/form-data" && r.URL.Path == imagesPath:
			next.ServeHTTP(w, r)
			return
		}

		writeErrorMessage(w, http.StatusUnsupportedMediaType, "invalid media type")
	}
	return http.HandlerFunc(hf)
}

// RequireToken checks the bearer token. An empty token disables the check.
// The health probe is always open.
func RequireToken(token string) Middleware {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		hf := func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == healthPath {
				next.ServeHTTP(w, r)
				return
			}
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writeErrorMessage(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hf)
	}
}

// WithActor stores the [ActorHeader] value in the request context.
func WithActor(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if name := actorName(r); name != "" {
			r = r.WithContext(domain.WithActor(r.Context(), name))
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

func actorName(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(ActorHeader))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

func LogRequests(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		slog.Info(
			"request",
			"op", "httphandler.LogRequests",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"size", rec.size,
			"actor", cmp.Or(actorName(r), domain.DefaultActor),
			"duration", time.Since(start),
		)
	}
	return http.HandlerFunc(hf)
}
