package logger

import (
	"net/http"
	"time"

	// Packages
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Middleware logs each HTTP request after it has been served
type Middleware struct {
	log zerolog.Logger
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewMiddleware(log zerolog.Logger) *Middleware {
	return &Middleware{log: WithComponent(log, "http")}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WrapFunc returns a handler which calls next and logs the method, path,
// status and duration of the request
func (m *Middleware) WrapFunc(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)

		evt := m.log.Info()
		if sw.status >= http.StatusBadRequest {
			evt = m.log.Warn()
		}
		evt.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg(http.StatusText(sw.status))
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
