package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/tartampluch/go-nextbirthday/internal/config"
)

// requestLogger writes one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info(config.MsgRequestServed,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyMethod, r.Method,
			config.LogKeyPath, r.URL.Path,
			config.LogKeyStatus, ww.Status(),
			config.LogKeyDuration, time.Since(start).Milliseconds(),
		)
	})
}

// recoverer converts panics below the router into the service's JSON
// error shape instead of a plain-text 500. A panic here is a
// programming error; the validated request path never reaches it.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error(config.ErrPanicRecovered,
					config.LogKeyComponent, config.CompServer,
					config.LogKeyPath, r.URL.Path,
					config.LogKeyError, fmt.Sprint(rec),
				)
				writeError(w, http.StatusInternalServerError, config.HTTPMsgInternalErr)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
