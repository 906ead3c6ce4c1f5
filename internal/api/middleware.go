package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"go.uber.org/zap"
)

const requestIdHeader = "X-Request-Id"

func (s *CreatorHubApp) errorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				var panicError error
				switch e := err.(type) {
				case error:
					panicError = e
				default:
					panicError = fmt.Errorf("%v", e)
				}
				s.log.Error("panic", zap.Error(panicError), zap.String("path", r.URL.Path))
				w.Header().Set("Connection", "close")
				s.writeError(w, NewInternalServerError(panicError))
				return
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requestIdMiddleware keeps an incoming X-Request-Id or assigns a new one and
// echoes it on the response.
func (s *CreatorHubApp) requestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIdHeader, id)
		}
		w.Header().Set(requestIdHeader, id)

		next.ServeHTTP(w, r)
	})
}

func (s *CreatorHubApp) logHandler(next http.Handler) http.Handler {
	return handlers.CustomLoggingHandler(io.Discard, next, s.logRequest)
}

func (s *CreatorHubApp) logRequest(_ io.Writer, params handlers.LogFormatterParams) {
	s.log.Info("request",
		zap.String("method", params.Request.Method),
		zap.String("path", params.URL.Path),
		zap.Int("status", params.StatusCode),
		zap.Int("size", params.Size),
		zap.String("request_id", params.Request.Header.Get(requestIdHeader)),
		zap.Duration("duration", time.Since(params.TimeStamp)),
	)
}
