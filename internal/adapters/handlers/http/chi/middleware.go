package chi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// videoIDParam is the route parameter naming a video across the api, web and sandbox routes
const videoIDParam = "videoID"

// LoggerMiddleware logs one line per request, tagged with the video id when
// the matched route has one. Requests to skipPaths are not logged.
func LoggerMiddleware(l *slog.Logger, skipPaths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				attrs := []any{
					"request_id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				}
				// subrouters fill the shared route context, so params are known once next returned
				if rctx := chi.RouteContext(r.Context()); rctx != nil {
					if id := rctx.URLParam(videoIDParam); id != "" {
						attrs = append(attrs, "video_id", id)
					}
				}

				level := slog.LevelInfo
				if ww.Status() >= http.StatusInternalServerError {
					level = slog.LevelWarn
				}
				l.Log(r.Context(), level, "http_request", attrs...)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
