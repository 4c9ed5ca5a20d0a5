// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/integration/cache"
)

// cacheBodyWriter tees the response body so it can be stored after the
// handler runs.
type cacheBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheBodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache serves repeated GET requests from Redis. Only 200
// responses are cached; mutations flush the cache through the change
// bus, so entries never outlive the data they were rendered from by
// more than delivery latency.
func ResponseCache(responseCache *cache.ResponseCache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			return
		}

		key := ctx.Request.URL.RequestURI()

		cached, err := responseCache.Get(ctx.Request.Context(), key)
		if err == nil {
			ctx.Data(cached.Status, cached.ContentType, cached.Body)
			ctx.Abort()
			return
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			// A broken cache must not break reads; fall through to the
			// handler.
			slog.Warn("Response cache read failed", "key", key, "error", err)
		}

		writer := &cacheBodyWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = writer

		ctx.Next()

		if ctx.Writer.Status() != http.StatusOK {
			return
		}

		entry := &cache.CachedResponse{
			Status:      ctx.Writer.Status(),
			ContentType: ctx.Writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		}
		if err := responseCache.Set(ctx.Request.Context(), key, entry); err != nil {
			slog.Warn("Response cache write failed", "key", key, "error", err)
		}
	}
}
