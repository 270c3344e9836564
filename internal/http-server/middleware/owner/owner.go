// Package owner takes the authenticated owner from the header set by the
// upstream auth proxy and stores it in the request context.
package owner

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"photofolio/internal/lib/api/response"
)

const DefaultHeader = "X-Owner-ID"

type ctxKey struct{}

func New(log *slog.Logger, header string) func(next http.Handler) http.Handler {
	if header == "" {
		header = DefaultHeader
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(header))
			if id == "" {
				log.Warn("request without owner", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		}

		return http.HandlerFunc(fn)
	}
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ID returns the owner stored by the middleware, or "" outside it.
func ID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
