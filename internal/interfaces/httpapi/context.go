package httpapi

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

// UserHeader lets a caller act as a specific catalog user. Without it the demo user is assumed.
const UserHeader = "X-User-ID"

func withUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok && userID != ""
}

// ResolveUser attaches the acting user id to the request context.
func ResolveUser(defaultUserID string, next http.Handler) http.Handler {
	fallback := strings.TrimSpace(defaultUserID)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.ResolveUser")
		defer span.End()

		userID := strings.TrimSpace(r.Header.Get(UserHeader))
		if userID == "" {
			userID = fallback
		}

		next.ServeHTTP(w, r.WithContext(withUserID(ctx, userID)))
	})
}
