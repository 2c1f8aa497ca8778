// Package middleware holds the cross-cutting HTTP wrappers: gateway
// identity extraction and request metrics.
package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey string

const userIDKey contextKey = "userID"

// HeaderUserID carries the authenticated portal user id, set by the API
// gateway after it has validated the session.
const HeaderUserID = "X-User-ID"

// Auth extracts the gateway-authenticated user id into the request
// context. Requests without a valid id pass through; handlers that need
// identity reject them via GetUserID.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(HeaderUserID); raw != "" {
			if userID, err := strconv.ParseInt(raw, 10, 64); err == nil && userID > 0 {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID returns the authenticated user id from the context.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
