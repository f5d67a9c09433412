package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/harshXitachi/winmicro-wallet/internal/jwt"
	"github.com/harshXitachi/winmicro-wallet/internal/logger"
)

// ClaimsTokener resolves a request to its verified caller identity.
type ClaimsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AdminMiddleware returns a middleware that only lets back-office operators
// through. Missing or invalid tokens get 401; valid non-admin tokens get 403.
func AdminMiddleware(tokener ClaimsTokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if !claims.IsAdmin {
				logger.Log.Warnw("admin operation attempted by non-admin", "user_id", claims.UserID)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"error": "Forbidden"})
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
