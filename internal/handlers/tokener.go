package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/harshXitachi/winmicro-wallet/internal/jwt"
)

// Tokener extracts the verified caller identity from a request. Handlers run
// behind the auth middleware, so failures here mean a malformed rather than
// a missing token.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// callerClaims resolves the caller's claims or writes a 401.
func callerClaims(w http.ResponseWriter, r *http.Request, tokener Tokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Unauthorized"})
		return nil, false
	}

	return claims, true
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
