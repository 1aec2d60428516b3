package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MadanRavuri/pg-backend/internal/auth"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

type contextKey string

// ContextKeyUserID carries the authenticated user's id through the
// request context.
const ContextKeyUserID contextKey = "userID"

// Auth validates a Bearer JWT and stores the subject in the request
// context.
func Auth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				utils.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					utils.RespondError(w, http.StatusUnauthorized, "token expired")
					return
				}
				utils.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			sub, ok := claims["sub"].(string)
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, "missing subject")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
