package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/response"
)

type contextKey string

const (
	// SubjectEmailKey carries the authenticated caller's email through the
	// request context. Handlers never trust identity fields in the payload.
	SubjectEmailKey contextKey = "subject_email"
	UserIDKey       contextKey = "user_id"
)

// AuthRequired verifies the presented token is a non-revoked access token
// and stashes the caller identity in the request context.
func AuthRequired(isRevoked func(string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if isRevoked != nil {
				if raw := jwtauth.TokenFromHeader(r); raw != "" && isRevoked(raw) {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
			}

			email, _ := claims["email"].(string)
			userID, _ := claims["user_id"].(string)

			ctx := context.WithValue(r.Context(), SubjectEmailKey, email)
			ctx = context.WithValue(ctx, UserIDKey, userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// SubjectEmail returns the authenticated caller's email, empty when absent.
func SubjectEmail(ctx context.Context) string {
	email, _ := ctx.Value(SubjectEmailKey).(string)
	return email
}

// UserID returns the authenticated caller's user id, empty when absent.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}
