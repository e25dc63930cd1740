// Ruthwik | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ruthwik2/storefront-admin/internal/core"
)

type contextKey string

const (
	AdminIDKey    contextKey = "admin_id"
	AdminEmailKey contextKey = "admin_email"
	AdminRoleKey  contextKey = "admin_role"
	ClaimsKey     contextKey = "token_claims"
)

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}

// TokenClaims is the decoded identity attached to every authenticated
// request: which administrator is acting, and as what role.
type TokenClaims struct {
	AdminID string
	Email   string
	Role    string
}

// Authenticator is the choke point in front of every protected route.
// Requests without a valid bearer token never reach the wrapped handler.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("missing authorization token"),
				)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// Expired and malformed tokens get the same answer;
				// the distinction stays server-side.
				core.JSONError(w, core.TokenError())
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, AdminIDKey, claims.AdminID)
			ctx = context.WithValue(ctx, AdminEmailKey, claims.Email)
			ctx = context.WithValue(ctx, AdminRoleKey, claims.Role)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := GetAdminRole(r.Context())

			if role == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("authentication required"),
				)
				return
			}

			if _, ok := roleSet[role]; !ok {
				core.JSONError(
					w,
					core.ForbiddenError("insufficient permissions"),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole("admin")(next)
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetAdminID(ctx context.Context) string {
	if id, ok := ctx.Value(AdminIDKey).(string); ok {
		return id
	}
	return ""
}

func GetAdminEmail(ctx context.Context) string {
	if email, ok := ctx.Value(AdminEmailKey).(string); ok {
		return email
	}
	return ""
}

func GetAdminRole(ctx context.Context) string {
	if role, ok := ctx.Value(AdminRoleKey).(string); ok {
		return role
	}
	return ""
}

func GetClaims(ctx context.Context) *TokenClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*TokenClaims); ok {
		return claims
	}
	return nil
}

func IsAuthenticated(ctx context.Context) bool {
	return GetAdminID(ctx) != ""
}
