package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/lnbits-gallery/internal/jwt"
	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type authConfig struct {
	requiredRole  string
	loginRedirect string
}

// AuthOpt configures AuthMiddleware.
type AuthOpt func(*authConfig)

// WithRequiredRole additionally requires the token to carry the given role.
func WithRequiredRole(role string) AuthOpt {
	return func(c *authConfig) { c.requiredRole = role }
}

// WithLoginRedirect bounces failed requests to the login page instead of
// returning a bare denial. Used for page routes.
func WithLoginRedirect(path string) AuthOpt {
	return func(c *authConfig) { c.loginRedirect = path }
}

// AuthMiddleware returns a middleware that validates the session token and
// stores its claims in the request context. Malformed, expired and badly
// signed tokens are all treated the same way.
func AuthMiddleware(tokener Tokener, opts ...AuthOpt) func(http.Handler) http.Handler {
	cfg := authConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			deny := func(status int) {
				if cfg.loginRedirect != "" {
					http.Redirect(w, r, cfg.loginRedirect, http.StatusSeeOther)
					return
				}
				w.WriteHeader(status)
			}

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				deny(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				deny(http.StatusUnauthorized)
				return
			}

			if cfg.requiredRole != "" && claims.Role != cfg.requiredRole {
				logger.Log.Errorw("insufficient role", "username", claims.Username, "role", claims.Role)
				deny(http.StatusForbidden)
				return
			}

			ctx = setClaimsToContext(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var claimsKey = contextKey{}

// setClaimsToContext stores session claims in the context
func setClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves session claims from the context. Returns
// nil if not present.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}
