package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quiz-arena/internal/config"
)

type ctxKey struct{}

const CookieName = "admin_token"

func tokenFrom(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

// AdminMiddleware admits requests carrying a valid admin token, from the
// Authorization header or the admin cookie.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		token := tokenFrom(r)
		if token == "" {
			log.Debug("Admin request without token")
			config.WriteError(w, ErrUnauthorized)
			return
		}

		claims, err := ValidateJWT(token)
		if err != nil {
			log.WithError(err).Warn("Rejected admin token")
			config.WriteError(w, ErrUnauthorized)
			return
		}
		if claims.Role != RoleAdmin {
			log.WithFields(logrus.Fields{"username": claims.Username, "role": claims.Role}).Warn("Token lacks admin role")
			config.WriteError(w, ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(ctxKey{}).(*Claims)
	if !ok || claims == nil {
		return nil, ErrUnauthorized
	}
	return claims, nil
}
