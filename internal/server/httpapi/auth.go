package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/testdash/internal/common"
	"github.com/dmitrijs2005/testdash/internal/logging"
	"github.com/dmitrijs2005/testdash/internal/server/models"
)

// Authenticator resolves a bearer token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// RequireAuth admits a request only when it carries a valid bearer token for
// an existing user. The resolved user is available via UserFromContext.
func RequireAuth(a Authenticator, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get(common.AuthorizationHeaderName))
			if !ok {
				writeServiceError(w, r, logger, common.ErrorUnauthorized, msgInvalidToken)
				return
			}

			user, err := a.Authenticate(r.Context(), token)
			if err != nil {
				writeServiceError(w, r, logger, err, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user attached by RequireAuth.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok && u != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
