package middleware

import (
	"context"
	"net/http"

	"github.com/oa-project/office-backend-go/internal/domain/auth"
	"github.com/oa-project/office-backend-go/internal/domain/user"
	"github.com/oa-project/office-backend-go/internal/handler/http/response"
)

type contextKey struct{ name string }

var userContextKey = &contextKey{"authenticated_user"}

// Authenticated resolves the Authorization header into a live user row and
// stores it in the request context. The user is re-read on every request, so
// a lock or department change takes effect immediately rather than at token
// expiry.
func Authenticated(authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			u, _, err := authService.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if u == nil {
				response.Unauthorized(w, "Authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, *u)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// UserFromContext returns the authenticated user stored by Authenticated.
func UserFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userContextKey).(user.User)
	return u, ok
}
