package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/auth"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/handler/http/response"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests whose token failed verification, is not
// an access token, or was revoked by logout. Runs after jwtauth.Verifier.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
