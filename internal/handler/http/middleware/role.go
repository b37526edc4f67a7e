package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/user"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/handler/http/response"
)

// AdminOnly allows the admin role through.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := claimRole(r)
		if !ok || role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ScannerOrAdmin allows the roles that may operate the scan station and
// manage employees.
func ScannerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := claimRole(r)
		if !ok || (role != user.RoleAdmin && role != user.RoleScanner) {
			response.HandleError(w, user.ErrScannerRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func claimRole(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}
