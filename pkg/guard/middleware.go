package guard

import (
	"net/http"

	"github.com/scoutdeck/scoutdeck/pkg/access"
)

// Require gates a route on a capability, resolving the acting user from the
// request context. Requests without a user or without the capability get a
// 403; like the component guards this is an affordance gate for UI routes,
// not an authorization perimeter.
func Require(cap access.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := access.UserFromContext(r.Context())
			if !ok || !access.Allowed(u, cap) {
				http.Error(w, "Access Restricted", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
