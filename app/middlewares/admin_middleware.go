package middlewares

import (
	"log"
	"net/http"

	"github.com/zeylcoffee/qrmenu/app/utils/sessions"
)

// AdminAuthMiddleware gates the admin panel on the session flag. Anonymous
// visitors are sent to the login page, never an error response.
func AdminAuthMiddleware(sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessionStore.IsAdmin(r) {
				log.Printf("AdminAuthMiddleware: unauthenticated access to %s, redirecting to login", r.URL.Path)
				http.Redirect(w, r, "/admin/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
