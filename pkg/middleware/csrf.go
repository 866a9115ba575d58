package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
)

// CSRF wraps h with gorilla/csrf protection for form posts. Paths starting
// with one of skipPrefixes (machine-to-machine JSON endpoints) are exempt.
// When secure is false requests are treated as plain HTTP, for local use.
func CSRF(h http.Handler, key []byte, secure bool, skipPrefixes ...string) http.Handler {
	protect := csrf.Protect(key,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.RequestHeader("X-CSRF-Token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)(h)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !secure {
			r = csrf.PlaintextHTTPRequest(r)
		}
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				r = csrf.UnsafeSkipCheck(r)
				break
			}
		}
		protect.ServeHTTP(w, r)
	})
}
