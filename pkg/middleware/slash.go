package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash returns middleware that permanently redirects paths ending in a
// literal slash to the same path without it. The decision is made on the
// escaped path, so an encoded slash (%2F) inside a parameter is never
// trimmed. The root path "/" is left alone, as are paths ending in "//",
// which are not canonical in either form. Leading slashes and backslashes
// collapse to one so the Location is always a same-origin path.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.EscapedPath()
			if len(p) > 1 && strings.HasSuffix(p, "/") && !strings.HasSuffix(p, "//") {
				target := "/" + strings.TrimLeft(strings.TrimSuffix(p, "/"), `/\`)
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
