package middleware

import (
	"net/http"
	"strings"
)

// CORS allows the dashboard front end to call the API from another origin.
// allowedOrigins is a comma-separated list; "*" (the default) allows any
// origin. Preflight requests are answered here and never reach the handlers.
func CORS(allowedOrigins string, next http.Handler) http.Handler {
	allowAll, origins := parseOrigins(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origins[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func parseOrigins(raw string) (allowAll bool, origins map[string]bool) {
	origins = make(map[string]bool)
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			return true, nil
		}
		origins[o] = true
	}
	if len(origins) == 0 {
		return true, nil
	}
	return false, origins
}
