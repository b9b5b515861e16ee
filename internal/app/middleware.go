package app

import (
	"net/http"
	"strings"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "authorization, x-client-info, apikey, content-type",
	"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
}

// withCORS attaches the cross-origin header set to every response and
// answers preflight requests directly with a 200 "ok".
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for key, value := range corsHeaders {
			w.Header().Set(key, value)
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// stripPrefixes rewrites the request path before route matching so the
// same route table works behind a deployment prefix and bare.
func stripPrefixes(prefixes []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = normalizePath(r.URL.Path, prefixes)
		next.ServeHTTP(w, r)
	})
}

// normalizePath strips the first matching prefix, at most once. A prefix
// only matches at a segment boundary; the rest of the path, including any
// trailing slash, is kept as-is.
func normalizePath(path string, prefixes []string) string {
	for _, prefix := range prefixes {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := path[len(prefix):]
		if rest == "" {
			return "/"
		}
		if strings.HasPrefix(rest, "/") {
			return rest
		}
	}
	return path
}
