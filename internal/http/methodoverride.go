package http

import "net/http"

// methodOverrideField is the form field or query parameter browsers use
// to tunnel PUT and DELETE through a POST.
const methodOverrideField = "_method"

// MethodOverride wraps a handler and rewrites POST requests carrying a
// _method marker into the marked method. It must wrap the router rather
// than run as router middleware, because route matching happens on the
// method before any middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			// FormValue checks the query string first, then the parsed
			// body. The parsed form stays cached on the request, so
			// handlers still see every field.
			switch r.FormValue(methodOverrideField) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
