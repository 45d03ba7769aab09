package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func recordMethod(seen *string, fields *url.Values) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = r.Method
		if fields != nil {
			_ = r.ParseForm()
			*fields = r.PostForm
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMethodOverride(t *testing.T) {
	t.Run("rewrites POST with _method in the query string", func(t *testing.T) {
		var seen string
		handler := MethodOverride(recordMethod(&seen, nil))

		req := httptest.NewRequest("POST", "/fairytales/abc?_method=DELETE", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, http.MethodDelete, seen)
	})

	t.Run("rewrites POST with _method in the form body", func(t *testing.T) {
		var seen string
		var fields url.Values
		handler := MethodOverride(recordMethod(&seen, &fields))

		form := url.Values{"_method": {"PUT"}, "title": {"Kolobok"}}
		req := httptest.NewRequest("POST", "/fairytales/abc", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, http.MethodPut, seen)
		assert.Equal(t, "Kolobok", fields.Get("title"))
	})

	t.Run("ignores unknown override values", func(t *testing.T) {
		var seen string
		handler := MethodOverride(recordMethod(&seen, nil))

		req := httptest.NewRequest("POST", "/fairytales?_method=PATCH", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, http.MethodPost, seen)
	})

	t.Run("leaves non-POST requests alone", func(t *testing.T) {
		var seen string
		handler := MethodOverride(recordMethod(&seen, nil))

		req := httptest.NewRequest("GET", "/fairytales?_method=DELETE", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, http.MethodGet, seen)
	})
}
