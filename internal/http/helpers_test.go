package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func formContext(t *testing.T, form url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestPostFormFloat(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		wantValue    float64
		wantSupplied bool
	}{
		{"valid value", url.Values{"rating": {"4.5"}}, 4.5, true},
		{"absent field", url.Values{}, 0, false},
		{"empty value", url.Values{"rating": {""}}, 0, false},
		{"unparsable value", url.Values{"rating": {"high"}}, 0, false},
		{"zero treated as missing", url.Values{"rating": {"0"}}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := formContext(t, tt.form)
			value, supplied := postFormFloat(c, "rating")
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantSupplied, supplied)
		})
	}
}

func TestPostFormInt(t *testing.T) {
	c := formContext(t, url.Values{"pages": {"320"}})
	value, supplied := postFormInt(c, "pages")
	assert.True(t, supplied)
	assert.Equal(t, 320, value)

	c = formContext(t, url.Values{"pages": {"0"}})
	_, supplied = postFormInt(c, "pages")
	assert.False(t, supplied)

	c = formContext(t, url.Values{"pages": {"32.5"}})
	_, supplied = postFormInt(c, "pages")
	assert.False(t, supplied)
}

func TestPostFormArray(t *testing.T) {
	c := formContext(t, url.Values{"categories": {"Fantasy", "Classics"}})
	assert.Equal(t, []string{"Fantasy", "Classics"}, postFormArray(c, "categories"))

	c = formContext(t, url.Values{"categories[]": {"Fantasy"}})
	assert.Equal(t, []string{"Fantasy"}, postFormArray(c, "categories"))

	c = formContext(t, url.Values{})
	assert.Empty(t, postFormArray(c, "categories"))
}

func TestErrorResponsesAreJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/missing", func(c *gin.Context) { respondNotFound(c, "Fairytale") })
	router.GET("/bad", func(c *gin.Context) { respondBadRequest(c, "Title and rating are required fields") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/missing", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"error":"Fairytale not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/bad", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Title and rating are required fields"}`, w.Body.String())
}
