package http

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// SecurityHeaders adds the standard security header set to all responses.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent clickjacking
		c.Header("X-Frame-Options", "DENY")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Referrer policy - don't leak URLs to external sites
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Content Security Policy - unpkg is allowed for the API docs viewer
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' https://unpkg.com; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"frame-ancestors 'none'; "+
				"form-action 'self'")

		c.Next()
	}
}

// CSRFProtect wraps a handler with gorilla/csrf form protection. Enabled
// from the entrypoint when a secret is configured; it wraps the router
// (after method override) so that overridden PUT and DELETE requests are
// validated too.
func CSRFProtect(secret []byte, secure bool, next http.Handler) http.Handler {
	return csrf.Protect(
		secret,
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(csrfErrorHandler)),
	)(next)
}

// csrfErrorHandler handles CSRF validation failures.
func csrfErrorHandler(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"CSRF token invalid or missing"}`))
		return
	}

	// For form submissions, send the user back to where they came from
	if referer := r.Referer(); referer != "" {
		separator := "?"
		if strings.Contains(referer, "?") {
			separator = "&"
		}
		http.Redirect(w, r, referer+separator+"error=Session+expired.+Please+try+again.", http.StatusSeeOther)
		return
	}

	http.Error(w, "Forbidden - CSRF token invalid", http.StatusForbidden)
}

// csrfTemplateField exposes the hidden CSRF input to templates. It
// renders an empty value when CSRF protection is disabled.
func csrfTemplateField(c *gin.Context) template.HTML {
	return csrf.TemplateField(c.Request)
}
