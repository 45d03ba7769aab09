package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// --- Response Types ---

// ErrorResponse is the standard error response format. Failures are
// always JSON, even on routes whose success path renders HTML.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server
// Error response. The actual error is logged but not exposed to the
// client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// --- Form Parsing ---

// postFormFloat reads a form field as a number. supplied is false when
// the field is absent, unparsable, or zero; the update handlers treat
// all three as "not supplied" and fall back.
func postFormFloat(c *gin.Context, name string) (value float64, supplied bool) {
	raw, ok := c.GetPostForm(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return v, true
}

// postFormInt is postFormFloat for integer fields.
func postFormInt(c *gin.Context, name string) (value int, supplied bool) {
	raw, ok := c.GetPostForm(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v == 0 {
		return 0, false
	}
	return v, true
}

// postFormArray reads a repeated form field, accepting both the bare name
// and the bracketed variant browsers send for multi-selects.
func postFormArray(c *gin.Context, name string) []string {
	values := c.PostFormArray(name)
	if len(values) == 0 {
		values = c.PostFormArray(name + "[]")
	}
	return values
}
