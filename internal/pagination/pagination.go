// Package pagination implements the page/limit slicing used by all list
// endpoints.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Params holds the requested page and page size, after defaults have been
// applied.
type Params struct {
	Page    int
	PerPage int
}

// Page describes one slice of a collection.
type Page struct {
	Offset      int
	CurrentPage int
	PerPage     int
	TotalPages  int
}

// FromQuery reads "page" and "limit" from the query string. "items_per_page"
// is accepted as an alias for "limit". Missing or malformed values fall back
// to the defaults.
func FromQuery(c *gin.Context) Params {
	page := parsePositive(c.Query("page"), DefaultPage)

	limitStr := c.Query("limit")
	if limitStr == "" {
		limitStr = c.Query("items_per_page")
	}
	perPage := parsePositive(limitStr, DefaultPerPage)

	return Params{Page: page, PerPage: perPage}
}

// Paginate computes the zero-based offset and total page count for a
// collection of total items. page and perPage below 1 fall back to the
// defaults. totalPages is 0 when the collection is empty.
func Paginate(total int64, page, perPage int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return Page{
		Offset:      (page - 1) * perPage,
		CurrentPage: page,
		PerPage:     perPage,
		TotalPages:  totalPages,
	}
}

func parsePositive(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
