package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omelnyk/taleshelf/internal/apidoc"
	"github.com/omelnyk/taleshelf/internal/database"
)

// RouterConfig carries all dependencies for the HTTP layer.
type RouterConfig struct {
	Fairytales FairytaleStore
	Books      BookStore
	Authors    AuthorStore
	Categories CategoryStore

	Database *database.Database
	Sessions *SessionManager

	TemplatesPath string
	StaticPath    string
	StorageMode   string
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeaders())

	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.LoadSave())
	}

	funcMap := template.FuncMap{
		"add":      func(a, b int) int { return a + b },
		"subtract": func(a, b int) int { return a - b },
		"until":    untilSeq,
	}
	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	health := NewHealthController(cfg.Database, cfg.Fairytales, cfg.StorageMode, cfg.Version)
	fairytales := NewFairytalesController(cfg.Fairytales, cfg.Sessions)
	books := NewBooksController(cfg.Books, cfg.Authors, cfg.Categories, cfg.Sessions)

	docs := apidoc.NewRegistry("Taleshelf API", cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/fairytales")
	})

	registerFairytaleRoutes(router, docs, fairytales)
	registerBookRoutes(router, docs, books)

	// API documentation
	router.GET("/docs/openapi.json", docs.Handler())
	router.GET("/docs", func(c *gin.Context) {
		c.HTML(http.StatusOK, "docs", gin.H{"SpecURL": "/docs/openapi.json"})
	})

	return router
}

var listParams = []apidoc.Param{
	{Name: "page", In: "query", Type: "integer", Description: "Page number, starting at 1"},
	{Name: "limit", In: "query", Type: "integer", Description: "Items per page (alias: items_per_page)"},
}

func registerFairytaleRoutes(router *gin.Engine, docs *apidoc.Registry, fc *FairytalesController) {
	router.GET("/fairytales", fc.List)
	docs.Add("GET", "/fairytales", apidoc.Operation{
		Tag:       "Fairytales",
		Summary:   "List fairytales",
		Params:    listParams,
		Responses: map[string]string{"200": "Rendered fairytale list", "500": "Server error"},
	})

	router.GET("/fairytales/:id", fc.GetByID)
	docs.Add("GET", "/fairytales/:id", apidoc.Operation{
		Tag:       "Fairytales",
		Summary:   "Get a fairytale",
		Responses: map[string]string{"200": "Rendered fairytale", "404": "Fairytale not found", "500": "Server error"},
	})

	router.POST("/fairytales", fc.Create)
	docs.Add("POST", "/fairytales", apidoc.Operation{
		Tag:      "Fairytales",
		Summary:  "Create a fairytale",
		FormBody: map[string]string{"title": "string", "rating": "number", "description": "string"},
		Responses: map[string]string{
			"302": "Redirect to the new fairytale",
			"400": "Missing required field",
			"500": "Server error",
		},
	})

	router.PUT("/fairytales/:id", fc.Update)
	docs.Add("PUT", "/fairytales/:id", apidoc.Operation{
		Tag:      "Fairytales",
		Summary:  "Update a fairytale",
		FormBody: map[string]string{"title": "string", "rating": "number", "description": "string"},
		Responses: map[string]string{
			"200": "Rendered updated fairytale",
			"404": "Fairytale not found",
			"500": "Server error",
		},
	})

	router.DELETE("/fairytales/:id", fc.Delete)
	docs.Add("DELETE", "/fairytales/:id", apidoc.Operation{
		Tag:     "Fairytales",
		Summary: "Delete a fairytale",
		Responses: map[string]string{
			"302": "Redirect to the fairytale list",
			"404": "Fairytale not found (in-memory storage)",
			"500": "Server error",
		},
	})
}

func registerBookRoutes(router *gin.Engine, docs *apidoc.Registry, bc *BooksController) {
	router.GET("/books", bc.List)
	docs.Add("GET", "/books", apidoc.Operation{
		Tag:       "Books",
		Summary:   "List books",
		Params:    listParams,
		Responses: map[string]string{"200": "Rendered book list", "500": "Server error"},
	})

	router.GET("/books/:id", bc.GetByID)
	docs.Add("GET", "/books/:id", apidoc.Operation{
		Tag:       "Books",
		Summary:   "Get a book",
		Responses: map[string]string{"200": "Rendered book", "404": "Book not found", "500": "Server error"},
	})

	router.POST("/books", bc.Create)
	docs.Add("POST", "/books", apidoc.Operation{
		Tag:      "Books",
		Summary:  "Create a book",
		FormBody: map[string]string{"title": "string", "author": "string", "pages": "integer"},
		Responses: map[string]string{
			"302": "Redirect to the new book",
			"400": "Missing required field",
			"500": "Server error",
		},
	})

	router.PUT("/books/:id", bc.Update)
	docs.Add("PUT", "/books/:id", apidoc.Operation{
		Tag:     "Books",
		Summary: "Update a book",
		FormBody: map[string]string{
			"title":         "string",
			"author":        "string",
			"pages":         "integer",
			"categories":    "string[]",
			"newCategories": "string[]",
		},
		Responses: map[string]string{
			"200": "Rendered updated book",
			"404": "Book not found",
			"500": "Server error",
		},
	})

	router.DELETE("/books/:id", bc.Delete)
	docs.Add("DELETE", "/books/:id", apidoc.Operation{
		Tag:     "Books",
		Summary: "Delete a book",
		Responses: map[string]string{
			"302": "Redirect to the book list",
			"500": "Server error",
		},
	})
}

// untilSeq generates page numbers for the pagination controls.
func untilSeq(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i + 1
	}
	return seq
}
