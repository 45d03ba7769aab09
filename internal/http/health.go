package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omelnyk/taleshelf/internal/database"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Storage string            `json:"storage,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthController reports database connectivity and fairytale store
// reachability. The two can differ: in memory storage mode the fairytale
// store lives in process while books stay on the database.
type HealthController struct {
	db      *database.Database
	tales   FairytaleStore
	storage string
	version string
}

func NewHealthController(db *database.Database, tales FairytaleStore, storage, version string) *HealthController {
	return &HealthController{
		db:      db,
		tales:   tales,
		storage: storage,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check database connectivity
	if h.db != nil {
		sqlDB, err := h.db.DB.DB()
		if err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else if err := sqlDB.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	// Check the fairytale store, whichever backend it runs on
	if h.tales != nil {
		total, err := h.tales.Count()
		if err != nil {
			checks["fairytales"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["fairytales"] = fmt.Sprintf("ok (%d records)", total)
		}
	} else {
		checks["fairytales"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Storage: h.storage,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
