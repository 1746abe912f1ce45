package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookcase-app/bookcase/internal/database"
)

// healthCheckID is never inserted; the lookup only has to reach the
// store and come back, NotFound included.
const healthCheckID = "health-check"

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	store   database.Store
	version string
}

func NewHealthController(store database.Store, version string) *HealthController {
	return &HealthController{
		store:   store,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.store == nil {
		checks["store"] = "not configured"
		status = "unhealthy"
	} else {
		_, err := h.store.GetByID(c.Request.Context(), database.CollectionAuthors, healthCheckID)
		if err == nil || errors.Is(err, database.ErrNotFound) {
			checks["store"] = "ok"
		} else {
			checks["store"] = "error: " + err.Error()
			status = "unhealthy"
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
