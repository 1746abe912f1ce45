package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookcase-app/bookcase/internal/database"
	"github.com/bookcase-app/bookcase/internal/entities"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MutationResponse acknowledges a successful update or delete.
type MutationResponse struct {
	Success     bool   `json:"success"`
	FirebaseKey string `json:"firebaseKey,omitempty"`
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

// respondInternalError logs the error and sends a 500 Internal Server Error
// response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondRepositoryError translates the error taxonomy into HTTP statuses:
// validation failures carry their specifics back to the caller, a missing
// document maps to 404, and anything else is an opaque store failure.
func respondRepositoryError(c *gin.Context, err error, resource, context string) {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		respondBadRequest(c, verr.Error())
	case errors.Is(err, database.ErrNotFound):
		respondNotFound(c, resource)
	default:
		respondInternalError(c, err, context)
	}
}

// --- Parameter Parsing ---

// requireQuery extracts a required query parameter.
// Responds with a 400 error and returns false when it is absent.
func requireQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		respondBadRequest(c, name+" is required")
		return "", false
	}
	return value, true
}
