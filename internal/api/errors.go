package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pageza/brewshare/backend/internal/service"
)

const internalErrorMessage = "internal server error"

// respondError maps service errors to status codes. Anything unrecognised is
// logged and answered with an opaque 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := internalErrorMessage

	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		status, message = http.StatusUnauthorized, "authentication required"
	case errors.Is(err, service.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, service.ErrTargetNotFound):
		status, message = http.StatusNotFound, "recipe not found"
	case errors.Is(err, service.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrForbidden):
		status, message = http.StatusForbidden, "you do not have permission to modify this resource"
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrDuplicate):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrStorageDisabled):
		status, message = http.StatusServiceUnavailable, "image uploads are not available"
	default:
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.FullPath(), err)
	}

	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondBindError answers a request whose body or query failed validation
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": strings.Join(msgs, "; ")})
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min", "gte", "gt":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "brew_method", "roast_level", "bean_process", "burr_type":
		return fmt.Sprintf("%s is not a valid %s", field, strings.ReplaceAll(fe.Tag(), "_", " "))
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// pathID parses the :id path parameter. Ids that cannot name a row are
// answered with 404, the same as ids that name nothing.
func pathID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses an optional uuid query parameter
func queryID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": name + " must be a valid id"})
		return nil, false
	}
	return &id, true
}
