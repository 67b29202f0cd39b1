package controllers

import (
	"errors"
	"log"
	"net/http"

	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the services error taxonomy onto HTTP. Every
// controller funnels non-nil service errors through here so the mapping
// lives in exactly one place.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		conflictErr   *services.ConflictError
		overflowErr   *services.LayoutOverflowError
		transitionErr *services.TransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"code":    "validation_error",
			"message": validationErr.Error(),
			"field":   validationErr.Field,
		})
	case errors.As(err, &conflictErr):
		body := gin.H{
			"status":  "error",
			"code":    "conflict",
			"message": conflictErr.Error(),
		}
		if conflictErr.ExistingOrderID != 0 {
			body["existingOrderId"] = conflictErr.ExistingOrderID
		}
		c.JSON(http.StatusConflict, body)
	case errors.As(err, &overflowErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":         "error",
			"code":           "layout_overflow",
			"message":        overflowErr.Error(),
			"requiredWidth":  overflowErr.RequiredWidth,
			"requiredHeight": overflowErr.RequiredHeight,
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"code":    "invalid_transition",
			"message": transitionErr.Error(),
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"code":    "not_found",
			"message": err.Error(),
		})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"code":    "internal",
			"message": "internal server error",
		})
	}
}
