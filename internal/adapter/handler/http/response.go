package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error" example:"Bike not found"`
}

type successResponse struct {
	Message string      `json:"message" example:"Component created successfully"`
	Data    interface{} `json:"data,omitempty"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

func newSuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, successResponse{Message: message, Data: data})
}

// errorStatus maps a service error to its HTTP status.
func errorStatus(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyReplaced):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// newServiceErrorResponse writes err with its mapped status. Internal
// errors get fallback instead of the error text.
func newServiceErrorResponse(c *gin.Context, err error, fallback string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		newErrorResponse(c, status, fallback)
		return
	}
	newErrorResponse(c, status, err.Error())
}
