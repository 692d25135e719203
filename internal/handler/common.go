package handler

import (
	"errors"
	"net/http"

	"go-gin-event-wizard/internal/service"
	apperrors "go-gin-event-wizard/pkg/app_errors"
	"go-gin-event-wizard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// bindID 解析路徑上的 uuid 參數
func bindID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid id",
		})
		return uuid.Nil, false
	}
	return id, true
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Warn("Draft validation failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Draft validation failed",
			"fields": verr.Errors,
		})
	case errors.Is(err, apperrors.ErrSessionNotFound):
		log.Warn("Wizard session not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Wizard session not found",
		})
	case errors.Is(err, apperrors.ErrDraftNotFound):
		log.Warn("Saved draft not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Saved draft not found",
		})
	case errors.Is(err, apperrors.ErrListingNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, apperrors.ErrUnknownField):
		log.Warn("Unknown field")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown field",
		})
	case errors.Is(err, apperrors.ErrInvalidValue), errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid value")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid value",
		})
	case errors.Is(err, apperrors.ErrPublishNotAvailable):
		log.Warn("Publish not available")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Publish is only available on the final step",
		})
	case errors.Is(err, apperrors.ErrPublishPending):
		log.Warn("Publish already in progress")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Publish already in progress",
		})
	case errors.Is(err, apperrors.ErrAlreadyPublished):
		log.Warn("Event already published")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Event already published",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func handleSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
