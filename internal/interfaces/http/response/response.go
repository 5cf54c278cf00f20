package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"solene-digital.backend/internal/domain/contract"
	domainerrors "solene-digital.backend/internal/domain/errors"
	"solene-digital.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Anything that is not an AppError is logged
// and reported as a 500 without leaking its message.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		ctx := c.Request.Context()
		logger.Error(ctx, "Unhandled request error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// Validation sends the 400 body declared by the contract.
func Validation(c *gin.Context, verr *contract.ValidationError) {
	c.JSON(http.StatusBadRequest, verr)
}
