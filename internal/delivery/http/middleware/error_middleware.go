package middleware

import (
	"net/http"

	"job-alerts-backend/internal/delivery/http/response"
	"job-alerts-backend/pkg/apperror"
	"job-alerts-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr, ok := apperror.As(err)
		if !ok {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			// Never expose internal error details to clients
			logger.Log.Errorw("internal server error",
				"path", c.FullPath(),
				"request_id", c.GetString(RequestIDKey),
				"error", err,
			)
		}
		response.Error(c, appErr.Code, appErr.Message, appErr.Details)
	}
}
