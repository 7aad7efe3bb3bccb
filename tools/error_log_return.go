package tools

import (
	"net/http"

	"ndis_connect/types"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
)

// Logs the error and replies with 400 Bad Request
func LogError(logger types.Logger, c *gin.Context, err error) {
	LogErrorWithStatus(logger, c, http.StatusBadRequest, err)
}

func LogErrorWithStatus(logger types.Logger, c *gin.Context, code int, err error) {
	logger.Log(logging.Entry{
		Severity: logging.Error,
		Payload:  err.Error(),
		Labels:   map[string]string{"status": "error", "path": c.FullPath()},
	})

	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
