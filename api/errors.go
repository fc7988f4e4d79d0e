package api

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	errorMessageInvalidParameters = "invalid parameters"
	errorMessageInvalidAccountID  = "invalid account ID"
	errorMessageInternalServer    = "internal server error"
	errorMessageUpstream          = "fail to query veterinary facilities"
)

// abortWithEncoding writes the error envelope the frontend consumes and
// logs any underlying errors.
func abortWithEncoding(c *gin.Context, code int, message string, errs ...error) {
	for _, err := range errs {
		log.WithFields(log.Fields{
			"prefix": "api",
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(err).Error(message)
	}

	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"message": message,
	})
}
