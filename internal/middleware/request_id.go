package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consultorio-scheduler/internal/requestid"
)

const ContextRequestID = "requestID"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = requestid.New()
		}

		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(requestid.Header, id)
		c.Request = c.Request.WithContext(requestid.With(c.Request.Context(), id))

		c.Next()
	}
}
