package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-api/internal/response"
	"blog-api/internal/util"
)

// Recovery turns a handler panic into a 500 envelope and logs the stack
// together with the route and caller that triggered it.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			fields := []zap.Field{
				zap.String("panic", fmt.Sprintf("%v", rec)),
				zap.String("panic_type", fmt.Sprintf("%T", rec)),
				zap.String("method", c.Request.Method),
				zap.String("route", c.FullPath()),
				zap.String("path", c.Request.URL.Path),
				zap.Stack("stacktrace"),
			}
			if userID := util.OptionalUserID(c); userID != nil {
				fields = append(fields, zap.Uint("user_id", *userID))
			}
			logger.Error("Recovered from handler panic", fields...)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
		}()

		c.Next()
	}
}
