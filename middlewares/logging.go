// access log: stdout line per request, mirrored into the Redis log list.

package middlewares

import (
	"log"
	"strconv"
	"time"

	"github.com/dmleach/frock/utils/redislog"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints method, path, status and duration for each request.
// rlog may be nil.
func RequestLogger(rlog *redislog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep it, handlers may rewrite
		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)
		log.Printf("[http] %s %s %d %s", c.Request.Method, path, status, elapsed)
		rlog.Info("http request", map[string]string{
			"method":   c.Request.Method,
			"path":     path,
			"status":   strconv.Itoa(status),
			"duration": elapsed.String(),
		})
	}
}
