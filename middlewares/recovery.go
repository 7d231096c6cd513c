// catches panics raised by dispatched classes and returns 500 without crashing the server.

package middlewares

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dmleach/frock/utils/redislog"

	"github.com/gin-gonic/gin"
)

// Recovery responds with 500 and logs the panic value (stdout + Redis when rlog is set).
func Recovery(rlog *redislog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[panic] %s %v", c.Request.URL.Path, r)
				rlog.Error("panic", map[string]string{"path": c.Request.URL.Path, "value": fmt.Sprint(r)})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
