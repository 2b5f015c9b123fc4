package freightsync

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/tradedocs_backend/config"
)

// RunHandler triggers a sync pass inline and reports the run record.
// A busy peer returns 409 so schedulers can back off.
func RunHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		run, err := RunSync(c.Request.Context())
		if err != nil {
			if errors.Is(err, ErrSyncAlreadyRunning) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			config.LogError(config.GetLogger(), "freightsync", "RunHandler", "RunSync", nil, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "run": run})
			return
		}
		c.JSON(http.StatusOK, gin.H{"run": run})
	}
}
