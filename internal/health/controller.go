package health

import (
	"net/http"
	"time"

	"sheet-template-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HealthController struct {
	HealthService *HealthService
	Log           *logrus.Logger
}

func (hc *HealthController) Check(c *gin.Context) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	if err := hc.HealthService.Ping(c.Request.Context()); err != nil {
		logger.OrDiscard(hc.Log).WithError(err).Error("health check: database unreachable")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "ERROR",
			"message":   "Server is running but some services are unavailable",
			"error":     "database connection failed",
			"timestamp": now,
		})
		return
	}

	body := gin.H{
		"status":    "OK",
		"message":   "Server is running",
		"database":  "OK",
		"timestamp": now,
	}
	if hc.HealthService.AIProvider != "" {
		body["ai"] = hc.HealthService.AIProvider
	}
	c.JSON(http.StatusOK, body)
}
