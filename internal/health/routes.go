package health

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func RegisterRoutes(r *gin.Engine, hs *HealthService, log *logrus.Logger) {
	hc := &HealthController{HealthService: hs, Log: log}

	r.GET("/api/health", hc.Check)
}
