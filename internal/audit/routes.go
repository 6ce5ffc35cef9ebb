package audit

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, auditService *AuditService) {
	auditController := &AuditController{AuditService: auditService}

	group := r.Group("/api/templates")
	{
		group.GET("/:id/audit", auditController.GetTemplateAudit)
	}
}
