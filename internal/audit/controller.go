package audit

import (
	"net/http"
	"strconv"

	"sheet-template-api/internal/apperr"

	"github.com/gin-gonic/gin"
)

type AuditController struct {
	AuditService *AuditService
}

func (ac *AuditController) GetTemplateAudit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		_ = c.Error(apperr.Validation("Invalid template ID"))
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(err)
		return
	}

	rows, err := ac.AuditService.GetByTemplate(uint(id), q.Limit)
	if err != nil {
		_ = c.Error(apperr.Upstream("Failed to fetch audit log", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"count": len(rows),
	})
}
