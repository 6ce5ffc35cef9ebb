package schema

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SchemaController struct {
	SchemaService *SchemaService
}

func (sc *SchemaController) Normalize(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"components": sc.SchemaService.NormalizeComponents(req.Components),
	})
}
