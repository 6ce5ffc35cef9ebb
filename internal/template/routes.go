package template

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, templateService *TemplateService) {
	tc := &TemplateController{TemplateService: templateService}

	group := r.Group("/api/templates")
	{
		group.GET("", tc.GetTemplates)
		group.POST("", tc.CreateTemplate)
		group.GET("/:id", tc.GetTemplate)
		group.DELETE("/:id", tc.DeleteTemplate)
	}
}
