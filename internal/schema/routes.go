package schema

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, ss *SchemaService) {
	sc := &SchemaController{SchemaService: ss}

	group := r.Group("/api/schemas")
	{
		group.POST("/normalize", sc.Normalize)
	}
}
