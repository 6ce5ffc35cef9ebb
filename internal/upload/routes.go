package upload

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, uploadService *UploadService, uploadsDir string) {
	uploadController := &UploadController{UploadService: uploadService, UploadsDir: uploadsDir}

	group := r.Group("/api/upload")
	{
		group.POST("", uploadController.UploadFile)
	}
}
