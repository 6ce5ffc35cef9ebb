package template

import (
	"net/http"
	"strconv"

	"sheet-template-api/internal/apperr"
	"sheet-template-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type TemplateController struct {
	TemplateService *TemplateService
}

func (tc *TemplateController) GetTemplates(c *gin.Context) {
	templates, err := tc.TemplateService.GetAll()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (tc *TemplateController) GetTemplate(c *gin.Context) {
	id, ok := templateID(c)
	if !ok {
		return
	}

	res, err := tc.TemplateService.GetByID(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (tc *TemplateController) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	res, err := tc.TemplateService.CreateTemplate(req, middlewares.Actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (tc *TemplateController) DeleteTemplate(c *gin.Context) {
	id, ok := templateID(c)
	if !ok {
		return
	}

	if err := tc.TemplateService.DeleteTemplate(id, middlewares.Actor(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Template deleted"})
}

func templateID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		_ = c.Error(apperr.Validation("Invalid template ID"))
		return 0, false
	}
	return uint(id), true
}
