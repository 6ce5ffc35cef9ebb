package template

import (
	"bytes"
	"errors"
	"fmt"

	"sheet-template-api/internal/apperr"
	"sheet-template-api/internal/audit"
	"sheet-template-api/internal/logger"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TemplateService struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func (ts *TemplateService) GetAll() ([]Template, error) {
	templates := []Template{}
	err := ts.DB.
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Order("id DESC").
		Find(&templates).Error
	if err != nil {
		return nil, apperr.Upstream("Failed to fetch templates", err)
	}
	return templates, nil
}

func (ts *TemplateService) GetByID(id uint) (*TemplateWithComponents, error) {
	var tpl Template
	err := ts.DB.Where("id = ? AND is_deleted = ?", id, false).First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Template not found")
	}
	if err != nil {
		return nil, apperr.Upstream("Failed to fetch template", err)
	}

	components := []ComponentSchema{}
	err = ts.DB.
		Where("template_id = ? AND is_deleted = ?", id, false).
		Order("order_index").
		Find(&components).Error
	if err != nil {
		return nil, apperr.Upstream("Failed to fetch template", err)
	}

	return &TemplateWithComponents{Template: tpl, Components: components}, nil
}

// CreateTemplate stores the template, its components and one CREATE audit row
// in a single transaction. actor, when set, takes precedence over the
// request's created_by.
func (ts *TemplateService) CreateTemplate(req CreateTemplateRequest, actor string) (*TemplateWithComponents, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	createdBy := firstNonEmpty(actor, req.CreatedBy, DefaultActorID)

	var out TemplateWithComponents
	err := ts.DB.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&Template{}).
			Where("name = ? AND is_deleted = ?", req.Name, false).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return duplicateName(req.Name)
		}

		tpl := Template{
			Name:        req.Name,
			Description: req.Description,
			CreatedBy:   createdBy,
		}
		if err := tx.Create(&tpl).Error; err != nil {
			// a concurrent create won the partial unique index
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return duplicateName(req.Name)
			}
			return err
		}

		components := make([]ComponentSchema, len(req.Components))
		keys := make([]string, len(req.Components))
		for i, in := range req.Components {
			components[i] = ComponentSchema{
				TemplateID:    tpl.ID,
				Key:           in.Key,
				Title:         in.Title,
				SchemaJSON:    datatypes.JSON(bytes.TrimSpace(in.SchemaJSON)),
				Subcomponents: subcomponentsJSON(in.Subcomponents),
				OrderIndex:    i,
			}
			keys[i] = in.Key
		}
		if err := tx.Create(&components).Error; err != nil {
			return err
		}

		auditService := &audit.AuditService{DB: tx}
		if err := auditService.Record(audit.TemplateAuditLog{
			TemplateID:    tpl.ID,
			ChangeType:    audit.ChangeCreate,
			PerformedBy:   createdBy,
			ComponentKeys: keys,
		}, audit.Snapshot(tpl.Name, keys)); err != nil {
			return err
		}

		out = TemplateWithComponents{Template: tpl, Components: components}
		return nil
	})
	if err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			return nil, err
		}
		logger.OrDiscard(ts.Log).WithError(err).WithField("template", req.Name).Error("create template failed")
		return nil, apperr.Upstream("Failed to create template", err)
	}
	return &out, nil
}

// DeleteTemplate soft-deletes a template and its components and appends a
// DELETE audit row.
func (ts *TemplateService) DeleteTemplate(id uint, actor string) error {
	performedBy := firstNonEmpty(actor, DefaultActorID)

	err := ts.DB.Transaction(func(tx *gorm.DB) error {
		var tpl Template
		if err := tx.Where("id = ? AND is_deleted = ?", id, false).First(&tpl).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Template not found")
			}
			return err
		}

		var keys []string
		if err := tx.Model(&ComponentSchema{}).
			Where("template_id = ? AND is_deleted = ?", id, false).
			Order("order_index").
			Pluck("key", &keys).Error; err != nil {
			return err
		}

		if err := tx.Model(&Template{}).
			Where("id = ?", id).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&ComponentSchema{}).
			Where("template_id = ?", id).
			Update("is_deleted", true).Error; err != nil {
			return err
		}

		auditService := &audit.AuditService{DB: tx}
		return auditService.Record(audit.TemplateAuditLog{
			TemplateID:    tpl.ID,
			ChangeType:    audit.ChangeDelete,
			PerformedBy:   performedBy,
			ComponentKeys: keys,
		}, audit.Snapshot(tpl.Name, keys))
	})
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return err
		}
		logger.OrDiscard(ts.Log).WithError(err).WithField("template_id", id).Error("delete template failed")
		return apperr.Upstream("Failed to delete template", err)
	}
	return nil
}

func duplicateName(name string) error {
	msg := fmt.Sprintf("A template with the name \"%s\" already exists. Please choose a different name.", name)
	return apperr.Conflict(msg).WithDetails(map[string]string{"error": "Duplicate template name"})
}

func subcomponentsJSON(raw []byte) datatypes.JSON {
	if isNullJSON(raw) {
		return nil
	}
	return datatypes.JSON(bytes.TrimSpace(raw))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
