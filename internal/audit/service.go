package audit

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultListLimit = 50

type AuditService struct {
	DB *gorm.DB
}

// Record appends one audit row. Pass a transaction handle as DB to make the
// row part of the surrounding change.
func (as *AuditService) Record(entry TemplateAuditLog, diff any) error {
	b, err := json.Marshal(diff)
	if err != nil {
		return fmt.Errorf("encode audit diff: %w", err)
	}

	row := TemplateAuditLog{
		TemplateID:    entry.TemplateID,
		ChangeType:    entry.ChangeType,
		PerformedBy:   entry.PerformedBy,
		DiffJSON:      datatypes.JSON(b),
		ComponentKeys: entry.ComponentKeys,
	}
	return as.DB.Create(&row).Error
}

// GetByTemplate lists a template's audit rows, newest first.
func (as *AuditService) GetByTemplate(templateID uint, limit int) ([]TemplateAuditLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows := []TemplateAuditLog{}
	err := as.DB.
		Where("template_id = ?", templateID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
