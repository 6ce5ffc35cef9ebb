package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sheet-template-api/internal/apperr"

	"gorm.io/datatypes"
)

// DefaultActorID is recorded as creator and auditor when no actor is known.
const DefaultActorID = "00000000-0000-0000-0000-000000000000"

type Template struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_templates_active_name,where:is_deleted = false"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedBy   string    `json:"created_by" gorm:"type:varchar(255);not null"`
	IsDeleted   bool      `json:"is_deleted" gorm:"not null;default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (Template) TableName() string { return "templates" }

// ComponentSchema is one tab of a template. Subcomponents are stored as an
// opaque JSON array and have no identity of their own.
type ComponentSchema struct {
	ID            uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	TemplateID    uint           `json:"template_id" gorm:"not null;index"`
	Template      *Template      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Key           string         `json:"key" gorm:"type:varchar(255);not null"`
	Title         string         `json:"title" gorm:"type:varchar(255);not null"`
	SchemaJSON    datatypes.JSON `json:"schema_json" gorm:"column:schema_json;not null"`
	Subcomponents datatypes.JSON `json:"subcomponents"`
	OrderIndex    int            `json:"order_index" gorm:"not null;default:0"`
	IsDeleted     bool           `json:"is_deleted" gorm:"not null;default:false;index"`
	CreatedAt     time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (ComponentSchema) TableName() string { return "component_schemas" }

type TemplateWithComponents struct {
	Template   Template          `json:"template"`
	Components []ComponentSchema `json:"components"`
}

type ComponentInput struct {
	Key           string          `json:"key"`
	Title         string          `json:"title"`
	SchemaJSON    json.RawMessage `json:"schema_json"`
	Subcomponents json.RawMessage `json:"subcomponents"`
}

type CreateTemplateRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	CreatedBy   string           `json:"created_by"`
	Components  []ComponentInput `json:"components"`
}

// Validate trims the name and checks every component carries a key, a title
// and a schema. Messages are shown to the user as-is.
func (r *CreateTemplateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return apperr.Validation("Template name is required")
	}
	if len(r.Components) == 0 {
		return apperr.Validation("At least one component is required")
	}

	for i, comp := range r.Components {
		switch {
		case strings.TrimSpace(comp.Key) == "":
			return apperr.Validation(fmt.Sprintf("Component at index %d is missing a key", i))
		case strings.TrimSpace(comp.Title) == "":
			return apperr.Validation(fmt.Sprintf("Component at index %d is missing a title", i))
		case isNullJSON(comp.SchemaJSON):
			return apperr.Validation(fmt.Sprintf("Component at index %d is missing a schema", i))
		case !isNullJSON(comp.Subcomponents) && !isJSONArray(comp.Subcomponents):
			return apperr.Validation(fmt.Sprintf("Component at index %d has invalid subcomponents", i))
		}
	}
	return nil
}

func isNullJSON(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

func isJSONArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}
