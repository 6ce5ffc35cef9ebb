package audit

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const (
	ChangeCreate = "CREATE"
	ChangeDelete = "DELETE"
)

type TemplateAuditLog struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	TemplateID    uint           `gorm:"not null;index" json:"template_id"`
	ChangeType    string         `gorm:"size:50;not null" json:"change_type"`
	PerformedBy   string         `gorm:"size:255;not null" json:"performed_by"`
	DiffJSON      datatypes.JSON `gorm:"column:diff_json;not null" json:"diff_json"`
	ComponentKeys ComponentKeys  `gorm:"column:component_keys" json:"component_keys"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (TemplateAuditLog) TableName() string {
	return "template_audit_logs"
}

// ComponentKeys is a text[] column on postgres and an array literal in a text
// column elsewhere.
type ComponentKeys []string

func (ComponentKeys) GormDataType() string {
	return "text"
}

func (ComponentKeys) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func (k ComponentKeys) Value() (driver.Value, error) {
	return pq.StringArray(k).Value()
}

func (k *ComponentKeys) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*k = ComponentKeys(arr)
	return nil
}

type snapshotTemplate struct {
	Name       string   `json:"name"`
	Components []string `json:"components"`
}

type snapshotDiff struct {
	Snapshot struct {
		Template snapshotTemplate `json:"template"`
	} `json:"snapshot"`
}

// Snapshot is the diff_json body recorded for a template mutation.
func Snapshot(name string, componentKeys []string) any {
	var d snapshotDiff
	d.Snapshot.Template.Name = name
	d.Snapshot.Template.Components = append([]string{}, componentKeys...)
	return d
}

type ListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
