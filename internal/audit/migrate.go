package audit

import "gorm.io/gorm"

const templateFKName = "fk_template_audit_logs_template"

// templateFKSQL adds the templates foreign key once. The constraint is raw SQL
// because TemplateAuditLog cannot reference the template model directly.
const templateFKSQL = `DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '` + templateFKName + `') THEN
		ALTER TABLE template_audit_logs ADD CONSTRAINT ` + templateFKName + `
			FOREIGN KEY (template_id) REFERENCES templates(id) ON DELETE CASCADE;
	END IF;
END $$;`

// AttachTemplateForeignKey links template_audit_logs.template_id to templates.
// Run it after both tables are migrated. Only postgres is handled.
func AttachTemplateForeignKey(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return db.Exec(templateFKSQL).Error
}
