package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/gorm/schema"
)

func TestTemplateAuditLog_ComponentKeysColumnType(t *testing.T) {
	db, _, cleanup := newMockGorm(t)
	defer cleanup()

	s, err := schema.Parse(&TemplateAuditLog{}, &sync.Map{}, db.NamingStrategy)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	field := s.LookUpField("component_keys")
	if field == nil {
		t.Fatalf("component_keys field missing")
	}
	if field.DataType == "" {
		t.Fatalf("component_keys has no data type")
	}

	typer, ok := db.Migrator().(interface{ DataTypeOf(*schema.Field) string })
	if !ok {
		t.Fatalf("migrator does not expose DataTypeOf")
	}
	if got := typer.DataTypeOf(field); got != "text[]" {
		t.Fatalf("postgres column type=%q want text[]", got)
	}
}

func TestAttachTemplateForeignKey_Postgres(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()

	mock.ExpectExec(`ALTER TABLE template_audit_logs ADD CONSTRAINT fk_template_audit_logs_template\s+FOREIGN KEY \(template_id\) REFERENCES templates\(id\) ON DELETE CASCADE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := AttachTemplateForeignKey(db); err != nil {
		t.Fatalf("AttachTemplateForeignKey: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAttachTemplateForeignKey_PropagatesError(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()

	mock.ExpectExec(`ALTER TABLE template_audit_logs`).WillReturnError(errors.New("no templates table"))

	if err := AttachTemplateForeignKey(db); err == nil {
		t.Fatalf("expected error")
	}
}

func TestAttachTemplateForeignKey_SkipsOtherDialects(t *testing.T) {
	if err := AttachTemplateForeignKey(newTestDB(t)); err != nil {
		t.Fatalf("expected no-op on sqlite, got %v", err)
	}
}
