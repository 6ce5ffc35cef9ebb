package upload

import (
	"context"
	"path/filepath"

	"sheet-template-api/internal/apperr"
	"sheet-template-api/internal/logger"
	"sheet-template-api/internal/schemagen"
	"sheet-template-api/internal/util"

	"github.com/iancoleman/orderedmap"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type SchemaGenerator interface {
	Generate(ctx context.Context, rows []schemagen.SheetRow) *orderedmap.OrderedMap
}

var readWorkbookHook = ReadWorkbook

type UploadService struct {
	Generator SchemaGenerator
	// Archive keeps a copy of each processed workbook; nil disables it.
	Archive Archiver
	// Concurrency caps in-flight schema generations. Values below 1 mean 1.
	Concurrency int
	Log         *logrus.Logger
}

// ProcessExcelFile turns a workbook into component drafts, one per sheet or
// per group of sheets sharing a base name.
func (us *UploadService) ProcessExcelFile(ctx context.Context, filePath, originalFileName string) (*ProcessResult, error) {
	log := logger.OrDiscard(us.Log)

	sheets, err := readWorkbookHook(filePath)
	if err != nil {
		log.WithError(err).WithField("file", originalFileName).Error("failed to read workbook")
		return nil, apperr.Upstream("Failed to process Excel file", err)
	}
	for _, s := range sheets {
		if s.HeaderOnly {
			log.WithField("sheet", s.Name).Info("no data rows, using headers only")
		}
	}

	schemas := us.generateAll(ctx, sheets)
	if err := ctx.Err(); err != nil {
		return nil, apperr.Upstream("Failed to process Excel file", err)
	}

	components := assemble(GroupSheets(sheets), schemas)
	if len(components) == 0 {
		return nil, apperr.Validation("No valid sheets found in the Excel file")
	}

	return &ProcessResult{
		FileName:   util.StripExtension(filepath.Base(originalFileName)),
		Components: components,
	}, nil
}

// generateAll runs one generation per sheet with bounded concurrency and
// returns schemas keyed by sheet name, independent of completion order.
func (us *UploadService) generateAll(ctx context.Context, sheets []Sheet) map[string]*orderedmap.OrderedMap {
	limit := us.Concurrency
	if limit < 1 {
		limit = 1
	}

	results := make([]*orderedmap.OrderedMap, len(sheets))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, s := range sheets {
		g.Go(func() error {
			results[i] = us.Generator.Generate(ctx, s.Rows)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]*orderedmap.OrderedMap, len(sheets))
	for i, s := range sheets {
		out[s.Name] = results[i]
	}
	return out
}

func assemble(groups []SheetGroup, schemas map[string]*orderedmap.OrderedMap) []ComponentDraft {
	components := make([]ComponentDraft, 0, len(groups))
	for _, g := range groups {
		if len(g.Sheets) == 1 {
			s := g.Sheets[0]
			components = append(components, ComponentDraft{
				Key:        util.SanitizeKey(s.Name),
				Title:      s.Name,
				SchemaJSON: schemas[s.Name],
			})
			continue
		}

		subs := make([]SubComponent, 0, len(g.Sheets))
		for _, s := range g.Sheets {
			subs = append(subs, SubComponent{
				Key:        util.SanitizeKey(s.Name),
				Title:      s.Name,
				SchemaJSON: schemas[s.Name],
			})
		}
		components = append(components, ComponentDraft{
			Key:           util.SanitizeKey(g.BaseName),
			Title:         g.BaseName,
			SchemaJSON:    subs[0].SchemaJSON,
			Subcomponents: subs,
		})
	}
	return components
}

// ArchiveUpload stores the workbook when archiving is configured. Failures are
// logged and never fail the upload.
func (us *UploadService) ArchiveUpload(ctx context.Context, filePath, originalFileName string) string {
	if us.Archive == nil {
		return ""
	}
	location, err := us.Archive.Archive(ctx, filePath, originalFileName)
	if err != nil {
		logger.OrDiscard(us.Log).WithError(err).WithField("file", originalFileName).Warn("failed to archive upload")
		return ""
	}
	return location
}
