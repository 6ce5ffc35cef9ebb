package schemagen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sheet-template-api/internal/llm"
	"sheet-template-api/internal/logger"
	"sheet-template-api/internal/util"

	"github.com/iancoleman/orderedmap"
	"github.com/sirupsen/logrus"
)

// ErrInferenceFailed wraps every reason a model-backed inference produced no
// usable schema.
var ErrInferenceFailed = errors.New("schema inference failed")

type Generator struct {
	Provider llm.Provider
	// Timeout bounds one model call; zero leaves it to ctx.
	Timeout time.Duration
	Log     *logrus.Logger
}

// Generate returns a JSON Schema for rows. Model failures degrade to
// FallbackSchema; no error reaches the caller.
func (g *Generator) Generate(ctx context.Context, rows []SheetRow) *orderedmap.OrderedMap {
	if len(rows) == 0 {
		return EmptySchema()
	}

	sample := Sample(rows)
	schema, err := g.Infer(ctx, sample)
	if err != nil {
		logger.OrDiscard(g.Log).WithError(err).Warn("schema inference fell back to structural schema")
		return FallbackSchema(sample)
	}
	return schema
}

// Infer asks the model for a schema. The result is nil exactly when err is
// non-nil, and err always wraps ErrInferenceFailed.
func (g *Generator) Infer(ctx context.Context, sample []SheetRow) (*orderedmap.OrderedMap, error) {
	if g.Provider == nil {
		return nil, fmt.Errorf("%w: %w", ErrInferenceFailed, llm.ErrNotConfigured)
	}

	prompt, err := buildPrompt(sample)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInferenceFailed, err)
	}

	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	text, err := g.Provider.Complete(ctx, llm.Request{
		SystemPrompt:    systemPrompt,
		UserPrompt:      prompt,
		Temperature:     temperature,
		MaxOutputTokens: maxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInferenceFailed, err)
	}

	schema := util.ParseJSONSafely(text)
	if schema == nil {
		return nil, fmt.Errorf("%w: model output is not a JSON object", ErrInferenceFailed)
	}
	return schema, nil
}
