package validator

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"volumetrico/internal/domain"
)

// Engine orchestrates report validation across the registered sections.
type Engine struct {
	registry *Registry
	now      func() time.Time
}

// NewEngine creates a new validation engine.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry, now: time.Now}
}

// Run validates doc with every registered section, in registration order,
// and returns the full ordered error list.
func (e *Engine) Run(ctx context.Context, doc *Document) (*domain.ValidationReport, error) {
	if doc == nil || doc.Data == nil {
		return nil, domain.ErrEmptyReport
	}

	records := make([]domain.ErrorRecord, 0, len(doc.Decoding))
	records = append(records, doc.Decoding...)

	for _, v := range e.registry.All() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("validating section %s: %w", v.Key(), err)
		}
		records = append(records, v.Validate(ctx, doc)...)
	}

	report := &domain.ValidationReport{
		ID:          uuid.New(),
		FileName:    doc.Options.FileName,
		ValidatedAt: e.now().UTC(),
		Valid:       len(records) == 0,
		ErrorCount:  len(records),
		Errors:      records,
	}

	log.Printf("validator.Engine: report %s (%s) validated, valid=%t, errors=%d",
		report.ID, report.FileName, report.Valid, report.ErrorCount)
	return report, nil
}
