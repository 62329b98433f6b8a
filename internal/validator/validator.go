package validator

import (
	"context"

	"volumetrico/internal/domain"
)

// Document is a decoded report together with the options of the pass that
// validates it. A Document is built per request and never shared.
type Document struct {
	Data     map[string]any
	Options  domain.ValidationRequest
	Decoding []domain.ErrorRecord
}

// Validator checks one section of a report.
type Validator interface {
	Validate(ctx context.Context, doc *Document) []domain.ErrorRecord
	Key() string
	Name() string
}
