package domain

import (
	"time"

	"github.com/google/uuid"
)

// ValidationReport is the outcome of validating one regulatory report.
type ValidationReport struct {
	ID          uuid.UUID     `json:"id" yaml:"id"`
	FileName    string        `json:"file_name" yaml:"file_name"`
	ValidatedAt time.Time     `json:"validated_at" yaml:"validated_at"`
	Valid       bool          `json:"valid" yaml:"valid"`
	ErrorCount  int           `json:"error_count" yaml:"error_count"`
	Errors      []ErrorRecord `json:"errors" yaml:"errors"`
}

// ValidationRequest carries the per-request options for a validation pass.
// It replaces any process-wide state: every run builds its own.
type ValidationRequest struct {
	FileName       string
	CheckFileName  bool
	StrictTopLevel bool
}
