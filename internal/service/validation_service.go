package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"volumetrico/internal/config"
	"volumetrico/internal/domain"
	"volumetrico/internal/parser"
	"volumetrico/internal/port"
	"volumetrico/internal/validator"
)

// ValidateInput is the DTO for a single report validation.
// Nil option pointers fall back to the configured defaults.
type ValidateInput struct {
	FileName       string
	Body           io.Reader
	CheckFileName  *bool
	StrictTopLevel *bool
}

// ValidationResult is a validation report together with the pretty-printed
// report body it was produced from.
type ValidationResult struct {
	Report   *domain.ValidationReport `json:"report"`
	JSONData string                   `json:"json_data"`
}

// ValidationService defines the report validation contract.
type ValidationService interface {
	Validate(ctx context.Context, input ValidateInput) (*ValidationResult, error)
	ValidateObject(ctx context.Context, key string, checkFileName *bool) (*ValidationResult, error)
}

// Runner executes the validation sections over a decoded document.
type Runner interface {
	Run(ctx context.Context, doc *validator.Document) (*domain.ValidationReport, error)
}

type validationService struct {
	runner  Runner
	source  port.ReportSource
	cfg     *config.ValidationConfig
	metrics *Metrics
}

// NewValidationService creates a new ValidationService implementation.
// source may be nil when object storage is not configured.
func NewValidationService(
	runner Runner,
	source port.ReportSource,
	cfg *config.ValidationConfig,
	metrics *Metrics,
) ValidationService {
	return &validationService{
		runner:  runner,
		source:  source,
		cfg:     cfg,
		metrics: metrics,
	}
}

func (s *validationService) Validate(ctx context.Context, input ValidateInput) (*ValidationResult, error) {
	if ext := strings.ToLower(filepath.Ext(input.FileName)); ext != ".json" {
		s.metrics.rejected()
		return nil, domain.ErrUnsupportedFileType
	}
	if input.Body == nil {
		s.metrics.rejected()
		return nil, domain.ErrEmptyReport
	}

	body, err := io.ReadAll(io.LimitReader(input.Body, s.cfg.MaxReportBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	if int64(len(body)) > s.cfg.MaxReportBytes {
		s.metrics.rejected()
		return nil, domain.ErrFileTooLarge
	}

	return s.validate(ctx, input.FileName, body, s.options(input))
}

func (s *validationService) ValidateObject(ctx context.Context, key string, checkFileName *bool) (*ValidationResult, error) {
	if s.source == nil {
		return nil, domain.ErrStorageUnavailable
	}
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("object key is empty: %w", domain.ErrNotFound)
	}

	body, err := s.source.Download(ctx, key)
	if err != nil {
		log.Printf("validationService.ValidateObject: download of %s failed: %v", key, err)
		return nil, err
	}

	input := ValidateInput{FileName: key, Body: bytes.NewReader(body), CheckFileName: checkFileName}
	return s.Validate(ctx, input)
}

func (s *validationService) options(input ValidateInput) domain.ValidationRequest {
	req := domain.ValidationRequest{
		FileName:       input.FileName,
		CheckFileName:  s.cfg.CheckFileName,
		StrictTopLevel: s.cfg.StrictTopLevel,
	}
	if input.CheckFileName != nil {
		req.CheckFileName = *input.CheckFileName
	}
	if input.StrictTopLevel != nil {
		req.StrictTopLevel = *input.StrictTopLevel
	}
	return req
}

func (s *validationService) validate(ctx context.Context, name string, body []byte, opts domain.ValidationRequest) (*ValidationResult, error) {
	start := time.Now()

	decoded, err := parser.Decode(body)
	if err != nil {
		s.metrics.rejected()
		log.Printf("validationService.Validate: %s could not be decoded: %v", name, err)
		return nil, err
	}

	report, err := s.runner.Run(ctx, &validator.Document{
		Data:     decoded.Data,
		Options:  opts,
		Decoding: decoded.Decoding,
	})
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", name, err)
	}

	pretty, err := parser.Pretty(decoded.Data)
	if err != nil {
		return nil, err
	}

	s.metrics.observe(report, len(body), time.Since(start).Seconds())
	return &ValidationResult{Report: report, JSONData: string(pretty)}, nil
}
