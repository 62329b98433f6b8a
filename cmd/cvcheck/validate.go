package main

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"volumetrico/internal/domain"
	"volumetrico/internal/port"
	"volumetrico/internal/service"
	s3storage "volumetrico/internal/storage/s3"
	"volumetrico/internal/validator/report"
)

type validateOptions struct {
	Format        string `validate:"oneof=text json yaml csv xlsx"`
	Out           string `validate:"required_if=Format xlsx"`
	CheckFileName bool
	Strict        bool
	S3Keys        []string `validate:"dive,required"`
	S3Prefix      string
	Jobs          int `validate:"gte=1,lte=64"`
}

var flagValidator = validator.New()

// outcome is the result of validating one report source.
type outcome struct {
	Name   string                   `json:"name" yaml:"name"`
	Report *domain.ValidationReport `json:"report,omitempty" yaml:"report,omitempty"`
	Err    string                   `json:"error,omitempty" yaml:"error,omitempty"`
}

func (o outcome) ok() bool {
	return o.Err == "" && o.Report != nil && o.Report.Valid
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Validate report files, directories or S3 objects",
		Long: `Validate one or more volumetric reports. Directories are walked for *.json files.
Reports stored in the configured bucket are selected with --s3 or --s3-prefix.
The exit code is 1 when any report is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flagValidator.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			if len(args) == 0 && len(opts.S3Keys) == 0 && opts.S3Prefix == "" {
				return fmt.Errorf("nothing to validate: pass a path, --s3 or --s3-prefix")
			}

			var source port.ReportSource
			if len(opts.S3Keys) > 0 || opts.S3Prefix != "" {
				var err error
				source, err = s3storage.NewReportSource(cmd.Context(), &root.cfg.Storage, root.cfg.Validation.MaxReportBytes)
				if err != nil {
					return fmt.Errorf("opening report storage: %w", err)
				}
			}

			svc := service.NewValidationService(report.NewEngine(), source, &root.cfg.Validation, nil)
			outcomes, err := runValidate(cmd.Context(), svc, source, args, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.Out != "" {
				f, err := os.Create(opts.Out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", opts.Out, err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}
			if err := render(out, opts.Format, outcomes); err != nil {
				return err
			}

			for _, o := range outcomes {
				if !o.ok() {
					return errInvalidReports
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Format, "format", "f", "text", "output format: text, json, yaml, csv or xlsx")
	f.StringVarP(&opts.Out, "out", "o", "", "write output to this file instead of stdout")
	f.BoolVar(&opts.CheckFileName, "check-filename", false, "check the regulator file-name convention")
	f.BoolVar(&opts.Strict, "strict", true, "reject top-level keys outside the report schema")
	f.StringSliceVar(&opts.S3Keys, "s3", nil, "object key in the configured bucket (repeatable)")
	f.StringVar(&opts.S3Prefix, "s3-prefix", "", "validate every .json object under this prefix")
	f.IntVarP(&opts.Jobs, "jobs", "j", min(runtime.NumCPU(), 16), "reports validated concurrently")
	return cmd
}

// runValidate validates every file under paths and every selected object.
// Outcomes keep input order; a report that cannot be read or decoded is an
// outcome with Err set, not a failure of the run.
func runValidate(ctx context.Context, svc service.ValidationService, source port.ReportSource, paths []string, opts *validateOptions) ([]outcome, error) {
	files, err := collectFiles(paths)
	if err != nil {
		return nil, err
	}

	keys := append([]string(nil), opts.S3Keys...)
	if opts.S3Prefix != "" && source != nil {
		objects, err := source.List(ctx, opts.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", opts.S3Prefix, err)
		}
		for _, o := range objects {
			keys = append(keys, o.Key)
		}
	}

	outcomes := make([]outcome, len(files)+len(keys))
	checkName, strict := opts.CheckFileName, opts.Strict

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Jobs, 1))

	for i, path := range files {
		g.Go(func() error {
			outcomes[i] = validateFile(gctx, svc, path, &checkName, &strict)
			return gctx.Err()
		})
	}
	for j, key := range keys {
		i := len(files) + j
		g.Go(func() error {
			o := outcome{Name: "s3://" + key}
			res, err := svc.ValidateObject(gctx, key, &checkName)
			if err != nil {
				o.Err = err.Error()
			} else {
				o.Report = res.Report
			}
			outcomes[i] = o
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func validateFile(ctx context.Context, svc service.ValidationService, path string, checkName, strict *bool) outcome {
	o := outcome{Name: path}
	data, err := os.ReadFile(path)
	if err != nil {
		o.Err = err.Error()
		return o
	}
	log.Printf("cvcheck.validate: %s (%d bytes)", path, len(data))

	res, err := svc.Validate(ctx, service.ValidateInput{
		FileName:       path,
		Body:           bytes.NewReader(data),
		CheckFileName:  checkName,
		StrictTopLevel: strict,
	})
	if err != nil {
		o.Err = err.Error()
		return o
	}
	o.Report = res.Report
	return o
}

// collectFiles expands directories into their *.json files, sorted.
// Explicit file arguments are kept whatever their extension.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isReport(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

func isReport(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
