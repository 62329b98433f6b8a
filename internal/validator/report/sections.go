// Package report holds the top-level rules of a monthly volumetric report.
// Each rule is a section registered into a validator.Registry so the engine
// can run them in a fixed order.
package report

import (
	"context"

	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

// section wraps a check function with its registry metadata.
type section struct {
	key  string
	name string
	fn   func(acc *validator.Accumulator, doc *validator.Document)
}

func (s *section) Validate(_ context.Context, doc *validator.Document) []domain.ErrorRecord {
	acc := validator.NewAccumulator()
	s.fn(acc, doc)
	return acc.Records()
}

func (s *section) Key() string  { return s.key }
func (s *section) Name() string { return s.name }

// Sections returns the built-in report sections in validation order.
func Sections() []validator.Validator {
	return []validator.Validator{
		&section{key: "report.keys", name: "Top-level keys", fn: checkKeys},
		&section{key: "report.version", name: "Version", fn: checkVersion},
		&section{key: "report.rfc", name: "Taxpayer RFC", fn: checkRFC},
		&section{key: "report.caracter", name: "Caracter", fn: checkCaracter},
		&section{key: "report.installation", name: "Installation", fn: checkInstallation},
		&section{key: "report.geolocation", name: "Geolocation", fn: checkGeolocation},
		&section{key: "report.counts", name: "Installation counts", fn: checkCounts},
		&section{key: "report.date", name: "Report date", fn: checkDate},
		&section{key: "report.supplier", name: "Supplier RFC", fn: checkSupplier},
		&section{key: "report.products", name: "Products", fn: checkProducts},
		&section{key: "report.log", name: "Monthly log", fn: checkLog},
		&section{key: "report.filename", name: "File name", fn: checkFileName},
	}
}

// RegisterBuiltins registers every built-in section into r.
func RegisterBuiltins(r *validator.Registry) {
	for _, s := range Sections() {
		r.Register(s)
	}
}

// NewEngine returns an engine running the built-in sections.
func NewEngine() *validator.Engine {
	r := validator.NewRegistry()
	RegisterBuiltins(r)
	return validator.NewEngine(r)
}
