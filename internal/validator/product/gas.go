package product

import (
	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

var (
	gasSchema = validator.Schema{
		validator.Typed("ComposGasNaturalOCondensados", validator.String),
		validator.Typed("FraccionMolar", validator.Number),
		validator.Typed("PoderCalorifico", validator.Number),
	}
	gasRules = []validator.Rule{
		{Key: "ComposGasNaturalOCondensados", Required: true, Pattern: catalog.CondensedGas},
		{Key: "FraccionMolar", Required: true, Range: validator.Between("0", "0.999")},
		{Key: "PoderCalorifico", Required: true, Range: validator.Between("0.001", "150000")},
	}
)

// GasValidator checks one component of GasNaturalOCondensados.
//
// TODO: check that FraccionMolar sums to 1 across the components of a product
// once the regulator confirms how fractions are rounded.
type GasValidator struct {
	component map[string]any
	acc       *validator.Accumulator
}

// NewGasValidator creates a GasValidator for component.
func NewGasValidator(component map[string]any) *GasValidator {
	return &GasValidator{component: component, acc: validator.NewAccumulator()}
}

// Validate runs the type check and then the rules of every key that passed it.
func (g *GasValidator) Validate() {
	failed := g.acc.CheckTypes(g.component, gasSchema, "")
	g.acc.ApplyExcept(g.component, "", failed, gasRules...)
}

// Records returns the collected records. Sources are relative to the component.
func (g *GasValidator) Records() []domain.ErrorRecord {
	return g.acc.Records()
}
