// Package monthly validates the ReporteDeVolumenMensual of one product: its
// stock control, its receptions and its deliveries. Receptions and deliveries
// each carry a Complemento list, which is handed to the complement factory.
package monthly

import (
	"errors"
	"fmt"
	"log"

	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
	"volumetrico/internal/validator/complement"
)

var (
	stockSchema = validator.Schema{
		validator.BoundedField("VolumenExistenciasMes", &validator.PositiveNegativeNumber),
		validator.Typed("FechaYHoraEstaMedicionMes", validator.String),
	}
	stockRules = []validator.Rule{
		{Key: "VolumenExistenciasMes", Required: true, Range: validator.Between("-1e11", "1e11")},
		{Key: "FechaYHoraEstaMedicionMes", Required: true, Pattern: catalog.UTCDateTime},
	}

	volumeSchema = validator.Schema{
		validator.BoundedField("ValorNumerico", &validator.ValorNumerico),
		validator.Typed("UnidadDeMedida", validator.String),
	}
	volumeRules = []validator.Rule{
		{Key: "ValorNumerico", Required: true, Range: validator.Between("0", "1e11")},
		{Key: "UnidadDeMedida", Required: true, Pattern: catalog.MeasureUnit},
	}
)

// movement describes Recepciones or Entregas, which share their layout but
// not their key names and bounds.
type movement struct {
	key      string
	kind     domain.ErrorKind
	schema   validator.Schema
	required []string
	rules    []validator.Rule
	volume   string
	// calorific reports whether PoderCalorifico must be declared.
	calorific func(product string, c domain.Caracter) bool
}

var (
	receptions = movement{
		key:  "Recepciones",
		kind: domain.KindRecepciones,
		schema: validator.Schema{
			validator.Typed("TotalRecepcionesMes", validator.Integer),
			validator.Typed("SumaVolumenRecepcionMes", validator.Object),
			validator.Typed("TotalDocumentosMes", validator.Integer),
			validator.Typed("PoderCalorifico", validator.Object),
			validator.BoundedField("ImporteTotalRecepcionesMensual", &validator.PositiveNumber),
			validator.Typed("Complemento", validator.List),
		},
		required: []string{"TotalRecepcionesMes", "SumaVolumenRecepcionMes", "TotalDocumentosMes", "ImporteTotalRecepcionesMensual"},
		rules: []validator.Rule{
			{Key: "TotalRecepcionesMes", Range: validator.Between("0", "1e8")},
			{Key: "TotalDocumentosMes", Range: validator.Between("0", "1e6")},
			{Key: "ImporteTotalRecepcionesMensual", Range: validator.Between("0", "1e11")},
		},
		volume: "SumaVolumenRecepcionMes",
		calorific: func(product string, c domain.Caracter) bool {
			return product == catalog.ProductNaturalGas && c.Petroleum()
		},
	}

	deliveries = movement{
		key:  "Entregas",
		kind: domain.KindEntregas,
		schema: validator.Schema{
			validator.Typed("TotalEntregasMes", validator.Integer),
			validator.Typed("SumaVolumenEntregadoMes", validator.Object),
			validator.Typed("TotalDocumentosMes", validator.Integer),
			validator.Typed("PoderCalorifico", validator.Object),
			validator.BoundedField("ImporteTotalEntregasMes", &validator.PositiveNumber),
			validator.Typed("Complemento", validator.List),
		},
		required: []string{"TotalEntregasMes", "SumaVolumenEntregadoMes", "TotalDocumentosMes", "ImporteTotalEntregasMes"},
		rules: []validator.Rule{
			{Key: "TotalEntregasMes", Range: validator.Between("0", "1e7")},
			{Key: "TotalDocumentosMes", Range: validator.Between("0", "1e8")},
			{Key: "ImporteTotalEntregasMes", Range: validator.Between("0", "1e11")},
		},
		volume: "SumaVolumenEntregadoMes",
		calorific: func(product string, _ domain.Caracter) bool {
			return product == catalog.ProductNaturalGas
		},
	}
)

// Validator checks one ReporteDeVolumenMensual. Sources are relative to the
// report; the product validator prefixes them.
type Validator struct {
	report   map[string]any
	product  string
	caracter domain.Caracter
	acc      *validator.Accumulator
}

// New creates a Validator for the monthly report of product.
func New(report map[string]any, product string, caracter domain.Caracter) *Validator {
	return &Validator{
		report:   report,
		product:  product,
		caracter: caracter,
		acc:      validator.NewAccumulator(),
	}
}

// Validate runs every check. It never stops early.
func (v *Validator) Validate() {
	v.validateStock()
	v.validateMovement(receptions)
	v.validateMovement(deliveries)
}

// Records returns the collected records in traversal order.
func (v *Validator) Records() []domain.ErrorRecord {
	return v.acc.Records()
}

func (v *Validator) validateStock() {
	raw, ok := validator.Present(v.report, "ControlDeExistencias")
	if !ok {
		return
	}
	stock, ok := validator.AsObject(raw)
	if !ok {
		v.acc.WrongType("ControlDeExistencias", validator.Object, "ControlDeExistencias")
		return
	}
	failed := v.acc.CheckTypes(stock, stockSchema, "ControlDeExistencias")
	v.acc.ApplyExcept(stock, "ControlDeExistencias", failed, stockRules...)
}

func (v *Validator) validateMovement(m movement) {
	raw, ok := validator.Present(v.report, m.key)
	if !ok {
		v.acc.CatchError(m.kind, fmt.Sprintf("Error: '%s' no fue declarada.", m.key), m.key)
		return
	}
	obj, ok := validator.AsObject(raw)
	if !ok {
		v.acc.WrongType(m.key, validator.Object, m.key)
		return
	}

	failed := v.acc.CheckTypes(obj, m.schema, m.key)
	v.validateTotals(m, obj, failed)
	v.validateComplement(m, obj)
}

func (v *Validator) validateTotals(m movement, obj map[string]any, failed map[string]bool) {
	for _, key := range m.required {
		if _, ok := validator.Present(obj, key); !ok {
			v.acc.CatchError(m.kind, fmt.Sprintf("Error: '%s' no fue declarada.", key), validator.Join(m.key, key))
		}
	}
	v.acc.ApplyExcept(obj, m.key, failed, m.rules...)

	if vol, ok := validator.Present(obj, m.volume); ok && !failed[m.volume] {
		path := validator.Join(m.key, m.volume)
		volume, _ := validator.AsObject(vol)
		volFailed := v.acc.CheckTypes(volume, volumeSchema, path)
		v.acc.ApplyExcept(volume, path, volFailed, volumeRules...)
	}

	if _, ok := validator.Present(obj, "PoderCalorifico"); !ok && m.calorific(v.product, v.caracter) {
		v.acc.CatchError(m.kind,
			fmt.Sprintf("Error: 'PoderCalorifico' es requerido en '%s' para Producto '%s'.", m.key, v.product),
			validator.Join(m.key, "PoderCalorifico"))
	}
}

// validateComplement reads the declared type from the first item and merges
// the variant's records under m.key.
func (v *Validator) validateComplement(m movement, obj map[string]any) {
	path := validator.Join(m.key, "Complemento")
	raw, ok := validator.Present(obj, "Complemento")
	if !ok {
		v.acc.CatchError(domain.KindMissingKey, "Error: clave 'Complemento' no fue expresada.", path)
		return
	}
	items, ok := validator.AsList(raw)
	if !ok {
		// already reported by the type check
		return
	}
	if len(items) == 0 {
		v.acc.CatchError(domain.KindMissingKey, "Error: clave 'Complemento' vacía.", path)
		return
	}

	first, ok := validator.AsObject(items[0])
	if !ok {
		v.acc.WrongType("Complemento", validator.Object, validator.Index(path, 0))
		return
	}
	declared, ok := validator.Present(first, "TipoComplemento")
	if !ok {
		v.acc.MissingKey("TipoComplemento", validator.Join(validator.Index(path, 0), "TipoComplemento"))
		return
	}
	kind, _ := validator.AsString(declared)

	c, err := complement.New(items, domain.ComplementType(kind))
	if err != nil {
		if !errors.Is(err, domain.ErrUnsupportedComplement) {
			log.Printf("monthly.Validator: building complement for %s: %v", m.key, err)
		}
		v.acc.CatchError(domain.KindUnsupportedVariant,
			fmt.Sprintf("Error: TipoComplemento '%s' no soportado.", validator.FormatValue(declared)), path)
		return
	}
	c.Validate()
	v.acc.Merge(m.key, c.Records())
}
