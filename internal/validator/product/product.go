// Package product validates the Producto list of a report: product and
// subproduct keys, the attributes each product may or must declare, the
// natural gas composition of PR09/PR10 and the monthly volume report.
package product

import (
	"fmt"
	"log"
	"strings"

	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
	"volumetrico/internal/validator/monthly"
)

// Validator checks every product of a report submitted under one caracter.
type Validator struct {
	products []any
	caracter domain.Caracter
	acc      *validator.Accumulator
}

// New creates a Validator over the decoded Producto list.
func New(products []any, caracter domain.Caracter) *Validator {
	return &Validator{products: products, caracter: caracter, acc: validator.NewAccumulator()}
}

// Validate checks the products in list order. Records are prefixed with
// "Producto[i]".
func (v *Validator) Validate() {
	for i, raw := range v.products {
		v.validateProduct(i, raw)
	}
}

// Records returns the collected records.
func (v *Validator) Records() []domain.ErrorRecord {
	return v.acc.Records()
}

func (v *Validator) validateProduct(i int, raw any) {
	acc := validator.NewAccumulator()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("product.Validator: recovered panic in product %d: %v", i, r)
			acc.CatchError(domain.KindInternal, fmt.Sprintf("Error: falla interna al validar Producto[%d]: %v", i, r), "")
		}
		v.acc.Merge(validator.Index("Producto", i), acc.Records())
	}()

	p, ok := validator.AsObject(raw)
	if !ok {
		acc.WrongType("Producto", validator.Object, "")
		return
	}
	c := check{acc: acc, p: p, caracter: v.caracter}
	c.failed = acc.CheckTypes(p, productSchema, "")
	c.key, _ = validator.AsString(p["ClaveProducto"])
	c.sub, _ = validator.AsString(p["ClaveSubProducto"])

	c.productKey()
	c.subProductKey()
	c.attributes()
	c.mandatory()
	c.others()
	c.marking()
	c.naturalGas()
	c.monthlyReport()
}

// check holds one product while its rules run.
type check struct {
	acc      *validator.Accumulator
	p        map[string]any
	caracter domain.Caracter
	key      string
	sub      string
	// failed holds the keys whose type check already failed.
	failed   map[string]bool
}

func (c *check) productError(format string, args ...any) {
	c.acc.CatchError(domain.KindProduct, fmt.Sprintf(format, args...), "ClaveSubProducto")
}

func (c *check) productKey() {
	raw, ok := validator.Present(c.p, "ClaveProducto")
	if !ok {
		c.acc.MissingKey("ClaveProducto", "ClaveProducto")
		return
	}
	if c.failed["ClaveProducto"] {
		return
	}
	if !catalog.IsProduct(c.key) {
		c.acc.InvalidValue("ClaveProducto", raw, "ClaveProducto")
	}
}

func (c *check) subProductKey() {
	_, declared := validator.Present(c.p, "ClaveSubProducto")
	switch {
	case catalog.ForbidsSubProduct(c.key):
		if declared {
			c.productError("Error: ClaveProducto %s no cuenta con ClaveSubProducto.", c.key)
		}
		return
	case !declared:
		if catalog.HasSubProducts(c.key) {
			c.acc.CatchError(domain.KindSubProductKey,
				fmt.Sprintf("Error: Elemento 'ClaveSubProducto' requerido para ClaveProducto: %s", c.key),
				"ClaveSubProducto")
		}
		return
	case c.failed["ClaveSubProducto"]:
		return
	}

	if !catalog.SubProduct.MatchString(c.sub) {
		c.acc.RegexMismatch("ClaveSubProducto", c.sub, catalog.SubProduct.String(), "ClaveSubProducto")
		return
	}
	if catalog.HasSubProducts(c.key) && !catalog.IsSubProductOf(c.key, c.sub) {
		c.productError("Error: para ClaveProducto %s los valores en ClaveSubProducto deben ser %s.",
			c.key, strings.Join(catalog.SubProducts(c.key), ", "))
	}
}

func (c *check) attributes() {
	for _, a := range attributes {
		v, ok := validator.Present(c.p, a.key)
		if !ok {
			continue
		}
		if a.product != "" && !c.failed["ClaveProducto"] && c.key != a.product {
			c.acc.CatchError(domain.KindProductKey,
				fmt.Sprintf("Error: clave %s solo debe expresarse en ClaveProducto %s.", a.key, a.product), a.key)
		}
		if a.petroleum && !c.caracter.Petroleum() {
			c.acc.CatchError(domain.KindCaracter,
				fmt.Sprintf("Error: '%s' solo pertenece a los caracteres %s, %s.", a.key,
					domain.CaracterContratista, domain.CaracterAsignatario), a.key)
		}
		if c.failed[a.key] {
			continue
		}
		if a.siNo {
			if s, _ := validator.AsString(v); !domain.SiNo(s).Valid() {
				c.acc.InvalidValue(a.key, v, a.key)
			}
		}
		if a.rng != nil {
			c.acc.CheckRange(a.key, v, a.rng, a.key)
		}
	}
}

func (c *check) mandatory() {
	for _, key := range mandatory[c.key] {
		if _, ok := validator.Present(c.p, key); !ok {
			c.acc.CatchError(domain.KindProduct,
				fmt.Sprintf("Error: para ClaveProducto %s debe existir el elemento '%s'.", c.key, key), key)
		}
	}
	for _, b := range blends {
		flag, _ := validator.AsString(c.p[b.flag])
		if domain.SiNo(flag) != domain.Si {
			continue
		}
		if _, ok := validator.Present(c.p, b.share); !ok {
			c.acc.CatchError(domain.KindProduct,
				fmt.Sprintf("Error: para valor 'Sí' en clave '%s' debe existir elemento '%s'.", b.flag, b.share), b.share)
		}
	}
}

func (c *check) others() {
	rule := validator.Rule{Key: "Otros", Length: validator.Len(1, 30)}
	if c.key == catalog.ProductOthers && c.sub == catalog.SubProductOthers {
		rule.Required = true
	}
	c.acc.ApplyExcept(c.p, "", c.failed, rule)
}

func (c *check) marking() {
	c.acc.ApplyExcept(c.p, "", c.failed,
		validator.Rule{Key: "MarcaComercial", Length: validator.Len(2, 200)},
		validator.Rule{Key: "Marcaje", Length: validator.Len(2, 40)},
		validator.Rule{Key: "ConcentracionSustanciaMarcaje", Range: validator.Between("1", "1000")},
	)
	_, marked := validator.Present(c.p, "Marcaje")
	_, concentration := validator.Present(c.p, "ConcentracionSustanciaMarcaje")
	if marked && !concentration {
		c.acc.CatchError(domain.KindConditional,
			"Error: 'ConcentracionSustanciaMarcaje' debe expresarse si se manifiesta 'Marcaje'.",
			"ConcentracionSustanciaMarcaje")
	}
}

func (c *check) naturalGas() {
	if !c.caracter.Petroleum() || (c.key != catalog.ProductNaturalGas && c.key != catalog.ProductCondensates) {
		return
	}
	raw, ok := validator.Present(c.p, "GasNaturalOCondensados")
	if !ok {
		c.acc.CatchError(domain.KindProduct,
			fmt.Sprintf("Error: para ClaveProducto %s debe existir el elemento 'GasNaturalOCondensados'.", c.key),
			"GasNaturalOCondensados")
		return
	}
	components, ok := validator.AsList(raw)
	if !ok {
		return
	}
	if n := len(components); n < 2 || n > 10 {
		c.acc.CatchError(domain.KindLength,
			fmt.Sprintf("Error: clave GasNaturalOCondensados con %d elementos no tiene una longitud min 2 ó max 10.", n),
			"GasNaturalOCondensados")
	}
	for j, item := range components {
		path := validator.Index("GasNaturalOCondensados", j)
		component, ok := validator.AsObject(item)
		if !ok {
			c.acc.WrongType("GasNaturalOCondensados", validator.Object, path)
			continue
		}
		g := NewGasValidator(component)
		g.Validate()
		c.acc.Merge(path, g.Records())
	}
}

func (c *check) monthlyReport() {
	raw, ok := validator.Present(c.p, "ReporteDeVolumenMensual")
	if !ok {
		c.acc.MissingKey("ReporteDeVolumenMensual", "ReporteDeVolumenMensual")
		return
	}
	report, ok := validator.AsObject(raw)
	if !ok {
		if !c.failed["ReporteDeVolumenMensual"] {
			c.acc.WrongType("ReporteDeVolumenMensual", validator.Object, "ReporteDeVolumenMensual")
		}
		return
	}
	m := monthly.New(report, c.key, c.caracter)
	m.Validate()
	c.acc.Merge("ReporteDeVolumenMensual", m.Records())
}
