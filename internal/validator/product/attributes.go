package product

import (
	"volumetrico/internal/catalog"
	"volumetrico/internal/validator"
)

// attribute is an optional product property that only some products, or only
// petroleum caracteres, may declare.
type attribute struct {
	key       string
	product   string
	petroleum bool
	siNo      bool
	rng       *validator.Range
}

var attributes = []attribute{
	{key: "ComposOctanajeGasolina", product: catalog.ProductGasoline, rng: validator.Between("87", "130")},
	{key: "GasolinaConCombustibleNoFosil", product: catalog.ProductGasoline, siNo: true},
	{key: "ComposDeCombustibleNoFosilEnGasolina", product: catalog.ProductGasoline, rng: validator.Between("1", "99")},
	{key: "DieselConCombustibleNoFosil", product: catalog.ProductDiesel, siNo: true},
	{key: "ComposDeCombustibleNoFosilEnDiesel", product: catalog.ProductDiesel, rng: validator.Between("1", "99")},
	{key: "TurbosinaConCombustibleNoFosil", product: catalog.ProductJetFuel, siNo: true},
	{key: "ComposDeCombustibleNoFosilEnTurbosina", product: catalog.ProductJetFuel, rng: validator.Between("1", "99")},
	{key: "ComposDePropanoEnGasLP", product: catalog.ProductLPG, rng: validator.Between("0.01", "99.99")},
	{key: "ComposDeButanoEnGasLP", product: catalog.ProductLPG, rng: validator.Between("0.01", "99.99")},
	{key: "DensidadDePetroleo", petroleum: true, rng: validator.Between("0.1", "80")},
	{key: "ComposDeAzufreEnPetroleo", product: catalog.ProductPetroleum, petroleum: true, rng: validator.Between("0.1", "10")},
}

// mandatory lists the attributes a product must declare.
var mandatory = map[string][]string{
	catalog.ProductGasoline:  {"ComposOctanajeGasolina", "GasolinaConCombustibleNoFosil"},
	catalog.ProductDiesel:    {"DieselConCombustibleNoFosil"},
	catalog.ProductJetFuel:   {"TurbosinaConCombustibleNoFosil"},
	catalog.ProductPetroleum: {"DensidadDePetroleo", "ComposDeAzufreEnPetroleo"},
	catalog.ProductLPG:       {"ComposDePropanoEnGasLP", "ComposDeButanoEnGasLP"},
}

// blend pairs a "contains non-fossil fuel" flag with the share that must be
// declared when the flag is "Sí".
type blend struct {
	flag  string
	share string
}

var blends = []blend{
	{flag: "GasolinaConCombustibleNoFosil", share: "ComposDeCombustibleNoFosilEnGasolina"},
	{flag: "DieselConCombustibleNoFosil", share: "ComposDeCombustibleNoFosilEnDiesel"},
	{flag: "TurbosinaConCombustibleNoFosil", share: "ComposDeCombustibleNoFosilEnTurbosina"},
}

var productSchema = validator.Schema{
	validator.Typed("ClaveProducto", validator.String),
	validator.Typed("ClaveSubProducto", validator.String),
	validator.Typed("ComposOctanajeGasolina", validator.Integer),
	validator.Typed("GasolinaConCombustibleNoFosil", validator.String),
	validator.Typed("ComposDeCombustibleNoFosilEnGasolina", validator.Integer),
	validator.Typed("DieselConCombustibleNoFosil", validator.String),
	validator.Typed("ComposDeCombustibleNoFosilEnDiesel", validator.Integer),
	validator.Typed("TurbosinaConCombustibleNoFosil", validator.String),
	validator.Typed("ComposDeCombustibleNoFosilEnTurbosina", validator.Integer),
	validator.Typed("ComposDePropanoEnGasLP", validator.Number),
	validator.Typed("ComposDeButanoEnGasLP", validator.Number),
	validator.Typed("DensidadDePetroleo", validator.Number),
	validator.Typed("ComposDeAzufreEnPetroleo", validator.Number),
	validator.Typed("Otros", validator.String),
	validator.Typed("MarcaComercial", validator.String),
	validator.Typed("Marcaje", validator.String),
	validator.Typed("ConcentracionSustanciaMarcaje", validator.Number),
	validator.Typed("GasNaturalOCondensados", validator.List),
	validator.Typed("ReporteDeVolumenMensual", validator.Object),
}
