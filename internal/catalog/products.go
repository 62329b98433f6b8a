package catalog

// Claves de producto.
const (
	ProductDiesel       = "PR03"
	ProductGasoline     = "PR07"
	ProductPetroleum    = "PR08"
	ProductNaturalGas   = "PR09"
	ProductCondensates  = "PR10"
	ProductJetFuel      = "PR11"
	ProductLPG          = "PR12"
	ProductPropaneMix   = "PR13"
	ProductFuelOil      = "PR14"
	ProductOthers       = "PR15"
	ProductPetrochem    = "PR16"
	ProductAviationFuel = "PR17"
	ProductLubricant    = "PR18"
	ProductBiogas       = "PR19"

	SubProductOthers = "SP20"
)

// Products lists every accepted ClaveProducto.
var Products = []string{
	ProductDiesel, ProductGasoline, ProductPetroleum, ProductNaturalGas,
	ProductCondensates, ProductJetFuel, ProductLPG, ProductPropaneMix,
	ProductFuelOil, ProductOthers, ProductPetrochem, ProductAviationFuel,
	ProductLubricant, ProductBiogas,
}

// subProducts maps each product that declares subproducts to its allowed set.
var subProducts = map[string][]string{
	ProductGasoline:     {"SP16", "SP17"},
	ProductDiesel:       {"SP18", "SP19", "SP22", "SP23", "SP24", "SP25"},
	ProductOthers:       {"SP20", "SP21", "SP36", "SP39", "SP40"},
	ProductPetroleum:    {"SP1", "SP2", "SP3", "SP4", "SP5", "SP6", "SP7", "SP8", "SP9", "SP10", "SP11", "SP12", "SP13", "SP14", "SP15"},
	ProductNaturalGas:   {"SP27", "SP28", "SP29", "SP37", "SP38", "SP41", "SP42", "SP43", "SP44", "SP17"},
	ProductJetFuel:      {"SP34", "SP35"},
	ProductPropaneMix:   {"SP30", "SP31", "SP32", "SP33"},
	ProductPetrochem:    {"SP48"},
	ProductAviationFuel: {"SP45", "SP46"},
	ProductLubricant:    {"SP26"},
	ProductBiogas:       {"SP42"},
}

// IsProduct reports whether key is an accepted ClaveProducto.
func IsProduct(key string) bool {
	for _, p := range Products {
		if p == key {
			return true
		}
	}
	return false
}

// HasSubProducts reports whether product requires a ClaveSubProducto.
func HasSubProducts(product string) bool {
	_, ok := subProducts[product]
	return ok
}

// SubProducts returns the allowed subproducts of product.
func SubProducts(product string) []string {
	return subProducts[product]
}

// IsSubProductOf reports whether sub belongs to product.
func IsSubProductOf(product, sub string) bool {
	for _, s := range subProducts[product] {
		if s == sub {
			return true
		}
	}
	return false
}

// ForbidsSubProduct reports whether product must not carry a subproduct.
func ForbidsSubProduct(product string) bool {
	return product == ProductCondensates || product == ProductFuelOil
}
