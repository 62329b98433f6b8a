package report

import (
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
	"volumetrico/internal/validator/product"
)

func checkProducts(acc *validator.Accumulator, doc *validator.Document) {
	raw, ok := validator.Present(doc.Data, "Producto")
	if !ok {
		acc.MissingKey("Producto", "Producto")
		return
	}
	list, ok := validator.AsList(raw)
	if !ok {
		acc.WrongType("Producto", validator.List, "Producto")
		return
	}
	if len(list) == 0 {
		acc.CatchError(domain.KindMissingKey, "Error: clave 'Producto' vacía.", "Producto")
		return
	}

	caracter, _ := validator.AsString(doc.Data["Caracter"])
	v := product.New(list, domain.Caracter(caracter))
	v.Validate()
	acc.Merge("", v.Records())
}
