package complement_test

import (
	"volumetrico/internal/domain"
)

const (
	validRFC     = "ABC010101AB1"
	validCFDI    = "123e4567-e89b-12d3-a456-426614174000"
	validStamp   = "2024-01-15T10:30:00-06:00"
	validDecl    = "23  47  3807  3001234"
	validImport  = "1234ABC123456"
	validName    = "Proveedor Nacional SA de CV"
	validOutcome = "Cumple con la especificación vigente"
)

func volume() map[string]any {
	return map[string]any{"ValorNumerico": 5000.25, "UnidadDeMedida": "UM03"}
}

func storageCFDI() map[string]any {
	return map[string]any{
		"Cfdi":                  validCFDI,
		"TipoCfdi":              "Ingreso",
		"PrecioCompra":          1000,
		"Contraprestacion":      1200.5,
		"FechaYHoraTransaccion": validStamp,
		"VolumenDocumentado":    volume(),
	}
}

func storageNacional(cfdis ...map[string]any) map[string]any {
	list := make([]any, 0, len(cfdis))
	for _, c := range cfdis {
		list = append(list, c)
	}
	return map[string]any{
		"RfcClienteOProveedor":    validRFC,
		"NombreClienteOProveedor": validName,
		"PermisoProveedor":        "PL/1234/ALM/2019",
		"CFDIs":                   list,
	}
}

func importPedimento() map[string]any {
	return map[string]any{
		"PuntoDeInternacion":      "47",
		"PaisOrigen":              "USA",
		"MedioDeTransEntraAduana": "1",
		"PedimentoAduanal":        validDecl,
		"Incoterms":               "FOB",
		"PrecioDeImportacion":     1500.5,
		"VolumenDocumentado":      volume(),
	}
}

func tradePedimento() map[string]any {
	return map[string]any{
		"PuntoDeInternacionOExtraccion":   "470",
		"PaisOrigenODestino":              "CAN",
		"MedioDeTransEntraOSaleAduana":    "8",
		"PedimentoAduanal":                validDecl,
		"Incoterms":                       "CIF",
		"PrecioDeImportacionOExportacion": 2500,
		"VolumenDocumentado":              volume(),
	}
}

func dictamen() map[string]any {
	return map[string]any{
		"RfcDictamen":          validRFC,
		"LoteDictamen":         "L-2024-01",
		"NumeroFolioDictamen":  "ABC123452024",
		"FechaEmisionDictamen": "2024-01-15",
		"ResultadoDictamen":    validOutcome,
	}
}

func certificado() map[string]any {
	return map[string]any{
		"RfcCertificado":          validRFC,
		"NumeroFolioCertificado":  "XYZ000012024",
		"FechaEmisionCertificado": "2024-01-20",
		"ResultadoCertificado":    validOutcome,
	}
}

func storageItem() map[string]any {
	return map[string]any{
		"TipoComplemento": string(domain.ComplementAlmacenamiento),
		"Transporte": map[string]any{
			"PermisoTransporte":  "PL/1234/TRA/OM/2019",
			"ClaveVehiculo":      "ABC1234",
			"TarifaDeTransporte": 100.5,
		},
		"Dictamen":    dictamen(),
		"Certificado": certificado(),
		"Nacional":    []any{storageNacional(storageCFDI())},
		"Extranjero": []any{map[string]any{
			"PermisoImportacion": validImport,
			"Pedimentos":         []any{importPedimento()},
		}},
		"Aclaracion": "Sin observaciones relevantes",
	}
}

func items(objs ...map[string]any) []any {
	out := make([]any, 0, len(objs))
	for _, o := range objs {
		out = append(out, o)
	}
	return out
}
