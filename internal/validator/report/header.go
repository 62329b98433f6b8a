package report

import (
	"fmt"
	"sort"

	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

// topLevelKeys is the allowlist of keys a monthly report may declare.
var topLevelKeys = map[string]bool{
	"Version": true, "RfcContribuyente": true, "RfcRepresentanteLegal": true,
	"RfcProveedor": true, "RfcProveedores": true, "Caracter": true,
	"ModalidadPermiso": true, "NumPermiso": true, "NumContratoOAsignacion": true,
	"InstalacionAlmacenGasNatural": true, "ClaveInstalacion": true,
	"DescripcionInstalacion": true, "Geolocalizacion": true, "NumeroPozos": true,
	"NumeroTanques": true, "NumeroDuctosEntradaSalida": true,
	"NumeroDuctosTransporteDistribucion": true, "NumeroDispensarios": true,
	"FechaYHoraReporteMes": true, "Producto": true, "BitacoraMensual": true,
}

var countKeys = []string{
	"NumeroPozos",
	"NumeroTanques",
	"NumeroDuctosEntradaSalida",
	"NumeroDuctosTransporteDistribucion",
	"NumeroDispensarios",
}

func checkKeys(acc *validator.Accumulator, doc *validator.Document) {
	if !doc.Options.StrictTopLevel {
		return
	}
	keys := make([]string, 0, len(doc.Data))
	for k := range doc.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !topLevelKeys[k] {
			acc.CatchError(domain.KindMissingKey, fmt.Sprintf("Error: elemento '%s' no definido en esquema.", k), k)
		}
	}
}

func checkVersion(acc *validator.Accumulator, doc *validator.Document) {
	acc.Apply(doc.Data, "", validator.Rule{Key: "Version", Required: true, Pattern: catalog.Version})
}

func checkRFC(acc *validator.Accumulator, doc *validator.Document) {
	acc.Apply(doc.Data, "", validator.Rule{
		Key: "RfcContribuyente", Required: true, Pattern: catalog.RFC, Length: validator.Len(12, 13),
	})
	rfc, ok := validator.AsString(doc.Data["RfcContribuyente"])
	if !ok || len([]rune(rfc)) != 12 {
		return
	}
	// A 12-character RFC belongs to a legal entity, which files through a
	// legal representative.
	acc.Apply(doc.Data, "", validator.Rule{
		Key: "RfcRepresentanteLegal", Required: true, Pattern: catalog.RFCFisica, Length: validator.Len(13, 13),
	})
}

func checkInstallation(acc *validator.Accumulator, doc *validator.Document) {
	acc.Apply(doc.Data, "",
		validator.Rule{Key: "ClaveInstalacion", Required: true, Length: validator.Len(8, 30)},
		validator.Rule{Key: "DescripcionInstalacion", Required: true, Length: validator.Len(5, 250)},
	)
}

var geoRules = []validator.Rule{
	{Key: "GeolocalizacionLatitud", Range: validator.Between("-90", "90")},
	{Key: "GeolocalizacionLongitud", Range: validator.Between("-180", "180")},
}

// checkGeolocation accepts the object form and the single-element list form
// some emitters produce.
func checkGeolocation(acc *validator.Accumulator, doc *validator.Document) {
	raw, ok := validator.Present(doc.Data, "Geolocalizacion")
	if !ok {
		return
	}
	if obj, ok := validator.AsObject(raw); ok {
		acc.Apply(obj, "Geolocalizacion", geoRules...)
		return
	}
	list, ok := validator.AsList(raw)
	if !ok {
		acc.WrongType("Geolocalizacion", validator.Object, "Geolocalizacion")
		return
	}
	for i, item := range list {
		path := validator.Index("Geolocalizacion", i)
		obj, ok := validator.AsObject(item)
		if !ok {
			acc.WrongType("Geolocalizacion", validator.Object, path)
			continue
		}
		acc.Apply(obj, path, geoRules...)
	}
}

func checkCounts(acc *validator.Accumulator, doc *validator.Document) {
	for _, key := range countKeys {
		v, ok := validator.Present(doc.Data, key)
		if !ok {
			acc.MissingKey(key, key)
			continue
		}
		n, ok := validator.ToInt64(v)
		if !ok || n < 0 {
			acc.InvalidValue(key, v, key)
		}
	}
}

func checkDate(acc *validator.Accumulator, doc *validator.Document) {
	acc.Apply(doc.Data, "", validator.Rule{Key: "FechaYHoraReporteMes", Required: true, Pattern: catalog.UTCDateTime})
}

func checkSupplier(acc *validator.Accumulator, doc *validator.Document) {
	acc.Apply(doc.Data, "", validator.Rule{Key: "RfcProveedor", Length: validator.Len(12, 13)})

	raw, ok := validator.Present(doc.Data, "RfcProveedores")
	if !ok {
		return
	}
	list, ok := validator.AsList(raw)
	if !ok {
		acc.WrongType("RfcProveedores", validator.List, "RfcProveedores")
		return
	}
	for i, item := range list {
		path := validator.Index("RfcProveedores", i)
		rfc, ok := validator.AsString(item)
		if !ok {
			acc.WrongType("RfcProveedores", validator.String, path)
			continue
		}
		if !catalog.RFC.MatchString(rfc) {
			acc.RegexMismatch("RfcProveedores", rfc, catalog.RFC.String(), path)
		}
	}
}
