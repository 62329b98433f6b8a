package report

import (
	"path/filepath"
	"strings"

	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

const fileNameSource = "NombreArchivo"

// checkFileName verifies the regulator's naming convention when the request
// asks for it.
func checkFileName(acc *validator.Accumulator, doc *validator.Document) {
	if !doc.Options.CheckFileName {
		return
	}
	name := strings.TrimSuffix(filepath.Base(doc.Options.FileName), ".json")

	if len(strings.Split(name, "_")) != catalog.FileNameSegments {
		acc.CatchError(domain.KindFileName,
			"Error: nombre de archivo no está compuesto por 'IdentificadorTipo_IdentificadorEnvio_RfcCV_RFCProveedor_Periodo_CveInstalacion_TipoReporte_TipoEstandar'.",
			fileNameSource)
	}
	if !catalog.FileName.MatchString(name) {
		acc.CatchError(domain.KindFileName, "Error: nombre de archivo no válido.", fileNameSource)
	}
}
