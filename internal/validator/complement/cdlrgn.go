package complement

import (
	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

var (
	cdlrgnTerminal = terminalSpec{
		storage: fields{
			text("TerminalAlm").required().length(5, 250),
			text("PermisoAlmacenamiento").required().pattern(catalog.PermitLPGStorage),
		},
		transport: fields{
			text("PermisoTransporte").required().pattern(catalog.PermitLPGTransport),
			text("ClaveDeVehiculo").length(6, 12),
		},
	}

	cdlrgnNacional = nacionalSpec{
		party: fields{
			text("RfcCliente").required().pattern(catalog.RFC),
			text("NombreCliente").required().length(10, 150),
		},
		cfdi: cfdiSpec{amounts: fields{
			money("Contraprestacion", "1").required(),
		}},
	}

	cdlrgnExtranjero = extranjeroSpec{
		permit: "PermisoImportacionOExportacion",
		pedimento: pedimentoSpec{
			spot: "PuntoDeInternacionOExtraccion", country: "PaisOrigenODestino",
			mode: "MedioDeTransEntraOSaleAduana", price: "PrecioDeImportacion",
		},
	}
)

// CDLRGN validates complements of liquefied gas distribution terminals.
type CDLRGN struct {
	*builder
}

// NewCDLRGN builds the CDLRGN variant over items.
func NewCDLRGN(items []any) *CDLRGN {
	return &CDLRGN{newBuilder(domain.ComplementCDLRGN, items,
		checkShape(fields{
			shapeOnly("TipoComplemento", validator.String),
			shapeOnly("TerminalAlmYDist", validator.Object),
			shapeOnly("Certificado", validator.Object),
			shapeOnly("Nacional", validator.List),
			shapeOnly("Extranjero", extranjeroType(cdlrgnExtranjero)),
			shapeOnly("Aclaracion", validator.String),
		}),
		checkTipo,
		checkTerminal(cdlrgnTerminal),
		checkCertificado,
		checkNacional(cdlrgnNacional),
		checkExtranjero(cdlrgnExtranjero),
		checkAclaracion,
	)}
}
