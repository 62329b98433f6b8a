package complement

import (
	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

var (
	transporteTerminal = terminalSpec{
		flat: fields{
			text("TerminalAlmYDist").length(5, 250),
			text("PermisoAlmYDist").pattern(catalog.PermitStorageOrDistribution),
		},
	}

	transporteNacional = nacionalSpec{
		party: fields{
			text("RfcCliente").required().pattern(catalog.RFC),
			text("NombreCliente").required().length(10, 150),
		},
		cfdi: cfdiSpec{amounts: fields{
			money("Contraprestacion", "1").required(),
			money("TarifaDeTransporte", "1").required(),
			money("CargoPorCapacidadDeTrans", "1"),
			money("CargoPorUsoTrans", "1"),
			money("CargoVolumetricoTrans", "1"),
			money("Descuento", "1"),
		}},
	}
)

// Transporte validates transport complements. Carriers do not declare
// foreign trade, so there is no Extranjero section.
type Transporte struct {
	*builder
}

// NewTransporte builds the transport variant over items.
func NewTransporte(items []any) *Transporte {
	return &Transporte{newBuilder(domain.ComplementTransporte, items,
		checkShape(fields{
			shapeOnly("TipoComplemento", validator.String),
			shapeOnly("TerminalAlmYDist", validator.Object),
			shapeOnly("Certificado", validator.Object),
			shapeOnly("Nacional", validator.List),
			shapeOnly("Aclaracion", validator.String),
		}),
		checkTipo,
		checkTerminal(transporteTerminal),
		checkCertificado,
		checkNacional(transporteNacional),
		checkAclaracion,
	)}
}
