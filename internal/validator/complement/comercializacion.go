package complement

import (
	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

var (
	comercializacionTerminal = terminalSpec{
		storage: fields{
			text("TerminalAlmYDist").required().length(5, 250),
			text("PermisoAlmYDist").required().pattern(catalog.PermitStorageOrDistribution),
			money("TarifaDeAlmacenamiento", "0"),
			money("CargoPorCapacidadAlmac", "0"),
			money("CargoPorUsoAlmac", "0"),
			money("CargoVolumetricoAlmac", "0"),
		},
		transport: fields{
			text("PermisoTransporte").required().pattern(catalog.PermitTransport),
			text("ClaveDeVehiculo").length(6, 12),
			money("TarifaDeTransporte", "0").required(),
			money("CargoPorCapacidadTrans", "0"),
			money("CargoPorUsoTrans", "0"),
			money("CargoVolumetricoTrans", "0"),
		},
	}

	comercializacionNacional = nacionalSpec{
		party: fields{
			text("RfcClienteOProveedor").required().pattern(catalog.RFC),
			text("NombreClienteOProveedor").required().length(10, 150),
			text("PermisoClienteOProveedor").pattern(catalog.PermitCounterparty),
		},
		cfdi: cfdiSpec{amounts: fields{
			money("PrecioVentaOCompraOContrap", "0").required(),
		}},
	}

	comercializacionExtranjero = extranjeroSpec{
		asList:    true,
		permit:    "PermisoImportacionOExportacion",
		pedimento: tradePedimento,
	}
)

// Comercializacion validates commercialization complements.
type Comercializacion struct {
	*builder
}

// NewComercializacion builds the commercialization variant over items.
func NewComercializacion(items []any) *Comercializacion {
	return &Comercializacion{newBuilder(domain.ComplementComercializacion, items,
		checkShape(fields{
			shapeOnly("TipoComplemento", validator.String),
			shapeOnly("TerminalAlmYDist", validator.Object),
			shapeOnly("Dictamen", validator.Object),
			shapeOnly("Nacional", validator.List),
			shapeOnly("Extranjero", extranjeroType(comercializacionExtranjero)),
			shapeOnly("Aclaracion", validator.String),
		}),
		checkTipo,
		checkTerminal(comercializacionTerminal),
		checkDictamen,
		checkNacional(comercializacionNacional),
		checkExtranjero(comercializacionExtranjero),
		checkAclaracion,
	)}
}
