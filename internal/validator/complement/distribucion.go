package complement

import (
	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

var (
	distribucionTerminal = terminalSpec{
		storage: fields{
			text("TerminalAlm").required().length(5, 250),
			text("PermisoAlmacenamiento").required().pattern(catalog.PermitStorage),
			money("TarifaDeAlmacenamiento", "0").required(),
			money("CargoPorCapacidadAlmac", "0"),
			money("CargoPorUsoAlmac", "0"),
			money("CargoVolumetricoAlmac", "0"),
		},
		transport: fields{
			text("PermisoTransporte").required().pattern(catalog.PermitTransport),
			text("ClaveDeVehiculo").length(6, 12),
			money("TarifaDeTransporte", "0").required(),
			money("CargoPorCapacidadTransporte", "0"),
			money("CargoPorUsoTrans", "0"),
			money("CargoVolumetricoTrans", "0"),
			money("TarifaDeSuministro", "0"),
		},
	}

	distribucionNacional = nacionalSpec{
		party: fields{
			text("RfcClienteOProveedor").required().pattern(catalog.RFC),
			text("NombreClienteOProveedor").required().length(10, 150),
			text("PermisoClienteOProveedor").pattern(catalog.PermitDistributionCP),
		},
		cfdi: cfdiSpec{amounts: fields{
			money("PrecioVentaOCompraOContrap", "0").required(),
		}},
	}

	distribucionExtranjero = extranjeroSpec{
		permit:    "PermisoImportacionOExportacion",
		pedimento: tradePedimento,
	}
)

// Distribucion validates distribution complements.
type Distribucion struct {
	*builder
}

// NewDistribucion builds the distribution variant over items.
func NewDistribucion(items []any) *Distribucion {
	return &Distribucion{newBuilder(domain.ComplementDistribucion, items,
		checkShape(fields{
			shapeOnly("TipoComplemento", validator.String),
			shapeOnly("TerminalAlmYDist", validator.Object),
			shapeOnly("Dictamen", validator.Object),
			shapeOnly("Certificado", validator.Object),
			shapeOnly("Nacional", validator.List),
			shapeOnly("Extranjero", extranjeroType(distribucionExtranjero)),
			shapeOnly("Aclaracion", validator.String),
		}),
		checkTipo,
		checkTerminal(distribucionTerminal),
		checkDictamen,
		checkCertificado,
		checkNacional(distribucionNacional),
		checkExtranjero(distribucionExtranjero),
		checkAclaracion,
	)}
}
