package complement

import (
	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

var (
	almacenamientoTransporte = fields{
		text("PermisoTransporte").required().pattern(catalog.PermitTransport),
		text("ClaveVehiculo").length(6, 12),
		money("TarifaDeTransporte", "0").required(),
		money("CargoPorCapacidadTransporte", "0"),
		money("CargoPorUsoTrans", "0"),
		money("CargoVolumetricoTransporte", "0"),
	}

	almacenamientoNacional = nacionalSpec{
		party: fields{
			text("RfcClienteOProveedor").required().pattern(catalog.RFC),
			text("NombreClienteOProveedor").required().length(10, 150),
			text("PermisoProveedor").pattern(catalog.PermitCounterparty),
		},
		cfdi: cfdiSpec{amounts: fields{
			money("PrecioCompra", "0"),
			money("Contraprestacion", "1"),
			money("TarifaDeAlmacenamiento", "1"),
			money("CargoPorCapacidadAlmac", "1"),
			money("CargoPorUsoAlmac", "1"),
			money("CargoVolumetricoAlmac", "1"),
			money("Descuento", "1"),
		}},
	}

	almacenamientoExtranjero = extranjeroSpec{
		asList:    true,
		permit:    "PermisoImportacion",
		pedimento: importPedimento,
	}
)

// Almacenamiento validates storage complements. Its battery is the reference
// the other variants specialize.
type Almacenamiento struct {
	*builder
}

// NewAlmacenamiento builds the storage variant over items.
func NewAlmacenamiento(items []any) *Almacenamiento {
	return &Almacenamiento{newBuilder(domain.ComplementAlmacenamiento, items,
		checkShape(fields{
			shapeOnly("TipoComplemento", validator.String),
			shapeOnly("Transporte", validator.Object),
			shapeOnly("Dictamen", validator.Object),
			shapeOnly("Certificado", validator.Object),
			shapeOnly("Nacional", validator.List),
			shapeOnly("Extranjero", extranjeroType(almacenamientoExtranjero)),
			shapeOnly("Aclaracion", validator.String),
		}),
		checkTipo,
		checkObject("Transporte", almacenamientoTransporte),
		checkDictamen,
		checkCertificado,
		checkNacional(almacenamientoNacional),
		checkAclaracion,
		checkExtranjero(almacenamientoExtranjero),
	)}
}
