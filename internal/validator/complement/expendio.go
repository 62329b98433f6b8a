package complement

import (
	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

var (
	expendioTerminal = terminalSpec{
		storage: fields{
			text("TerminalAlmYDist").required().length(5, 250),
			text("PermisoAlmYDist").required().pattern(catalog.PermitStorage),
			money("TarifaDeAlmac", "0"),
			money("CargoPorCapacidadAlmac", "0"),
			money("CargoPorUsoAlmac", "0"),
			money("CargoVolumetricoAlmac", "0"),
		},
		transport: fields{
			text("PermisoTransporte").required().pattern(catalog.PermitTransportRetail),
			text("ClaveDeVehiculo").length(6, 12),
			money("TarifaDeTransporte", "0"),
			money("CargoPorCapacidadTransporte", "0"),
			money("CargoPorUsoTrans", "0"),
			money("CargoVolumetricoTrans", "0"),
		},
	}

	expendioNacional = nacionalSpec{
		party: fields{
			text("RfcClienteOProveedor").required().pattern(catalog.RFC),
			text("NombreClienteOProveedor").required().length(10, 150),
			text("PermisoProveedor").pattern(catalog.PermitRetailSupplier),
		},
		cfdi: cfdiSpec{
			amounts: fields{
				money("PrecioCompra", "0").required(),
				money("PrecioDeVentaAlPublico", "0"),
				money("PrecioVenta", "1"),
			},
			conditional: retailPrices,
		},
	}

	expendioExtranjero = extranjeroSpec{
		permit:    "PermisoImportacion",
		pedimento: importPedimento,
	}
)

// retailPrices enforces the sale prices that only apply to income vouchers:
// PrecioDeVentaAlPublico is required for an Ingreso CFDI and PrecioVenta may
// only appear on one.
func retailPrices(it *item, cfdi map[string]any, path string) {
	tipo, _ := validator.AsString(cfdi["TipoCfdi"])
	income := domain.CfdiType(tipo) == domain.CfdiIngreso

	if _, ok := validator.Present(cfdi, "PrecioDeVentaAlPublico"); income && !ok {
		it.acc.CatchError(domain.KindConditional,
			"Error: clave 'PrecioDeVentaAlPublico' es condicional cuando clave 'TipoCFDI' = 'Ingreso'.",
			validator.Join(path, "PrecioDeVentaAlPublico"))
	}
	if _, ok := validator.Present(cfdi, "PrecioVenta"); ok && !income {
		it.acc.CatchError(domain.KindConditional,
			"Error: clave 'PrecioVenta' es condicional cuando clave 'TipoCFDI' = 'Ingreso'.",
			validator.Join(path, "PrecioVenta"))
	}
}

// Expendio validates retail (expendio al público) complements.
type Expendio struct {
	*builder
}

// NewExpendio builds the retail variant over items.
func NewExpendio(items []any) *Expendio {
	return &Expendio{newBuilder(domain.ComplementExpendio, items,
		checkShape(fields{
			shapeOnly("TipoComplemento", validator.String),
			shapeOnly("TerminalAlmYDist", validator.Object),
			shapeOnly("Dictamen", validator.Object),
			shapeOnly("Certificado", validator.Object),
			shapeOnly("Nacional", validator.List),
			shapeOnly("Extranjero", extranjeroType(expendioExtranjero)),
			shapeOnly("Aclaracion", validator.String),
		}),
		checkTipo,
		checkTerminal(expendioTerminal),
		checkDictamen,
		checkCertificado,
		checkNacional(expendioNacional),
		checkExtranjero(expendioExtranjero),
		checkAclaracion,
	)}
}
