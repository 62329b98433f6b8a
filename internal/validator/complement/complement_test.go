package complement_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volumetrico/internal/domain"
	"volumetrico/internal/validator/complement"
)

func run(t *testing.T, kind domain.ComplementType, list []any) []domain.ErrorRecord {
	t.Helper()
	c, err := complement.New(list, kind)
	require.NoError(t, err)
	c.Validate()
	return c.Records()
}

func ofKind(recs []domain.ErrorRecord, kind domain.ErrorKind) []domain.ErrorRecord {
	var out []domain.ErrorRecord
	for _, r := range recs {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

func TestAlmacenamiento_ValidItemHasNoErrors(t *testing.T) {
	recs := run(t, domain.ComplementAlmacenamiento, items(storageItem()))
	assert.Empty(t, recs)
}

func TestComplement_EveryViolationIsReported(t *testing.T) {
	badTipo := storageItem()
	badTipo["TipoComplemento"] = "Otro"

	badDictamen := storageItem()
	delete(badDictamen["Dictamen"].(map[string]any), "LoteDictamen")

	badAclaracion := storageItem()
	badAclaracion["Aclaracion"] = "corta"

	badCfdi := storageItem()
	cfdi := storageCFDI()
	cfdi["Cfdi"] = "not-a-uuid"
	badCfdi["Nacional"] = []any{storageNacional(cfdi)}

	recs := run(t, domain.ComplementAlmacenamiento, items(badTipo, badDictamen, badAclaracion, badCfdi))
	require.Len(t, recs, 4)
	assert.Equal(t, domain.KindInvalidValue, recs[0].Kind)
	assert.Equal(t, "Complemento[0].TipoComplemento", recs[0].Source)
	assert.Equal(t, domain.KindMissingKey, recs[1].Kind)
	assert.Equal(t, "Complemento[1].Dictamen.LoteDictamen", recs[1].Source)
	assert.Equal(t, domain.KindLength, recs[2].Kind)
	assert.Equal(t, "Complemento[2].Aclaracion", recs[2].Source)
	assert.Equal(t, domain.KindRegex, recs[3].Kind)
	assert.Equal(t, "Complemento[3].Nacional[0].CFDIs[0].Cfdi", recs[3].Source)
}

func TestComplement_ChecksInsideOneItemDoNotShortCircuit(t *testing.T) {
	it := storageItem()
	it["Dictamen"] = map[string]any{}
	recs := run(t, domain.ComplementAlmacenamiento, items(it))
	assert.Len(t, ofKind(recs, domain.KindMissingKey), 5)
}

func TestComplement_MissingOptionalSectionsAreSilent(t *testing.T) {
	for _, kind := range complement.Supported {
		t.Run(string(kind), func(t *testing.T) {
			recs := run(t, kind, items(map[string]any{"TipoComplemento": string(kind)}))
			assert.Empty(t, recs)
		})
	}
}

func TestComplement_DiscriminatorClosure(t *testing.T) {
	it := storageItem()
	it["TipoComplemento"] = "Petroquimica"
	it["Aclaracion"] = "corta"

	recs := run(t, domain.ComplementAlmacenamiento, items(it))
	require.Len(t, ofKind(recs, domain.KindInvalidValue), 1)
	assert.Equal(t, "Error: valor 'Petroquimica' en clave TipoComplemento no válido.", recs[0].Error)
	assert.Len(t, ofKind(recs, domain.KindLength), 1, "later sections still run")

	for _, declared := range domain.ComplementTypes {
		it := storageItem()
		it["TipoComplemento"] = string(declared)
		assert.Empty(t, run(t, domain.ComplementAlmacenamiento, items(it)), declared)
	}
}

func TestComplement_MonetaryBoundsAreInclusive(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		value  any
		errors int
	}{
		{"min 1 at min", "Descuento", json.Number("1"), 0},
		{"min 1 below min", "Descuento", json.Number("0.999"), 1},
		{"min 0 at min", "PrecioCompra", json.Number("0"), 0},
		{"min 0 below min", "PrecioCompra", json.Number("-1"), 1},
		{"at max", "Contraprestacion", json.Number("1000000000000"), 0},
		{"above max", "Contraprestacion", json.Number("1000000000001"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfdi := storageCFDI()
			cfdi[tt.field] = tt.value
			it := storageItem()
			it["Nacional"] = []any{storageNacional(cfdi)}
			recs := run(t, domain.ComplementAlmacenamiento, items(it))
			assert.Len(t, recs, tt.errors)
			for _, r := range recs {
				assert.Equal(t, domain.KindRange, r.Kind)
			}
		})
	}
}

func TestComplement_PathComposition(t *testing.T) {
	bad := storageCFDI()
	bad["Cfdi"] = "BAD"
	it := storageItem()
	it["Nacional"] = []any{storageNacional(storageCFDI()), storageNacional(bad)}

	recs := run(t, domain.ComplementAlmacenamiento, items(storageItem(), it))
	require.Len(t, recs, 1)
	src := recs[0].Source
	assert.Equal(t, "Complemento[1].Nacional[1].CFDIs[0].Cfdi", src)
	assert.Less(t, strings.Index(src, "Complemento[1]"), strings.Index(src, "Nacional[1]"))
	assert.Less(t, strings.Index(src, "Nacional[1]"), strings.Index(src, "CFDIs[0]"))
}

func TestComplement_FactoryTotality(t *testing.T) {
	for _, kind := range complement.Supported {
		t.Run(string(kind), func(t *testing.T) {
			c, err := complement.New(nil, kind)
			require.NoError(t, err)
			assert.Equal(t, kind, c.Type())
			assert.NotPanics(t, c.Validate)
			assert.Empty(t, c.Records())
			assert.Empty(t, c.Errors())
		})
	}
}

func TestFactory_UnsupportedType(t *testing.T) {
	for _, kind := range []domain.ComplementType{domain.ComplementExtraccion, domain.ComplementRefinacion, "Desconocido"} {
		c, err := complement.New(nil, kind)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, domain.ErrUnsupportedComplement)
	}
}

func TestComplement_NacionalRFCAndName(t *testing.T) {
	recs := run(t, domain.ComplementAlmacenamiento, items(map[string]any{
		"TipoComplemento": "Almacenamiento",
		"Nacional": []any{map[string]any{
			"RfcClienteOProveedor":    "BAD",
			"NombreClienteOProveedor": "short",
		}},
	}))
	require.Len(t, recs, 2)
	assert.Equal(t, domain.KindRegex, recs[0].Kind)
	assert.Equal(t, "Complemento[0].Nacional[0].RfcClienteOProveedor", recs[0].Source)
	assert.Equal(t, domain.KindLength, recs[1].Kind)
	assert.Equal(t, "Complemento[0].Nacional[0].NombreClienteOProveedor", recs[1].Source)
	assert.Equal(t, "Error: clave NombreClienteOProveedor con valor short no tiene una longitud min 10 ó max 150.", recs[1].Error)
}

func TestComplement_PedimentoOneCharacterShort(t *testing.T) {
	ped := importPedimento()
	ped["PedimentoAduanal"] = "23  47  3807  300123"
	require.Len(t, []rune(ped["PedimentoAduanal"].(string)), 20)

	it := storageItem()
	it["Extranjero"] = []any{map[string]any{"PermisoImportacion": validImport, "Pedimentos": []any{ped}}}
	recs := run(t, domain.ComplementAlmacenamiento, items(it))
	require.Len(t, recs, 1)
	assert.Equal(t, domain.KindLength, recs[0].Kind)
	assert.Equal(t, "Complemento[0].Extranjero[0].Pedimentos[0].PedimentoAduanal", recs[0].Source)
}

func TestComplement_PublicPriceOnlyRequiredForRetail(t *testing.T) {
	cfdi := map[string]any{
		"Cfdi":                  validCFDI,
		"TipoCfdi":              "Ingreso",
		"PrecioCompra":          100,
		"FechaYHoraTransaccion": validStamp,
		"VolumenDocumentado":    volume(),
	}
	nat := map[string]any{
		"RfcClienteOProveedor":    validRFC,
		"NombreClienteOProveedor": validName,
		"CFDIs":                   []any{cfdi},
	}

	retail := run(t, domain.ComplementExpendio, items(map[string]any{"TipoComplemento": "Expendio", "Nacional": []any{nat}}))
	cond := ofKind(retail, domain.KindConditional)
	require.Len(t, cond, 1)
	assert.Equal(t, "Complemento[0].Nacional[0].CFDIs[0].PrecioDeVentaAlPublico", cond[0].Source)

	storage := run(t, domain.ComplementAlmacenamiento, items(map[string]any{"TipoComplemento": "Almacenamiento", "Nacional": []any{nat}}))
	assert.Empty(t, ofKind(storage, domain.KindConditional))
	assert.Empty(t, storage)
}

func TestComplement_ValorNumericoUpperBound(t *testing.T) {
	at := storageCFDI()
	at["VolumenDocumentado"] = map[string]any{"ValorNumerico": json.Number("100000000000"), "UnidadDeMedida": "UM01"}
	it := storageItem()
	it["Nacional"] = []any{storageNacional(at)}
	assert.Empty(t, run(t, domain.ComplementAlmacenamiento, items(it)))

	above := storageCFDI()
	above["VolumenDocumentado"] = map[string]any{"ValorNumerico": json.Number("100000000001"), "UnidadDeMedida": "UM01"}
	it = storageItem()
	it["Nacional"] = []any{storageNacional(above)}
	recs := run(t, domain.ComplementAlmacenamiento, items(it))
	require.Len(t, recs, 1)
	assert.Equal(t, domain.KindRange, recs[0].Kind)
	assert.Equal(t, "Complemento[0].Nacional[0].CFDIs[0].VolumenDocumentado.ValorNumerico", recs[0].Source)
}

func TestComplement_NullVolumeIsMissingKey(t *testing.T) {
	cfdi := storageCFDI()
	cfdi["VolumenDocumentado"] = nil
	it := storageItem()
	it["Nacional"] = []any{storageNacional(cfdi)}
	recs := run(t, domain.ComplementAlmacenamiento, items(it))
	require.Len(t, recs, 1)
	assert.Equal(t, domain.KindMissingKey, recs[0].Kind)
	assert.Equal(t, "Complemento[0].Nacional[0].CFDIs[0].VolumenDocumentado", recs[0].Source)
}

func TestComplement_WrongShapesAreReportedOnce(t *testing.T) {
	it := storageItem()
	it["Nacional"] = "no es lista"
	recs := run(t, domain.ComplementAlmacenamiento, items(it))
	require.Len(t, recs, 1)
	assert.Equal(t, domain.KindTypeMismatch, recs[0].Kind)
	assert.Equal(t, "Error: Clave Nacional no es de tipo list", recs[0].Error)

	recs = run(t, domain.ComplementAlmacenamiento, []any{"no es objeto"})
	require.Len(t, recs, 1)
	assert.Equal(t, "Complemento[0]", recs[0].Source)
}

func TestComplement_ErrorsIndexLastMessagePerKind(t *testing.T) {
	a := storageItem()
	a["Aclaracion"] = "corta"
	b := storageItem()
	b["Aclaracion"] = "tambien"
	c, err := complement.New(items(a, b), domain.ComplementAlmacenamiento)
	require.NoError(t, err)
	c.Validate()
	assert.Len(t, c.Records(), 2)
	assert.Contains(t, c.Errors()[domain.KindLength], "tambien")
}

func TestComplement_DeterministicOrder(t *testing.T) {
	it := storageItem()
	it["Dictamen"] = map[string]any{"RfcDictamen": "x"}
	it["Certificado"] = map[string]any{}
	first := run(t, domain.ComplementAlmacenamiento, items(it, it))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, run(t, domain.ComplementAlmacenamiento, items(it, it)))
	}
}

func TestComplement_TypeErrorsDoNotHideSiblingChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(it map[string]any)
		want   map[string]domain.ErrorKind
	}{
		{
			name: "cfdi amount out of range",
			mutate: func(it map[string]any) {
				cfdi := storageCFDI()
				cfdi["PrecioCompra"] = json.Number("2000000000000")
				cfdi["Cfdi"] = "not-a-uuid"
				cfdi["TipoCfdi"] = "Otro"
				it["Nacional"] = []any{storageNacional(cfdi)}
			},
			want: map[string]domain.ErrorKind{
				"Complemento[0].Nacional[0].CFDIs[0].PrecioCompra": domain.KindRange,
				"Complemento[0].Nacional[0].CFDIs[0].Cfdi":         domain.KindRegex,
				"Complemento[0].Nacional[0].CFDIs[0].TipoCfdi":     domain.KindInvalidValue,
			},
		},
		{
			name: "documented volume out of range",
			mutate: func(it map[string]any) {
				cfdi := storageCFDI()
				cfdi["VolumenDocumentado"] = map[string]any{"ValorNumerico": json.Number("100000000001"), "UnidadDeMedida": "BAD"}
				it["Nacional"] = []any{storageNacional(cfdi)}
			},
			want: map[string]domain.ErrorKind{
				"Complemento[0].Nacional[0].CFDIs[0].VolumenDocumentado.ValorNumerico":  domain.KindRange,
				"Complemento[0].Nacional[0].CFDIs[0].VolumenDocumentado.UnidadDeMedida": domain.KindRegex,
			},
		},
		{
			name: "dictamen with a wrong typed lot",
			mutate: func(it map[string]any) {
				it["Dictamen"] = map[string]any{"LoteDictamen": 5}
			},
			want: map[string]domain.ErrorKind{
				"Complemento[0].Dictamen.LoteDictamen":         domain.KindTypeMismatch,
				"Complemento[0].Dictamen.RfcDictamen":          domain.KindMissingKey,
				"Complemento[0].Dictamen.NumeroFolioDictamen":  domain.KindMissingKey,
				"Complemento[0].Dictamen.FechaEmisionDictamen": domain.KindMissingKey,
				"Complemento[0].Dictamen.ResultadoDictamen":    domain.KindMissingKey,
			},
		},
		{
			name: "pedimento with a numeric declaration",
			mutate: func(it map[string]any) {
				ped := importPedimento()
				ped["PedimentoAduanal"] = 2347
				ped["Incoterms"] = "XXX"
				delete(ped, "PaisOrigen")
				it["Extranjero"] = []any{map[string]any{"PermisoImportacion": validImport, "Pedimentos": []any{ped}}}
			},
			want: map[string]domain.ErrorKind{
				"Complemento[0].Extranjero[0].Pedimentos[0].PedimentoAduanal": domain.KindTypeMismatch,
				"Complemento[0].Extranjero[0].Pedimentos[0].Incoterms":        domain.KindInvalidValue,
				"Complemento[0].Extranjero[0].Pedimentos[0].PaisOrigen":       domain.KindMissingKey,
			},
		},
		{
			name: "nacional with a wrong typed name and a bad cfdi",
			mutate: func(it map[string]any) {
				cfdi := storageCFDI()
				cfdi["Cfdi"] = "BAD"
				nat := storageNacional(cfdi)
				nat["NombreClienteOProveedor"] = 12
				nat["RfcClienteOProveedor"] = "BAD"
				it["Nacional"] = []any{nat}
			},
			want: map[string]domain.ErrorKind{
				"Complemento[0].Nacional[0].NombreClienteOProveedor": domain.KindTypeMismatch,
				"Complemento[0].Nacional[0].RfcClienteOProveedor":    domain.KindRegex,
				"Complemento[0].Nacional[0].CFDIs[0].Cfdi":           domain.KindRegex,
			},
		},
		{
			name: "several wrong typed keys at the top",
			mutate: func(it map[string]any) {
				it["Nacional"] = "no es lista"
				it["Aclaracion"] = 10
				it["TipoComplemento"] = "Otro"
			},
			want: map[string]domain.ErrorKind{
				"Complemento[0].Nacional":        domain.KindTypeMismatch,
				"Complemento[0].Aclaracion":      domain.KindTypeMismatch,
				"Complemento[0].TipoComplemento": domain.KindInvalidValue,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := storageItem()
			tt.mutate(it)
			recs := run(t, domain.ComplementAlmacenamiento, items(it))
			got := make(map[string]domain.ErrorKind, len(recs))
			for _, r := range recs {
				got[r.Source] = r.Kind
			}
			assert.Equal(t, tt.want, got)
			assert.Len(t, recs, len(tt.want), "each defect is reported once")
		})
	}
}
