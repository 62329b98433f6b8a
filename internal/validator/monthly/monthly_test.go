package monthly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volumetrico/internal/domain"
	"volumetrico/internal/validator/monthly"
)

func storageComplement() map[string]any {
	return map[string]any{
		"TipoComplemento": "Almacenamiento",
		"Aclaracion":      "Recepción por ducto sin incidencias",
	}
}

func validReport() map[string]any {
	return map[string]any{
		"ControlDeExistencias": map[string]any{
			"VolumenExistenciasMes":     -1500.5,
			"FechaYHoraEstaMedicionMes": "2024-01-31T23:59:59-06:00",
		},
		"Recepciones": map[string]any{
			"TotalRecepcionesMes":            12,
			"SumaVolumenRecepcionMes":        map[string]any{"ValorNumerico": 120000.5, "UnidadDeMedida": "UM03"},
			"TotalDocumentosMes":             12,
			"ImporteTotalRecepcionesMensual": 2500000.75,
			"Complemento":                    []any{storageComplement()},
		},
		"Entregas": map[string]any{
			"TotalEntregasMes":        8,
			"SumaVolumenEntregadoMes": map[string]any{"ValorNumerico": 90000, "UnidadDeMedida": "UM03"},
			"TotalDocumentosMes":      8,
			"ImporteTotalEntregasMes": 1900000,
			"Complemento":             []any{storageComplement()},
		},
	}
}

func validate(report map[string]any, product string, c domain.Caracter) []domain.ErrorRecord {
	v := monthly.New(report, product, c)
	v.Validate()
	return v.Records()
}

func TestValidate_ValidReport(t *testing.T) {
	assert.Empty(t, validate(validReport(), "PR07", domain.CaracterPermisionario))
}

func TestValidate_UnsupportedComplementType(t *testing.T) {
	for _, kind := range []string{"Extraccion", "Petroquimica"} {
		t.Run(kind, func(t *testing.T) {
			r := validReport()
			r["Recepciones"].(map[string]any)["Complemento"] = []any{
				map[string]any{"TipoComplemento": kind, "Aclaracion": "x"},
			}
			recs := validate(r, "PR07", domain.CaracterPermisionario)
			require.Len(t, recs, 1)
			assert.Equal(t, domain.KindUnsupportedVariant, recs[0].Kind)
			assert.Equal(t, "Recepciones.Complemento", recs[0].Source)
			assert.Contains(t, recs[0].Error, kind)
		})
	}
}

func TestValidate_ComplementRecordsArePrefixed(t *testing.T) {
	r := validReport()
	bad := storageComplement()
	bad["Aclaracion"] = "corta"
	r["Entregas"].(map[string]any)["Complemento"] = []any{storageComplement(), bad}

	recs := validate(r, "PR07", domain.CaracterPermisionario)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.KindLength, recs[0].Kind)
	assert.Equal(t, "Entregas.Complemento[1].Aclaracion", recs[0].Source)
}

func TestValidate_ComplementListProblems(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		kind    domain.ErrorKind
		source  string
		message string
	}{
		{"missing", nil, domain.KindMissingKey, "Recepciones.Complemento", "Error: clave 'Complemento' no fue expresada."},
		{"empty", []any{}, domain.KindMissingKey, "Recepciones.Complemento", "Error: clave 'Complemento' vacía."},
		{"untyped first item", []any{map[string]any{}}, domain.KindMissingKey, "Recepciones.Complemento[0].TipoComplemento", "Error: Elemento 'TipoComplemento' no declarado."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReport()
			rec := r["Recepciones"].(map[string]any)
			if tt.value == nil {
				delete(rec, "Complemento")
			} else {
				rec["Complemento"] = tt.value
			}
			recs := validate(r, "PR07", domain.CaracterPermisionario)
			require.Len(t, recs, 1)
			assert.Equal(t, tt.kind, recs[0].Kind)
			assert.Equal(t, tt.source, recs[0].Source)
			assert.Equal(t, tt.message, recs[0].Error)
		})
	}
}

func TestValidate_MissingMovements(t *testing.T) {
	r := validReport()
	delete(r, "Recepciones")
	delete(r, "Entregas")
	recs := validate(r, "PR07", domain.CaracterPermisionario)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.KindRecepciones, recs[0].Kind)
	assert.Equal(t, "Error: 'Recepciones' no fue declarada.", recs[0].Error)
	assert.Equal(t, domain.KindEntregas, recs[1].Kind)
}

func TestValidate_TotalsOutOfRange(t *testing.T) {
	r := validReport()
	rec := r["Recepciones"].(map[string]any)
	rec["TotalRecepcionesMes"] = 100000001
	rec["TotalDocumentosMes"] = 1000001
	delete(rec, "ImporteTotalRecepcionesMensual")

	recs := validate(r, "PR07", domain.CaracterPermisionario)
	require.Len(t, recs, 3)
	assert.Equal(t, domain.KindRecepciones, recs[0].Kind)
	assert.Equal(t, "Recepciones.ImporteTotalRecepcionesMensual", recs[0].Source)
	assert.Equal(t, domain.KindRange, recs[1].Kind)
	assert.Equal(t, "Recepciones.TotalRecepcionesMes", recs[1].Source)
	assert.Equal(t, domain.KindRange, recs[2].Kind)
	assert.Equal(t, "Recepciones.TotalDocumentosMes", recs[2].Source)
}

func TestValidate_TypeErrorKeepsComplementChecks(t *testing.T) {
	r := validReport()
	ent := r["Entregas"].(map[string]any)
	ent["TotalEntregasMes"] = "ocho"
	bad := storageComplement()
	bad["TipoComplemento"] = "Otro"
	ent["Complemento"] = []any{storageComplement(), bad}

	recs := validate(r, "PR07", domain.CaracterPermisionario)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.KindTypeMismatch, recs[0].Kind)
	assert.Equal(t, "Entregas.TotalEntregasMes", recs[0].Source)
	assert.Equal(t, domain.KindInvalidValue, recs[1].Kind)
	assert.Equal(t, "Entregas.Complemento[1].TipoComplemento", recs[1].Source)
}

func TestValidate_CalorificValueForNaturalGas(t *testing.T) {
	recs := validate(validReport(), "PR09", domain.CaracterContratista)
	require.Len(t, recs, 2)
	assert.Equal(t, "Recepciones.PoderCalorifico", recs[0].Source)
	assert.Equal(t, "Entregas.PoderCalorifico", recs[1].Source)

	recs = validate(validReport(), "PR09", domain.CaracterPermisionario)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.KindEntregas, recs[0].Kind)
}

func TestValidate_StockControl(t *testing.T) {
	r := validReport()
	r["ControlDeExistencias"] = map[string]any{
		"VolumenExistenciasMes":     -100000000001,
		"FechaYHoraEstaMedicionMes": "2024-01-31",
	}
	recs := validate(r, "PR07", domain.CaracterPermisionario)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.KindRange, recs[0].Kind)
	assert.Equal(t, "ControlDeExistencias.VolumenExistenciasMes", recs[0].Source)
	assert.Equal(t, domain.KindRegex, recs[1].Kind)
	assert.Equal(t, "ControlDeExistencias.FechaYHoraEstaMedicionMes", recs[1].Source)

	r["ControlDeExistencias"] = map[string]any{"VolumenExistenciasMes": 10, "FechaYHoraEstaMedicionMes": "2024-01-31"}
	recs = validate(r, "PR07", domain.CaracterPermisionario)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.KindRegex, recs[0].Kind)
}

func TestValidate_SummedVolume(t *testing.T) {
	r := validReport()
	r["Recepciones"].(map[string]any)["SumaVolumenRecepcionMes"] = map[string]any{"ValorNumerico": 1, "UnidadDeMedida": "UM99"}
	recs := validate(r, "PR07", domain.CaracterPermisionario)
	require.Len(t, recs, 1)
	assert.Equal(t, "Recepciones.SumaVolumenRecepcionMes.UnidadDeMedida", recs[0].Source)
}

func TestValidate_TypeErrorsDoNotHideSiblingChecks(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  map[string]any
		kinds  []domain.ErrorKind
		source []string
	}{
		{
			name:  "receptions with wrong typed total and complement",
			key:   "Recepciones",
			value: map[string]any{"TotalRecepcionesMes": "diez", "Complemento": "no es lista"},
			kinds: []domain.ErrorKind{
				domain.KindTypeMismatch, domain.KindTypeMismatch,
				domain.KindRecepciones, domain.KindRecepciones, domain.KindRecepciones,
			},
			source: []string{
				"Recepciones.TotalRecepcionesMes", "Recepciones.Complemento",
				"Recepciones.SumaVolumenRecepcionMes", "Recepciones.TotalDocumentosMes", "Recepciones.ImporteTotalRecepcionesMensual",
			},
		},
		{
			name: "deliveries with an out of range amount and a bad volume unit",
			key:  "Entregas",
			value: map[string]any{
				"TotalEntregasMes":        8,
				"SumaVolumenEntregadoMes": map[string]any{"ValorNumerico": -1, "UnidadDeMedida": "UM99"},
				"TotalDocumentosMes":      100000001,
				"ImporteTotalEntregasMes": 100000000001,
				"Complemento":             []any{storageComplement()},
			},
			kinds: []domain.ErrorKind{domain.KindRange, domain.KindRange, domain.KindRange, domain.KindRegex},
			source: []string{
				"Entregas.ImporteTotalEntregasMes", "Entregas.TotalDocumentosMes",
				"Entregas.SumaVolumenEntregadoMes.ValorNumerico", "Entregas.SumaVolumenEntregadoMes.UnidadDeMedida",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReport()
			r[tt.key] = tt.value
			recs := validate(r, "PR07", domain.CaracterPermisionario)
			var kinds []domain.ErrorKind
			var sources []string
			for _, rec := range recs {
				kinds = append(kinds, rec.Kind)
				sources = append(sources, rec.Source)
			}
			assert.Equal(t, tt.kinds, kinds)
			assert.Equal(t, tt.source, sources)
		})
	}
}
