package validator_test

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

func kinds(recs []domain.ErrorRecord) []domain.ErrorKind {
	out := make([]domain.ErrorKind, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Kind)
	}
	return out
}

func TestApply_RequiredAndOptional(t *testing.T) {
	acc := validator.NewAccumulator()
	acc.Apply(map[string]any{"Opcional": nil}, "Dictamen",
		validator.Rule{Key: "RfcDictamen", Required: true},
		validator.Rule{Key: "Opcional", Length: validator.Len(1, 3)},
	)
	recs := acc.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, domain.KindMissingKey, recs[0].Kind)
	assert.Equal(t, "Dictamen.RfcDictamen", recs[0].Source)
}

func TestApply_ChecksRunIndependently(t *testing.T) {
	re := regexp.MustCompile(`^[0-9]{2,3}$`)
	acc := validator.NewAccumulator()
	acc.Apply(map[string]any{"PuntoDeInternacion": "ABCD"}, "",
		validator.Rule{Key: "PuntoDeInternacion", Pattern: re, Length: validator.Len(2, 3)},
	)
	assert.Equal(t, []domain.ErrorKind{domain.KindRegex, domain.KindLength}, kinds(acc.Records()))
}

func TestApply_RangeBoundsAreInclusive(t *testing.T) {
	rng := validator.Between("1", "1e12")
	tests := []struct {
		value  string
		errors int
	}{
		{"1", 0},
		{"1000000000000", 0},
		{"0.999", 1},
		{"0", 1},
		{"1000000000000.001", 1},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			acc := validator.NewAccumulator()
			acc.Apply(map[string]any{"Descuento": json.Number(tt.value)}, "", validator.Rule{Key: "Descuento", Range: rng})
			assert.Equal(t, tt.errors, acc.Len())
		})
	}
}

func TestApply_WrongTypes(t *testing.T) {
	acc := validator.NewAccumulator()
	acc.Apply(map[string]any{"Nombre": 12, "Monto": "12"}, "",
		validator.Rule{Key: "Nombre", Length: validator.Len(1, 5)},
		validator.Rule{Key: "Monto", Range: validator.Between("0", "10")},
	)
	assert.Equal(t, []domain.ErrorKind{domain.KindTypeMismatch, domain.KindTypeMismatch}, kinds(acc.Records()))
}

func TestApply_EnumAndLengthCountsCharacters(t *testing.T) {
	acc := validator.NewAccumulator()
	acc.Apply(map[string]any{"Tipo": "Otro", "Nombre": "ñññ"}, "",
		validator.Rule{Key: "Tipo", OneOf: func(s string) bool { return s == "Ingreso" }},
		validator.Rule{Key: "Nombre", Length: validator.Len(3, 3)},
	)
	recs := acc.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, domain.KindInvalidValue, recs[0].Kind)
}
