package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

func TestAccumulator_KeepsOrderAndIndexesLastMessage(t *testing.T) {
	acc := validator.NewAccumulator()
	acc.MissingKey("Cfdi", "Nacional[0].CFDIs[0].Cfdi")
	acc.RegexMismatch("RfcDictamen", "BAD", "^X$", "Dictamen.RfcDictamen")
	acc.MissingKey("TipoCfdi", "Nacional[0].CFDIs[0].TipoCfdi")

	recs := acc.Records()
	require.Len(t, recs, 3)
	assert.Equal(t, domain.KindMissingKey, recs[0].Kind)
	assert.Equal(t, "Error: Elemento 'Cfdi' no declarado.", recs[0].Error)
	assert.Equal(t, domain.KindRegex, recs[1].Kind)
	assert.Equal(t, "Error: clave RfcDictamen con valor BAD no cumple con el patrón ^X$", recs[1].Error)

	assert.Equal(t, "Error: Elemento 'TipoCfdi' no declarado.", acc.Errors()[domain.KindMissingKey])
	assert.True(t, acc.Has(domain.KindRegex))
	assert.False(t, acc.Has(domain.KindRange))
	assert.Equal(t, 3, acc.Len())
}

func TestAccumulator_Messages(t *testing.T) {
	acc := validator.NewAccumulator()
	acc.OutOfRange("Descuento", 0, 1, "1000000000000", "x")
	acc.BadLength("NombreClienteOProveedor", "short", 10, 150, "y")
	acc.InvalidValue("TipoCfdi", "Otro", "z")
	acc.WrongType("Nacional", validator.List, "w")

	msgs := make([]string, 0, 4)
	for _, r := range acc.Records() {
		msgs = append(msgs, r.Error)
	}
	assert.Equal(t, []string{
		"Error: clave Descuento con valor 0 no tiene el valor min 1 ó max 1000000000000.",
		"Error: clave NombreClienteOProveedor con valor short no tiene una longitud min 10 ó max 150.",
		"Error: valor 'Otro' en clave TipoCfdi no válido.",
		"Error: Clave Nacional no es de tipo list",
	}, msgs)
}

func TestAccumulator_MergePrefixesSources(t *testing.T) {
	inner := validator.NewAccumulator()
	inner.MissingKey("Cfdi", "Nacional[1].CFDIs[0].Cfdi")
	inner.CatchError(domain.KindInternal, "boom", "")

	outer := validator.NewAccumulator()
	outer.Merge("Complemento[2]", inner.Records())

	recs := outer.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "Complemento[2].Nacional[1].CFDIs[0].Cfdi", recs[0].Source)
	assert.Equal(t, "Complemento[2]", recs[1].Source)
}

func TestJoinAndIndex(t *testing.T) {
	assert.Equal(t, "a.b.c", validator.Join("a", "", "b", "c"))
	assert.Equal(t, "", validator.Join())
	assert.Equal(t, "Pedimentos[3]", validator.Index("Pedimentos", 3))
}
