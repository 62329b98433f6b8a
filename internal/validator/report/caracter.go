package report

import (
	"fmt"

	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

// caracterRule lists what a caracter must declare and the error kind used
// when it declares keys that belong to another caracter.
type caracterRule struct {
	kind  domain.ErrorKind
	rules []validator.Rule
}

var (
	contractRule = validator.Rule{Key: "NumContratoOAsignacion", Required: true, Length: validator.Len(14, 24)}

	caracterRules = map[domain.Caracter]caracterRule{
		domain.CaracterContratista: {kind: domain.KindCaracterContratista, rules: []validator.Rule{contractRule}},
		domain.CaracterAsignatario: {kind: domain.KindCaracterAsignatario, rules: []validator.Rule{contractRule}},
		domain.CaracterPermisionario: {kind: domain.KindCaracterPermisionario, rules: []validator.Rule{
			{Key: "ModalidadPermiso", Required: true, Pattern: catalog.PermitModality},
			{Key: "NumPermiso", Required: true, Length: validator.Len(14, 24)},
		}},
		domain.CaracterUsuario: {kind: domain.KindCaracterUsuario, rules: []validator.Rule{
			{Key: "InstalacionAlmacenGasNatural", Required: true, Length: validator.Len(16, 250)},
		}},
	}

	// caracterKeys are the keys owned by at least one caracter, in the order
	// they are reported.
	caracterKeys = []string{"ModalidadPermiso", "NumPermiso", "NumContratoOAsignacion", "InstalacionAlmacenGasNatural"}
)

func (r caracterRule) owns(key string) bool {
	for _, rule := range r.rules {
		if rule.Key == key {
			return true
		}
	}
	return false
}

func checkCaracter(acc *validator.Accumulator, doc *validator.Document) {
	raw, ok := validator.Present(doc.Data, "Caracter")
	if !ok {
		acc.MissingKey("Caracter", "Caracter")
		return
	}
	s, _ := validator.AsString(raw)
	rule, ok := caracterRules[domain.Caracter(s)]
	if !ok {
		acc.InvalidValue("Caracter", raw, "Caracter")
		return
	}

	for _, key := range caracterKeys {
		if rule.owns(key) {
			continue
		}
		if _, declared := validator.Present(doc.Data, key); declared {
			acc.CatchError(rule.kind,
				fmt.Sprintf("Error: El caracter '%s' no puede tener la clave '%s' en el JSON.", s, key), key)
		}
	}
	acc.Apply(doc.Data, "", rule.rules...)
}
