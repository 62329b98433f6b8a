package domain

import "fmt"

// ErrorKind is the closed taxonomy of validation failures. Its text form is
// the name regulators' tooling expects in the "type_error" field.
type ErrorKind int

const (
	KindMissingKey ErrorKind = iota
	KindTypeMismatch
	KindRegex
	KindLength
	KindRange
	KindInvalidValue
	KindConditional
	KindUnsupportedVariant
	KindInternal
	KindDecoding
	KindProduct
	KindProductKey
	KindSubProductKey
	KindCaracter
	KindCaracterPermisionario
	KindCaracterContratista
	KindCaracterAsignatario
	KindCaracterUsuario
	KindRecepciones
	KindEntregas
	KindBitacora
	KindFileName
)

var kindNames = [...]string{
	KindMissingKey:            "ClaveError",
	KindTypeMismatch:          "TipadoError",
	KindRegex:                 "RegexError",
	KindLength:                "LongitudError",
	KindRange:                 "ValorMinMaxError",
	KindInvalidValue:          "ValorError",
	KindConditional:           "CondicionalError",
	KindUnsupportedVariant:    "ComplementoNoSoportadoError",
	KindInternal:              "SystemError",
	KindDecoding:              "Decodificación",
	KindProduct:               "ProductoError",
	KindProductKey:            "ClaveProductoError",
	KindSubProductKey:         "ClaveSubProductoError",
	KindCaracter:              "CaracterError",
	KindCaracterPermisionario: "CaracterPermisionarioError",
	KindCaracterContratista:   "CaracterContratistaError",
	KindCaracterAsignatario:   "CaracterAsignatarioError",
	KindCaracterUsuario:       "CaracterUsuarioError",
	KindRecepciones:           "RecepcionesError",
	KindEntregas:              "EntregasError",
	KindBitacora:              "BitacoraMensualError",
	KindFileName:              "NombreArchivoError",
}

// String returns the wire name of the kind.
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k ErrorKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown error kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ErrorKind) UnmarshalText(b []byte) error {
	kind, ok := ParseErrorKind(string(b))
	if !ok {
		return fmt.Errorf("unknown error kind %q", string(b))
	}
	*k = kind
	return nil
}

// ParseErrorKind maps a wire name back to its kind.
func ParseErrorKind(name string) (ErrorKind, bool) {
	for i, n := range kindNames {
		if n == name {
			return ErrorKind(i), true
		}
	}
	return 0, false
}

// ErrorRecord is a single accumulated validation failure.
type ErrorRecord struct {
	Kind   ErrorKind `json:"type_error" yaml:"type_error"`
	Error  string    `json:"error" yaml:"error"`
	Source string    `json:"source,omitempty" yaml:"source,omitempty"`
}
