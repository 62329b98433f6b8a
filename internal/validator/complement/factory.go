package complement

import (
	"fmt"

	"volumetrico/internal/domain"
)

// New returns the variant that validates items declared as kind. Types that
// are declarable but have no battery of their own, such as Extraccion, are
// unsupported.
func New(items []any, kind domain.ComplementType) (Complement, error) {
	switch kind {
	case domain.ComplementAlmacenamiento:
		return NewAlmacenamiento(items), nil
	case domain.ComplementComercializacion:
		return NewComercializacion(items), nil
	case domain.ComplementDistribucion:
		return NewDistribucion(items), nil
	case domain.ComplementExpendio:
		return NewExpendio(items), nil
	case domain.ComplementCDLRGN:
		return NewCDLRGN(items), nil
	case domain.ComplementTransporte:
		return NewTransporte(items), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedComplement, string(kind))
}

// Supported lists the complement types New can build.
var Supported = []domain.ComplementType{
	domain.ComplementAlmacenamiento,
	domain.ComplementComercializacion,
	domain.ComplementDistribucion,
	domain.ComplementExpendio,
	domain.ComplementCDLRGN,
	domain.ComplementTransporte,
}
