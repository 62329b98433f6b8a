package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypeJSON FileType = "json"
)

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/json": FileTypeJSON,
	"text/json":        FileTypeJSON,
	"text/plain":       FileTypeJSON,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"json": FileTypeJSON,
}

// ComplementType is the declared TipoComplemento of a Complemento item.
type ComplementType string

const (
	ComplementAlmacenamiento   ComplementType = "Almacenamiento"
	ComplementCDLR             ComplementType = "CDLR"
	ComplementCDLRGN           ComplementType = "CDLRGN"
	ComplementComercializacion ComplementType = "Comercializacion"
	ComplementDistribucion     ComplementType = "Distribucion"
	ComplementExpendio         ComplementType = "Expendio"
	ComplementExtraccion       ComplementType = "Extraccion"
	ComplementRefinacion       ComplementType = "Refinacion"
	ComplementTransporte       ComplementType = "Transporte"
)

// ComplementTypes lists every declarable TipoComplemento, in catalog order.
var ComplementTypes = []ComplementType{
	ComplementAlmacenamiento,
	ComplementCDLR,
	ComplementCDLRGN,
	ComplementComercializacion,
	ComplementDistribucion,
	ComplementExpendio,
	ComplementExtraccion,
	ComplementRefinacion,
	ComplementTransporte,
}

// Valid reports whether t is a declarable complement type.
func (t ComplementType) Valid() bool {
	for _, c := range ComplementTypes {
		if c == t {
			return true
		}
	}
	return false
}

// CfdiType is the TipoCfdi of a transaction voucher.
type CfdiType string

const (
	CfdiIngreso  CfdiType = "Ingreso"
	CfdiEgreso   CfdiType = "Egreso"
	CfdiTraslado CfdiType = "Traslado"
)

// Valid reports whether t is a known CFDI type.
func (t CfdiType) Valid() bool {
	switch t {
	case CfdiIngreso, CfdiEgreso, CfdiTraslado:
		return true
	}
	return false
}

// Caracter is the submitter's regulatory role.
type Caracter string

const (
	CaracterContratista   Caracter = "contratista"
	CaracterAsignatario   Caracter = "asignatario"
	CaracterPermisionario Caracter = "permisionario"
	CaracterUsuario       Caracter = "usuario"
)

// Valid reports whether c is a known caracter.
func (c Caracter) Valid() bool {
	switch c {
	case CaracterContratista, CaracterAsignatario, CaracterPermisionario, CaracterUsuario:
		return true
	}
	return false
}

// Petroleum reports whether c is one of the upstream caracteres that report
// petroleum density, calorific value and gas composition.
func (c Caracter) Petroleum() bool {
	return c == CaracterContratista || c == CaracterAsignatario
}

// SiNo is the regulator's yes/no flag.
type SiNo string

const (
	Si SiNo = "Sí"
	No SiNo = "No"
)

// Valid reports whether s is Sí or No.
func (s SiNo) Valid() bool {
	return s == Si || s == No
}
