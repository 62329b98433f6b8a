// Package catalog holds the regulator's closed value sets and field patterns
// for volumetric control reports: tax ids, permits, dates, customs codes,
// products and bitácora events.
package catalog

import "regexp"

// =============================================================================
// Identificadores fiscales (RFC)
// =============================================================================

var (
	// RFC accepts both persona moral (3 letters) and persona física (4 letters).
	RFC = regexp.MustCompile(`^[A-ZÑ&]{3,4}[0-9]{2}(0[1-9]|1[0-2])(0[1-9]|[12][0-9]|3[01])[A-Z0-9]{3}$`)
	// RFCMoral is the 12-character legal entity form.
	RFCMoral = regexp.MustCompile(`^[A-ZÑ&]{3}[0-9]{2}(0[1-9]|1[0-2])(0[1-9]|[12][0-9]|3[01])[A-Z0-9]{3}$`)
	// RFCFisica is the 13-character natural person form.
	RFCFisica = regexp.MustCompile(`^[A-ZÑ&]{4}[0-9]{2}(0[1-9]|1[0-2])(0[1-9]|[12][0-9]|3[01])[A-Z0-9]{3}$`)
)

// =============================================================================
// Fechas y comprobantes
// =============================================================================

var (
	UTCDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}$`)
	Date        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	CFDI        = regexp.MustCompile(`^[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}$`)
	MeasureUnit = regexp.MustCompile(`^UM(0[1-9]|1[0-9]|2[0-5])$`)
	// Folio of a dictamen or certificado: issuer prefix, consecutive, year.
	Folio = regexp.MustCompile(`^[A-Z]{3}[0-9]{5}[0-9]{4}$`)
)

// =============================================================================
// Comercio exterior
// =============================================================================

var (
	InternationSpot = regexp.MustCompile(`^[0-9]{2,3}$`)
	// CustomsDeclaration is "AA  AA  AAAA  N..." with double-space separators.
	// The trailing run is open; the exact 21-character length is checked apart.
	CustomsDeclaration = regexp.MustCompile(`^[0-9]{2}  [0-9]{2}  [0-9]{4}  [0-9]+$`)
	ImportPermit       = regexp.MustCompile(`^[0-9]{4}[A-Z]{3}[0-9]{6,17}$`)
)

// =============================================================================
// Permisos CRE por actividad
// =============================================================================

var (
	PermitStorage               = regexp.MustCompile(`^PL/[0-9]{3,5}/ALM/[0-9]{4}$`)
	PermitStorageOrDistribution = regexp.MustCompile(`^PL/[0-9]{3,5}/(ALM|DIS/(OM|DUC))/[0-9]{4}$`)
	PermitTransport             = regexp.MustCompile(`^PL/[0-9]{3,5}/TRA/(OM|DUC|TM)/[0-9]{4}$`)
	PermitTransportRetail       = regexp.MustCompile(`^PL/[0-9]{3,5}/(TRA/(OM|DUC|TM)|DIS/(OM|DUC))/[0-9]{4}$`)
	PermitLPGStorage            = regexp.MustCompile(`^G/[0-9]{3,5}/(ALM|LPA)/[0-9]{4}$`)
	PermitLPGTransport          = regexp.MustCompile(`^G/[0-9]{3,5}/(TRA|LPT)/[0-9]{4}$`)
	// PermitCounterparty is any CRE permit held by a supplier or client.
	PermitCounterparty   = regexp.MustCompile(`^(PL|H|G)/[0-9]{3,5}/[A-Z]{3}(/[A-Z]{2,3})?/[0-9]{4}$`)
	PermitDistributionCP = regexp.MustCompile(`^(PL|H)/[0-9]{3,5}/(COM|DIS|EXP|ALM)(/[A-Z]{2,3})?/[0-9]{4}$`)
	PermitRetailSupplier = regexp.MustCompile(`^(PL|H)/[0-9]{3,5}/(ALM|COM|DIS|TRA)(/[A-Z]{2,3})?/[0-9]{4}$`)
)

// =============================================================================
// Reporte
// =============================================================================

var (
	Version          = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)
	PermitModality   = regexp.MustCompile(`^PER([1-9]|[1-4][0-9]|5[0-6])$`)
	SubProduct       = regexp.MustCompile(`^SP([1-9]|[1-3][0-9]|4[0-8])$`)
	CondensedGas     = regexp.MustCompile(`^GNC(0[1-9]|10)$`)
	FileName         = regexp.MustCompile(`^M_([A-Za-z0-9]{8}-[A-Za-z0-9]{4}-[A-Za-z0-9]{4}-[A-Za-z0-9]{4}-[A-Za-z0-9]{12})_[A-Z0-9Ñ&]{12,13}_[A-Z0-9Ñ&]{12}_(\d{4}-\d{2}-\d{2})_(ACA|AUP|ALM|ACO|BSP|BDE|CMN|COM|CON|DEN|DIS|EMA|ESN|EDS|ESA|EXO|EXP|EXT|GSH|LON|RPO|PTA|PDD|PGN|RCN|REF|RGN|SIS|SFO|SDA|TDA|TDD|TRA|TDP|USP|ACL|ASN|MNA|TRE)-\d{4}_(EXT|REF|PGN|CON|DEN|LON|RGN|TRA|ALM|AGA|USP|DIS|CMN|EXO)_JSON$`)
	FileNameSegments = 8
)
