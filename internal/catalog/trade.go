package catalog

// Incoterms 2020 plus DAT, still accepted on older declarations.
var incoterms = map[string]bool{
	"EXW": true, "FCA": true, "CPT": true, "CIP": true, "DAP": true, "DPU": true,
	"DDP": true, "FAS": true, "FOB": true, "CFR": true, "CIF": true, "DAT": true,
}

// IsIncoterm reports whether code is a recognized Incoterm.
func IsIncoterm(code string) bool {
	return incoterms[code]
}

// Medios de transporte (Anexo 22, apéndice 3).
const (
	CustomsMaritime       = "1"
	CustomsRailDouble     = "2"
	CustomsRoadRail       = "3"
	CustomsAir            = "4"
	CustomsPostal         = "5"
	CustomsRail           = "6"
	CustomsRoad           = "7"
	CustomsPipeline       = "8"
	CustomsCable          = "10"
	CustomsDuct           = "11"
	CustomsPedestrian     = "12"
	CustomsNotPresented   = "98"
	CustomsOtherTransport = "99"
)

var customsModes = map[string]bool{
	CustomsMaritime: true, CustomsRailDouble: true, CustomsRoadRail: true,
	CustomsAir: true, CustomsPostal: true, CustomsRail: true, CustomsRoad: true,
	CustomsPipeline: true, CustomsCable: true, CustomsDuct: true,
	CustomsPedestrian: true, CustomsNotPresented: true, CustomsOtherTransport: true,
}

// IsCustomsTransportMode reports whether code is a customs transport mode.
func IsCustomsTransportMode(code string) bool {
	return customsModes[code]
}
