package complement

import (
	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

var (
	dictamenFields = fields{
		text("RfcDictamen").required().pattern(catalog.RFCMoral),
		text("LoteDictamen").required().length(1, 50),
		text("NumeroFolioDictamen").required().pattern(catalog.Folio),
		text("FechaEmisionDictamen").required().pattern(catalog.Date),
		text("ResultadoDictamen").required().length(10, 300),
	}

	certificadoFields = fields{
		text("RfcCertificado").required().pattern(catalog.RFCMoral),
		text("NumeroFolioCertificado").required().pattern(catalog.Folio),
		text("FechaEmisionCertificado").required().pattern(catalog.Date),
		text("ResultadoCertificado").required().length(10, 300),
	}

	volumeFields = fields{
		amount("ValorNumerico", &validator.ValorNumerico, "0", "1e11").required(),
		text("UnidadDeMedida").required().pattern(catalog.MeasureUnit),
	}
)

func isComplementType(s string) bool { return domain.ComplementType(s).Valid() }
func isCfdiType(s string) bool       { return domain.CfdiType(s).Valid() }

// applyTop applies rules to keys of the Complemento itself, skipping keys
// whose shape was already reported.
func (it *item) applyTop(rules ...validator.Rule) {
	for _, r := range rules {
		if it.reported[r.Key] {
			continue
		}
		it.acc.Apply(it.data, "", r)
	}
}

// checkShape type-checks the keys of the Complemento.
func checkShape(fs fields) section {
	return func(it *item) {
		it.shape(it.data, fs, "")
	}
}

// checkTipo verifies the TipoComplemento discriminator.
func checkTipo(it *item) {
	it.applyTop(validator.Rule{Key: "TipoComplemento", Required: true, OneOf: isComplementType})
}

// checkAclaracion bounds the free-text clarification.
func checkAclaracion(it *item) {
	it.applyTop(validator.Rule{Key: "Aclaracion", Length: validator.Len(10, 600)})
}

// checkObject validates an optional top-level sub-object.
func checkObject(key string, fs fields) section {
	return func(it *item) {
		it.object(it.data, key, "", false, fs)
	}
}

func checkDictamen(it *item)    { it.object(it.data, "Dictamen", "", false, dictamenFields) }
func checkCertificado(it *item) { it.object(it.data, "Certificado", "", false, certificadoFields) }

// terminalSpec describes TerminalAlmYDist. Either flat is set, for variants
// that declare the terminal fields directly, or storage and transport are set
// for the nested Almacenamiento/Transporte form.
type terminalSpec struct {
	flat      fields
	storage   fields
	transport fields
}

func checkTerminal(spec terminalSpec) section {
	outer := spec.flat
	nested := spec.storage != nil || spec.transport != nil
	if nested {
		outer = fields{shapeOnly("Almacenamiento", validator.Object), shapeOnly("Transporte", validator.Object)}
	}
	return func(it *item) {
		term, ok := it.object(it.data, "TerminalAlmYDist", "", false, outer)
		if !ok || !nested {
			return
		}
		if spec.storage != nil {
			it.object(term, "Almacenamiento", "TerminalAlmYDist", false, spec.storage)
		}
		if spec.transport != nil {
			it.object(term, "Transporte", "TerminalAlmYDist", false, spec.transport)
		}
	}
}

// cfdiSpec lists the variant's monetary fields and an optional cross-field
// rule evaluated after the field rules.
type cfdiSpec struct {
	amounts     fields
	conditional func(it *item, cfdi map[string]any, path string)
}

// nacionalSpec describes the counterparty fields of a Nacional item.
type nacionalSpec struct {
	party fields
	cfdi  cfdiSpec
}

func checkNacional(spec nacionalSpec) section {
	party := make(fields, 0, len(spec.party)+1)
	party = append(party, spec.party...)
	party = append(party, shapeOnly("CFDIs", validator.List))

	cfdi := fields{
		text("Cfdi").required().pattern(catalog.CFDI),
		text("TipoCfdi").required().oneOf(isCfdiType),
	}
	cfdi = append(cfdi, spec.cfdi.amounts...)
	cfdi = append(cfdi,
		text("FechaYHoraTransaccion").required().pattern(catalog.UTCDateTime),
		shapeOnly("VolumenDocumentado", validator.Object),
	)

	return func(it *item) {
		list, ok := it.list(it.data, "Nacional", "", false)
		if !ok {
			return
		}
		it.each(list, "Nacional", "", func(nat map[string]any, path string) {
			it.shape(nat, party, path)
			it.apply(nat, party, path)

			cfdis, ok := it.list(nat, "CFDIs", path, false)
			if !ok {
				return
			}
			it.each(cfdis, "CFDIs", path, func(c map[string]any, cpath string) {
				it.shape(c, cfdi, cpath)
				it.apply(c, cfdi, cpath)
				if spec.cfdi.conditional != nil {
					spec.cfdi.conditional(it, c, cpath)
				}
				it.object(c, "VolumenDocumentado", cpath, true, volumeFields)
			})
		})
	}
}

// pedimentoSpec names the customs fields, which differ between import-only
// and import/export variants.
type pedimentoSpec struct {
	spot    string
	country string
	mode    string
	price   string
}

var (
	importPedimento = pedimentoSpec{
		spot: "PuntoDeInternacion", country: "PaisOrigen",
		mode: "MedioDeTransEntraAduana", price: "PrecioDeImportacion",
	}
	tradePedimento = pedimentoSpec{
		spot: "PuntoDeInternacionOExtraccion", country: "PaisOrigenODestino",
		mode: "MedioDeTransEntraOSaleAduana", price: "PrecioDeImportacionOExportacion",
	}
)

func (p pedimentoSpec) fields() fields {
	return fields{
		text(p.spot).required().pattern(catalog.InternationSpot).length(2, 3),
		text(p.country).required().oneOf(catalog.IsCountry),
		text(p.mode).required().oneOf(catalog.IsCustomsTransportMode),
		text("PedimentoAduanal").required().pattern(catalog.CustomsDeclaration).length(21, 21),
		text("Incoterms").required().oneOf(catalog.IsIncoterm),
		amount(p.price, &validator.CantidadMonetaria, "0", "1e11").required(),
		shapeOnly("VolumenDocumentado", validator.Object),
	}
}

// extranjeroSpec describes the foreign-trade section. Some variants declare
// Extranjero as a list of permits, others as a single object.
type extranjeroSpec struct {
	asList    bool
	permit    string
	pedimento pedimentoSpec
}

func checkExtranjero(spec extranjeroSpec) section {
	foreign := fields{
		text(spec.permit).required().pattern(catalog.ImportPermit),
		shapeOnly("Pedimentos", validator.List),
	}
	pedimento := spec.pedimento.fields()

	validate := func(it *item, obj map[string]any, path string) {
		it.shape(obj, foreign, path)
		it.apply(obj, foreign, path)
		peds, ok := it.list(obj, "Pedimentos", path, false)
		if !ok {
			return
		}
		it.each(peds, "Pedimentos", path, func(p map[string]any, ppath string) {
			it.shape(p, pedimento, ppath)
			it.apply(p, pedimento, ppath)
			it.object(p, "VolumenDocumentado", ppath, true, volumeFields)
		})
	}

	return func(it *item) {
		v, ok := validator.Present(it.data, "Extranjero")
		if !ok {
			return
		}
		if spec.asList {
			list, ok := it.list(it.data, "Extranjero", "", false)
			if !ok {
				return
			}
			it.each(list, "Extranjero", "", func(obj map[string]any, path string) {
				validate(it, obj, path)
			})
			return
		}
		obj, ok := validator.AsObject(v)
		if !ok {
			it.wrongType("Extranjero", validator.Object, "Extranjero")
			return
		}
		validate(it, obj, "Extranjero")
	}
}

// extranjeroType returns the declared shape of Extranjero for a variant.
func extranjeroType(spec extranjeroSpec) validator.ValueType {
	if spec.asList {
		return validator.List
	}
	return validator.Object
}
