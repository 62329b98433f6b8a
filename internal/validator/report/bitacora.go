package report

import (
	"fmt"

	"volumetrico/internal/catalog"
	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

var (
	logSchema = validator.Schema{
		validator.Typed("NumeroRegistro", validator.Integer),
		validator.Typed("FechaYHoraEvento", validator.String),
		validator.Typed("UsuarioResponsable", validator.String),
		validator.Typed("TipoEvento", validator.Integer),
		validator.Typed("DescripcionEvento", validator.String),
		validator.Typed("IdentificacionComponenteAlarma", validator.String),
	}
	logRequired = []string{"NumeroRegistro", "FechaYHoraEvento", "TipoEvento", "DescripcionEvento"}
	logRules    = []validator.Rule{
		{Key: "NumeroRegistro", Range: validator.Between("0", "1e6")},
		{Key: "FechaYHoraEvento", Pattern: catalog.UTCDateTime},
		{Key: "UsuarioResponsable", Length: validator.Len(1, 1000)},
		{Key: "DescripcionEvento", Length: validator.Len(2, 250)},
		{Key: "IdentificacionComponenteAlarma", Length: validator.Len(2, 250)},
	}
)

// checkLog validates every event of BitacoraMensual.
func checkLog(acc *validator.Accumulator, doc *validator.Document) {
	raw, ok := validator.Present(doc.Data, "BitacoraMensual")
	if !ok {
		acc.MissingKey("BitacoraMensual", "BitacoraMensual")
		return
	}
	events, ok := validator.AsList(raw)
	if !ok {
		acc.WrongType("BitacoraMensual", validator.List, "BitacoraMensual")
		return
	}
	for i, item := range events {
		path := validator.Index("BitacoraMensual", i)
		event, ok := validator.AsObject(item)
		if !ok {
			acc.WrongType("BitacoraMensual", validator.Object, path)
			continue
		}
		checkEvent(acc, event, path)
	}
}

func checkEvent(acc *validator.Accumulator, event map[string]any, path string) {
	failed := acc.CheckTypes(event, logSchema, path)
	for _, key := range logRequired {
		if _, ok := validator.Present(event, key); !ok {
			acc.CatchError(domain.KindBitacora, fmt.Sprintf("Error: clave '%s' no fue declarada.", key), validator.Join(path, key))
		}
	}
	acc.ApplyExcept(event, path, failed, logRules...)

	raw, ok := validator.Present(event, "TipoEvento")
	if !ok || failed["TipoEvento"] {
		return
	}
	t, _ := validator.ToInt64(raw)
	if !catalog.IsEventType(t) {
		acc.CatchError(domain.KindBitacora,
			fmt.Sprintf("Error: clave 'TipoEvento' con valor %d no es un tipo de evento válido.", t),
			validator.Join(path, "TipoEvento"))
		return
	}
	if _, ok := validator.Present(event, "IdentificacionComponenteAlarma"); !ok && catalog.RequiresAlarmComponent(t) {
		acc.CatchError(domain.KindBitacora,
			fmt.Sprintf("Error: clave 'IdentificacionComponenteAlarma' es requerida para TipoEvento %d.", t),
			validator.Join(path, "IdentificacionComponenteAlarma"))
	}
}
