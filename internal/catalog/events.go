package catalog

// IsEventType reports whether t is a TipoEvento of the bitácora catalog.
// Code 17 was retired.
func IsEventType(t int64) bool {
	return t >= 1 && t <= 21 && t != 17
}

// RequiresAlarmComponent reports whether events of type t must identify the
// component that raised the alarm.
func RequiresAlarmComponent(t int64) bool {
	return t >= 7 && t <= 21
}
