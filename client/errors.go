package client

import "errors"

// Errores del cliente de datos.
var (
	// ErrUnavailable se devuelve cuando se agota el presupuesto de reintentos
	// sin fallback disponible (todas las escrituras). Las escrituras fallan en
	// voz alta: nunca se encolan ni se descartan en silencio.
	ErrUnavailable = errors.New("no fue posible completar la operación; verifique su conexión e intente de nuevo")

	// ErrNoConnection marca un intento abortado porque el sondeo de
	// conectividad reportó el backend inalcanzable.
	ErrNoConnection = errors.New("sin conexión con el servidor")
)
