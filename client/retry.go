package client

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// SleepFunc es la espera entre reintentos. Es inyectable para poder verificar
// la secuencia de backoff con un reloj falso en tests.
type SleepFunc func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// executeWithRetry envuelve una operación contra el backend con la política de
// resiliencia uniforme:
//
//  1. Si el monitor ya reporta offline y hay fallback, se devuelve el fallback
//     de inmediato, sin tocar la red.
//  2. Si no, hasta maxRetries intentos. Antes de cada intento se re-sondea la
//     conectividad; un sondeo fallido cuenta como intento fallido sin invocar
//     la operación.
//  3. El éxito marca online y devuelve el resultado.
//  4. Agotados los intentos se marca offline y se resuelve el fallback, o se
//     propaga ErrUnavailable si no hay fallback (escrituras).
//  5. Entre intentos se espera initialBackoff·2^(k−1): 1, 2, 4, … unidades.
//
// El contador de intentos es local a cada invocación: llamadas concurrentes
// no comparten ni corrompen el estado de reintento de las demás.
func executeWithRetry[T any](ctx context.Context, c *Client, op string, call func(context.Context) (T, error), fallback func() T) (T, error) {
	var zero T

	if c.monitor.IsOffline() && fallback != nil {
		log.Debug().Str("op", op).Msg("backend offline: usando datos de demostración")
		return fallback(), nil
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if !c.monitor.Probe(ctx) {
			lastErr = ErrNoConnection
		} else {
			out, err := call(ctx)
			if err == nil {
				return out, nil
			}
			lastErr = err
		}
		log.Warn().Str("op", op).Int("attempt", attempt).Err(lastErr).Msg("intento fallido")

		if attempt == c.maxRetries {
			break
		}
		if err := c.sleep(ctx, c.initialBackoff<<(attempt-1)); err != nil {
			return zero, err
		}
	}

	c.monitor.setOffline(true)
	if fallback != nil {
		log.Info().Str("op", op).Msg("reintentos agotados: usando datos de demostración")
		return fallback(), nil
	}
	return zero, fmt.Errorf("%w (último error: %v)", ErrUnavailable, lastErr)
}
