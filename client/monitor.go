package client

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// monitor mantiene la creencia de conectividad con el backend. El flag es
// compartido y advisory: decide entre fallar rápido o intentar, no es un lock
// de corrección (último escritor gana).
type monitor struct {
	httpClient *http.Client
	healthURL  string
	timeout    time.Duration
	offline    atomic.Bool
}

func newMonitor(httpClient *http.Client, healthURL string, timeout time.Duration) *monitor {
	m := &monitor{
		httpClient: httpClient,
		healthURL:  healthURL,
		timeout:    timeout,
	}
	// Arranca offline hasta que un sondeo establezca lo contrario.
	m.offline.Store(true)
	return m
}

// Probe lanza un chequeo acotado contra /health y actualiza el flag.
// Solo devuelve true si el chequeo termina con estado 2xx dentro del timeout;
// cualquier error de red, estado no exitoso o vencimiento da false.
func (m *monitor) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.healthURL, nil)
	if err != nil {
		m.offline.Store(true)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.offline.Store(true)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	m.offline.Store(!ok)
	return ok
}

// IsOffline devuelve el último estado conocido, sin sondear.
func (m *monitor) IsOffline() bool {
	return m.offline.Load()
}

func (m *monitor) setOffline(offline bool) {
	m.offline.Store(offline)
}
