// Package client es la capa de acceso a datos que consume la interfaz del
// punto de venta. Envuelve cada llamada REST al backend con sondeo de
// conectividad, reintentos con backoff exponencial y, para las lecturas, un
// fallback a datos de demostración que mantiene la UI utilizable sin red.
// Las escrituras nunca tienen fallback: si se agota el presupuesto de
// reintentos el error llega al llamador.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Valores por defecto de la política de resiliencia.
const (
	DefaultMaxRetries     = 3
	DefaultInitialBackoff = time.Second
	DefaultProbeTimeout   = 5 * time.Second
	DefaultProbeInterval  = 30 * time.Second
)

// Config opciones del cliente. El cero de cada campo activa su valor por
// defecto; ProbeInterval negativo desactiva el refresco periódico.
type Config struct {
	BaseURL        string // ej. http://localhost:8080/api
	HTTPClient     *http.Client
	MaxRetries     int
	InitialBackoff time.Duration
	ProbeTimeout   time.Duration
	ProbeInterval  time.Duration
	Sleep          SleepFunc // espera entre reintentos; inyectable en tests
}

// Client acceso resiliente al backend. Todos sus métodos son seguros para uso
// concurrente; cada operación lleva su propio contador de reintentos.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	maxRetries     int
	initialBackoff time.Duration
	sleep          SleepFunc
	monitor        *monitor

	stopOnce sync.Once
	stop     chan struct{}
}

// New construye el cliente. Hace un sondeo inicial sincrónico para establecer
// el estado de conectividad antes de aceptar operaciones (se arranca en
// offline/desconocido, nunca se asume online sin evidencia) y, salvo que
// ProbeInterval sea negativo, lanza el refresco periódico.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080/api"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = DefaultInitialBackoff
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.ProbeInterval == 0 {
		cfg.ProbeInterval = DefaultProbeInterval
	}
	if cfg.Sleep == nil {
		cfg.Sleep = defaultSleep
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	c := &Client{
		baseURL:        baseURL,
		httpClient:     cfg.HTTPClient,
		maxRetries:     cfg.MaxRetries,
		initialBackoff: cfg.InitialBackoff,
		sleep:          cfg.Sleep,
		monitor:        newMonitor(cfg.HTTPClient, baseURL+"/health", cfg.ProbeTimeout),
		stop:           make(chan struct{}),
	}

	c.monitor.Probe(context.Background())

	if cfg.ProbeInterval > 0 {
		go c.refreshLoop(cfg.ProbeInterval)
	}
	return c
}

// Close detiene el refresco periódico de conectividad.
func (c *Client) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Client) refreshLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.monitor.Probe(context.Background())
		}
	}
}

// Probe fuerza un sondeo de conectividad y devuelve el resultado.
func (c *Client) Probe(ctx context.Context) bool {
	return c.monitor.Probe(ctx)
}

// IsOffline devuelve el último estado de conectividad conocido, sin sondear.
func (c *Client) IsOffline() bool {
	return c.monitor.IsOffline()
}

// SetOffline fuerza el modo offline (útil en tests y demos).
func (c *Client) SetOffline(offline bool) {
	c.monitor.setOffline(offline)
}

// ── Transporte ────────────────────────────────────────────────────────────────

// statusError es un estado HTTP no exitoso; el motor de reintentos lo trata
// como fallo transitorio.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("estado HTTP inesperado: %d", e.code)
}

// do construye exactamente una petición, valida el estado y decodifica la
// respuesta en out (si out no es nil). allowMissing hace que un 404 devuelva
// found=false en lugar de error: para búsquedas por clave, "no hay dato" es
// un resultado válido, no un fallo.
func (c *Client) do(ctx context.Context, method, path string, body, out any, allowMissing bool) (found bool, err error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("codificar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if allowMissing && resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, &statusError{code: resp.StatusCode}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("decodificar respuesta: %w", err)
		}
	}
	return true, nil
}
