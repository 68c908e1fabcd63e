// Package fetch coordina las recargas de datos de las vistas: cada carga
// nueva para una misma clave supersede y cancela la que estaba en vuelo, de
// modo que una resolución tardía nunca pise estado más nuevo. Es el análogo
// del abort-on-refetch del dashboard original.
package fetch

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded indica que una carga fue reemplazada por otra más nueva;
// su resultado debe descartarse sin reportar error al usuario
var ErrSuperseded = errors.New("fetch: load superseded by a newer one")

// Superseded reconoce los errores de cancelación que las vistas se tragan
func Superseded(err error) bool {
	return errors.Is(err, ErrSuperseded) || errors.Is(err, context.Canceled)
}

type flight struct {
	cancel context.CancelFunc
}

// Loader ejecuta cargas última-gana por clave
type Loader struct {
	mu      sync.Mutex
	current map[string]*flight
}

// NewLoader crea un Loader vacío
func NewLoader() *Loader {
	return &Loader{current: make(map[string]*flight)}
}

// Load ejecuta fn bajo la clave dada. Si había una carga en vuelo para esa
// clave, se cancela su contexto. Si esta carga resulta superseded mientras
// corre, su resultado se descarta y Load devuelve ErrSuperseded, haya o no
// terminado bien fn.
func (l *Loader) Load(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	fl := &flight{cancel: cancel}

	l.mu.Lock()
	if prev, ok := l.current[key]; ok {
		prev.cancel()
	}
	l.current[key] = fl
	l.mu.Unlock()

	err := fn(ctx)

	l.mu.Lock()
	superseded := l.current[key] != fl
	if !superseded {
		delete(l.current, key)
	}
	l.mu.Unlock()
	cancel()

	if superseded {
		return ErrSuperseded
	}
	return err
}

// CancelAll cancela toda carga en vuelo (shutdown)
func (l *Loader) CancelAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, fl := range l.current {
		fl.cancel()
		delete(l.current, key)
	}
}

// Debouncer coalesce disparos rápidos (tecleo en el buscador) en una sola
// invocación trailing tras el intervalo configurado
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer crea un Debouncer con el retardo dado
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do agenda fn; un Do posterior dentro del intervalo reemplaza al anterior
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop descarta cualquier invocación pendiente
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
