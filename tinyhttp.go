package tinyhttp

import (
	"net"
	"sync"

	"github.com/indigo-web/tinyhttp/config"
	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/indigo-web/tinyhttp/internal/server"
	"github.com/indigo-web/tinyhttp/router"
	"github.com/rs/zerolog"
)

type ListenerConstructor func(network, addr string) (net.Listener, error)

// Handler produces a response for every request. *router.Router is the one meant to be
// used.
type Handler interface {
	Handle(*http.Request) *http.Response
}

// App binds the address and serves connections one by one.
type App struct {
	addr     string
	cfg      *config.Config
	log      zerolog.Logger
	listener ListenerConstructor
	hooks    hooks
	mu       sync.Mutex
	server   *server.Server
	stopped  bool
}

// New returns a new App instance.
func New(addr string) *App {
	return &App{
		addr:     addr,
		cfg:      config.Default(),
		log:      zerolog.Nop(),
		listener: net.Listen,
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger sets the logger. By default, nothing is logged.
func (a *App) Logger(log zerolog.Logger) *App {
	a.log = log
	return a
}

// Listener replaces the net.Listen used to bind the address.
func (a *App) Listener(constructor ListenerConstructor) *App {
	a.listener = constructor
	return a
}

// NotifyOnStart calls the callback at the moment, when the address is bound and the
// server is about to accept connections
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the server is down.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the web-application and blocks until it's stopped. If nil is passed
// instead of a handler, an empty router is used, so every request results in 404.
// After Stop is called, status.ErrShutdown is returned. This also holds if Stop was
// called before Serve, in which case the listener is closed right after being bound.
func (a *App) Serve(handler Handler) error {
	if handler == nil {
		handler = router.New()
	}

	sock, err := a.listener("tcp", a.addr)
	if err != nil {
		return err
	}

	srv := server.New(sock, handler, a.cfg, a.log)
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		_ = sock.Close()
		return status.ErrShutdown
	}

	a.server = srv
	a.mu.Unlock()

	callIfNotNil(a.hooks.OnStart)
	err = srv.Start()
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops accepting new connections. The exchange in progress, if any, is finished.
// Calling it before Serve makes the following Serve return status.ErrShutdown at once.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// may still be working
func (a *App) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopped = true
	if a.server == nil {
		return nil
	}

	return a.server.Stop()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
