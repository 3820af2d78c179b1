package server

import (
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/indigo-web/tinyhttp/config"
	"github.com/indigo-web/tinyhttp/http"
	"github.com/indigo-web/tinyhttp/http/status"
	"github.com/indigo-web/tinyhttp/internal/protocol/http1"
	"github.com/rs/zerolog"
)

type Handler interface {
	Handle(*http.Request) *http.Response
}

// Server accepts connections one at a time and fully serves each before accepting the
// next one. Every connection carries exactly one request and one response.
type Server struct {
	sock     net.Listener
	handler  Handler
	cfg      *config.Config
	log      zerolog.Logger
	buff     []byte
	shutdown atomic.Bool
}

func New(sock net.Listener, handler Handler, cfg *config.Config, log zerolog.Logger) *Server {
	return &Server{
		sock:    sock,
		handler: handler,
		cfg:     cfg,
		log:     log,
		buff:    make([]byte, cfg.NET.ReadBufferSize),
	}
}

// Start runs the accept loop. It returns status.ErrShutdown after Stop is called, or
// the accept error otherwise. Failures of a single exchange are logged and don't stop
// the loop.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.sock.Addr().String()).Msg("running")

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.shutdown.Load() {
				return status.ErrShutdown
			}

			return err
		}

		s.log.Debug().Str("remote", remote(conn)).Msg("connection established")

		if err = s.HandleConn(conn); err != nil {
			s.log.Error().Err(err).Str("remote", remote(conn)).Msg("exchange failed")
		}
	}
}

// HandleConn reads a request by a single read, routes it and writes the response back.
// The connection is closed in any case.
func (s *Server) HandleConn(conn net.Conn) error {
	defer func() {
		_ = conn.Close()
	}()

	if err := conn.SetReadDeadline(time.Now().Add(s.cfg.NET.ReadTimeout)); err != nil {
		return err
	}

	n, err := conn.Read(s.buff)
	if n == 0 && err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	request := http1.Parse(s.buff[:n])
	response := s.handler.Handle(request)

	if err = conn.SetWriteDeadline(time.Now().Add(s.cfg.NET.WriteTimeout)); err != nil {
		return err
	}

	if err = response.Send(conn); err != nil {
		return fmt.Errorf("send response: %w", err)
	}

	userAgent, _ := request.Headers.Fold("User-Agent")
	s.log.Info().
		Str("method", request.Method.String()).
		Str("path", request.Path).
		Str("protocol", request.Protocol.String()).
		Str("code", string(response.Code)).
		Int("length", len(response.Body)).
		Str("user_agent", userAgent).
		Msg("served")

	return nil
}

// Stop closes the listener, so Start returns as soon as the current exchange, if any,
// is done.
func (s *Server) Stop() error {
	s.shutdown.Store(true)

	return s.sock.Close()
}

func remote(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		return addr.String()
	}

	return "unknown"
}
