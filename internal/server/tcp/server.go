package tcp

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/edtechlab/coursehub/internal/logging"
)

// maxRequestSize bounds the single read per connection. Requests are a
// handful of short tokens; 4 KiB leaves room for long urls.
const maxRequestSize = 4096

// Server accepts TCP connections and serves exactly one request per
// connection: one bounded read, one dispatch, one response write, close.
// Each connection runs in its own goroutine, so a slow client stalls only
// its own handler, never the accept loop.
type Server struct {
	address     string
	readTimeout time.Duration
	dispatcher  *Dispatcher
	logger      logging.Logger

	mu sync.Mutex
	ln net.Listener
}

func NewServer(address string, readTimeout time.Duration, d *Dispatcher, l logging.Logger) *Server {
	return &Server{
		address:     address,
		readTimeout: readTimeout,
		dispatcher:  d,
		logger:      l.With("module", "tcp_server"),
	}
}

// Addr returns the bound listener address, or nil before Run has opened it.
// Useful with a ":0" address in tests.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Run listens on the configured address and serves until ctx is cancelled.
// In-flight connection handlers are drained before Run returns.
func (s *Server) Run(ctx context.Context) error {

	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping TCP server...")
		_ = ln.Close()
	}()

	s.logger.Info(ctx, "Starting TCP server", "address", ln.Addr().String())

	var wg sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			wg.Wait()
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConn(ctx, conn)
		}()
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	// A handler panic answers this one client and leaves the acceptor
	// untouched.
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error(ctx, "handler panic", "remote_addr", conn.RemoteAddr().String(), "panic", fmt.Sprint(p))
			_, _ = conn.Write([]byte(respInternalError))
		}
	}()

	if s.readTimeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.readTimeout))
	}

	buf := make([]byte, maxRequestSize)
	n, err := conn.Read(buf)
	if err != nil && n == 0 {
		s.logger.Warn(ctx, "read failed", "remote_addr", conn.RemoteAddr().String(), "error", err.Error())
		return
	}

	request := strings.TrimSpace(string(buf[:n]))
	response := s.dispatcher.Dispatch(ctx, request)

	if _, err := conn.Write([]byte(response)); err != nil {
		s.logger.Warn(ctx, "write failed", "remote_addr", conn.RemoteAddr().String(), "error", err.Error())
	}
}
