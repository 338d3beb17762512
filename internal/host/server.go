// Package host bridges game hosts to bot agents over a websocket JSON
// protocol, one agent per connection.
package host

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/ballchaser/internal/bot"
	"github.com/zeusync/ballchaser/internal/core/events/bus"
	"github.com/zeusync/ballchaser/internal/core/observability/log"
)

type Config struct {
	ListenAddr     string
	Path           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxMessageSize int64
	Overlay        bool

	// DefaultName names agents whose connection does not carry a name.
	DefaultName string
	Bot         bot.Options
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:     "127.0.0.1:8085",
		Path:           "/agent",
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   5 * time.Second,
		MaxMessageSize: 1 << 20,
		DefaultName:    "ballchaser",
		Bot:            bot.DefaultOptions(),
	}
}

const shutdownTimeout = 5 * time.Second

type Server struct {
	config   Config
	events   bus.EventBus
	logger   log.Log
	upgrader websocket.Upgrader

	running atomic.Bool
	active  atomic.Int64

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewServer(config Config, events bus.EventBus, logger log.Log) *Server {
	if events == nil {
		events = bus.New()
	}
	if logger == nil {
		logger = log.NewNop()
	}
	logger = logger.Named("host")
	events.AddObserver(&logObserver{logger: logger})

	return &Server{
		config: config,
		events: events,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 1024,
			// game hosts are local processes, not browsers
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Handler serves the agent endpoint at the configured path.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.handleAgent)
	return mux
}

func (s *Server) Running() bool { return s.running.Load() }

// Sessions is the number of connected agents.
func (s *Server) Sessions() int { return int(s.active.Load()) }

// Run listens until ctx is cancelled, then closes every session and shuts
// the listener down.
func (s *Server) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServerRunning
	}
	defer s.running.Store(false)

	srv := &http.Server{
		Addr:              s.config.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.RegisterOnShutdown(s.closeConns)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", log.String("addr", s.config.ListenAddr), log.String("path", s.config.Path))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down", log.Int("sessions", s.Sessions()))
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	params, err := ParseParams(r.URL.Query(), s.config.DefaultName)
	if err != nil {
		s.logger.Warn("rejected connection", log.String("remote", r.RemoteAddr), log.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		s.logger.Warn("websocket upgrade failed", log.String("remote", r.RemoteAddr), log.Error(err))
		return
	}
	s.track(conn)
	defer s.untrack(conn)

	session, err := NewSession(s.events, params, s.config.Bot, s.config.Overlay, s.logger)
	if err != nil {
		s.logger.Error("session setup failed", log.Error(err))
		return
	}
	defer session.Close()

	s.active.Add(1)
	defer s.active.Add(-1)

	logger := s.logger.With(log.String("session", session.ID()), log.Int("index", params.Index))
	logger.Info("agent connected", log.String("name", params.Name), log.String("team", params.Team.String()))
	defer logger.Info("agent disconnected")

	s.serve(conn, session, logger)
}

func (s *Server) serve(conn *websocket.Conn, session *Session, logger log.Log) {
	if s.config.MaxMessageSize > 0 {
		conn.SetReadLimit(s.config.MaxMessageSize)
	}
	for {
		if s.config.ReadTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		}
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("read failed", log.Error(err))
			}
			return
		}
		if kind != websocket.TextMessage && kind != websocket.BinaryMessage {
			continue
		}

		reply := session.Handle(data)

		if s.config.WriteTimeout > 0 {
			_ = conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		}
		if err = conn.WriteJSON(reply); err != nil {
			logger.Warn("write failed", log.Error(err))
			return
		}
	}
}

func (s *Server) track(conn *websocket.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	_ = conn.Close()
}

// closeConns ends every hijacked connection; http.Server.Shutdown does not
// track them.
func (s *Server) closeConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		_ = conn.Close()
	}
}
