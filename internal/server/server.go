package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"

	"github.com/anchal00/gamesave/internal/config"
	"github.com/anchal00/gamesave/internal/db"
	"github.com/anchal00/gamesave/internal/logger"
	"github.com/anchal00/gamesave/internal/state"
)

const (
	AddPath = "/add"
	GetPath = "/get"
)

type GameSaveServer struct {
	Db     db.Repository
	Logger logger.Logger
	Router *mux.Router
	Tables state.TableStore

	port             string
	authorizationKey string
	tableNamePattern *regexp.Regexp
	requestLogging   bool
	maxBodyBytes     int64
	shutdownTimeout  time.Duration
	server           *http.Server
}

// NewGameSaveServer validates cfg, opens the configured database and builds a
// server on top of it.
func NewGameSaveServer(cfg *config.Config, log logger.Logger) (*GameSaveServer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	repo, err := db.SetupDB(cfg.DBDriver, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	gs, err := newGameSaveServer(cfg, repo, log)
	if err != nil {
		repo.CloseConnection()
		return nil, err
	}
	return gs, nil
}

// New builds a server around an already connected repository.
func New(cfg *config.Config, repo db.Repository, log logger.Logger) (*GameSaveServer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return newGameSaveServer(cfg, repo, log)
}

func newGameSaveServer(cfg *config.Config, repo db.Repository, log logger.Logger) (*GameSaveServer, error) {
	pattern, err := cfg.TableNameRegexp()
	if err != nil {
		return nil, err
	}
	var tables state.TableStore = state.NoopTableStore{}
	if cfg.CacheTables {
		tables = state.NewInMemoryTableStore()
	}
	gs := &GameSaveServer{
		Db:               repo,
		Logger:           log.With("component", "api_server"),
		Router:           mux.NewRouter().SkipClean(true).UseEncodedPath(),
		Tables:           tables,
		port:             cfg.Port,
		authorizationKey: cfg.AuthorizationKey,
		tableNamePattern: pattern,
		requestLogging:   cfg.RequestLogging,
		maxBodyBytes:     cfg.MaxBodyBytes,
		shutdownTimeout:  cfg.ShutdownTimeout,
	}
	// Paths are matched as sent: no cleaning, redirects or percent-decoding.
	gs.Router.HandleFunc(AddPath, gs.SavePlayerData).Methods(http.MethodPost)
	gs.Router.HandleFunc(GetPath, gs.LoadPlayerData).Methods(http.MethodGet)
	gs.Router.NotFoundHandler = http.HandlerFunc(gs.NotFound)
	gs.Router.MethodNotAllowedHandler = http.HandlerFunc(gs.NotFound)
	gs.server = &http.Server{
		Handler:           gs.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return gs, nil
}

// Handler wraps the router in the request pipeline. Authentication, parameter
// checks and table provisioning run for every request, including ones that
// end up unrouted.
func (s *GameSaveServer) Handler() http.Handler {
	var h http.Handler = s.Router
	h = s.provisionTable(h)
	h = s.requirePlayerKey(h)
	h = s.authorize(h)
	if s.requestLogging {
		h = s.logRequests(h)
	}
	h = withRequestID(h)
	return recoverPanics(s.Logger, h)
}

// Run listens on the configured port and serves until ctx is cancelled.
func (s *GameSaveServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%s", s.port))
	if err != nil {
		s.Logger.Error(fmt.Sprintf("Failed to start server on port %s", s.port), err)
		s.Shutdown()
		return err
	}
	return s.Start(ctx, ln)
}

// Start serves on ln and blocks until the server fails or ctx is cancelled,
// in which case outstanding requests get the shutdown timeout to finish.
func (s *GameSaveServer) Start(ctx context.Context, ln net.Listener) error {
	errch := make(chan error, 1)
	go func() {
		errch <- s.server.Serve(ln)
	}()
	s.Logger.Info(fmt.Sprintf("Started server on %s", ln.Addr().String()))

	select {
	case err := <-errch:
		s.Shutdown()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.Logger.Info("Shutting down server....")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		err := s.server.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Error("Graceful shutdown failed, closing connections", err)
			err = s.server.Close()
		}
		s.Shutdown()
		return err
	}
}

// Shutdown releases the database connection.
func (s *GameSaveServer) Shutdown() {
	s.Db.CloseConnection()
	s.Logger.Info("Goodbye !")
}
