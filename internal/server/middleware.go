package server

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"

	"github.com/anchal00/gamesave/internal/logger"
)

const (
	GameNameParam = "gameName"
	UserIdParam   = "userId"

	RequestIDHeader = "X-Request-Id"
)

// authorize rejects requests whose Authorization header is not exactly the
// shared secret. The 400 status is what existing clients expect.
func (s *GameSaveServer) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provided := r.Header.Get("Authorization")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(s.authorizationKey)) != 1 {
			s.Logger.Debug("Rejected request with bad authorization", "path", r.URL.Path)
			s.sendMessage(w, http.StatusBadRequest, "Authorization")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *GameSaveServer) requirePlayerKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gameName, userId := playerKey(r)
		if gameName == "" {
			s.sendMessage(w, http.StatusBadRequest, "Missing game name")
			return
		}
		if userId == "" {
			s.sendMessage(w, http.StatusBadRequest, "Missing user id")
			return
		}
		if s.tableNamePattern != nil && !s.tableNamePattern.MatchString(gameName) {
			s.Logger.Debug("Rejected game name", "game", gameName)
			s.sendMessage(w, http.StatusBadRequest, "Invalid game name")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *GameSaveServer) provisionTable(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gameName, _ := playerKey(r)
		if !s.Tables.IsProvisioned(gameName) {
			if err := s.Db.EnsureGameTable(r.Context(), gameName); err != nil {
				s.Logger.Error("Failed to provision game table", err, "game", gameName)
				s.sendMessage(w, http.StatusInternalServerError, "Internal error")
				return
			}
			s.Tables.MarkProvisioned(gameName)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *GameSaveServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		s.Logger.Info("request",
			"duration", fmt.Sprintf("%dms", m.Duration.Milliseconds()),
			"status", m.Code,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", w.Header().Get(RequestIDHeader))
	})
}

// withRequestID tags every response with the caller's request id, or a fresh
// one when none was sent.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

type recoveryLogger struct {
	logger logger.Logger
}

func (l recoveryLogger) Println(args ...any) {
	l.logger.Error("Recovered from panic", errors.New(fmt.Sprint(args...)))
}

// recoverPanics turns a panicking handler into a 500.
func recoverPanics(log logger.Logger, next http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log}),
		handlers.PrintRecoveryStack(true),
	)(next)
}

func playerKey(r *http.Request) (gameName, userId string) {
	query := r.URL.Query()
	return query.Get(GameNameParam), query.Get(UserIdParam)
}
