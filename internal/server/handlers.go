package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/anchal00/gamesave/internal/db"
	"github.com/anchal00/gamesave/internal/parser"
)

// SavePlayerData stores the request body as the user's save, replacing any
// previous one. Store failures share the 400 used for bad input.
func (s *GameSaveServer) SavePlayerData(writer http.ResponseWriter, request *http.Request) {
	gameName, userId := playerKey(request)
	s.Logger.Debug("Player is saving data", "game", gameName, "user", userId)
	body, err := s.ReadRequestBody(writer, request)
	if err != nil {
		s.sendMessage(writer, http.StatusBadRequest, "Invalid JSON or internal error")
		return
	}
	data, err := parser.ParsePlayerData(body)
	if errors.Is(err, parser.ErrInvalidBodyFormat) {
		s.sendMessage(writer, http.StatusBadRequest, "Invalid body format")
		return
	}
	if err != nil {
		s.Logger.Error("Error saving data", err, "game", gameName, "user", userId)
		s.sendMessage(writer, http.StatusBadRequest, "Invalid JSON or internal error")
		return
	}
	if err := s.Db.SavePlayerData(request.Context(), gameName, userId, data); err != nil {
		s.Logger.Error("Error saving data", err, "game", gameName, "user", userId)
		s.sendMessage(writer, http.StatusBadRequest, "Invalid JSON or internal error")
		return
	}
	s.sendMessage(writer, http.StatusOK, "Data saved")
}

// LoadPlayerData responds with the user's stored save.
func (s *GameSaveServer) LoadPlayerData(writer http.ResponseWriter, request *http.Request) {
	gameName, userId := playerKey(request)
	s.Logger.Debug("Player is loading data", "game", gameName, "user", userId)
	data, err := s.Db.GetPlayerData(request.Context(), gameName, userId)
	if errors.Is(err, db.ErrNotFound) {
		s.sendMessage(writer, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		s.Logger.Error("Error fetching data", err, "game", gameName, "user", userId)
		s.sendMessage(writer, http.StatusInternalServerError, "Error fetching data")
		return
	}
	if !utf8.Valid(data) || !json.Valid(data) {
		s.Logger.Error("Error fetching data", errors.New("stored data is not valid json"), "game", gameName, "user", userId)
		s.sendMessage(writer, http.StatusInternalServerError, "Error fetching data")
		return
	}
	s.sendResponse(writer, data, http.StatusOK)
}

func (s *GameSaveServer) NotFound(writer http.ResponseWriter, request *http.Request) {
	s.sendMessage(writer, http.StatusNotFound, "Not Found")
}

func (s *GameSaveServer) ReadRequestBody(writer http.ResponseWriter, request *http.Request) ([]byte, error) {
	body := http.MaxBytesReader(writer, request.Body, s.maxBodyBytes)
	bytesRead, err := io.ReadAll(body)
	if err != nil {
		s.Logger.Error("Failed to read request body", err)
		return nil, err
	}
	return bytesRead, nil
}

func (s *GameSaveServer) sendMessage(writer http.ResponseWriter, status int, message string) {
	responseBody, err := json.Marshal(parser.MessageResponse{Message: message})
	if err != nil {
		s.Logger.Error("Failed to encode response", err)
		s.sendResponse(writer, nil, http.StatusInternalServerError)
		return
	}
	s.sendResponse(writer, responseBody, status)
}

func (s *GameSaveServer) sendResponse(writer http.ResponseWriter, responseBody []byte, status int) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if responseBody == nil {
		return
	}
	if _, err := writer.Write(responseBody); err != nil {
		s.Logger.Error("Failed to write response body", err)
	}
}
