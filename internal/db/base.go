//go:generate mockery --with-expecter=true --name=Repository --output=./mocks
package db

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/anchal00/gamesave/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no save data exists for a user.
var ErrNotFound = errors.New("player data not found")

type Repository interface {
	SetupConnection(driver, database string) error
	CloseConnection()
	EnsureGameTable(ctx context.Context, gameName string) error
	SavePlayerData(ctx context.Context, gameName, userId string, data []byte) error
	GetPlayerData(ctx context.Context, gameName, userId string) ([]byte, error)
}

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know about.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

func SetupDB(driver, dbName string, log logger.Logger) (Repository, error) {
	var repository Repository = &SQLStore{
		Logger: log.With("component", "database"),
	}
	err := repository.SetupConnection(driver, dbName)
	return repository, err
}
