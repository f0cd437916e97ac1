package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/anchal00/gamesave/internal/logger"
)

const (
	createGameTableSQL = `CREATE TABLE IF NOT EXISTS %s (
  userId TEXT PRIMARY KEY,
  data TEXT
);`

	upsertPlayerDataSQL = `INSERT INTO %s (userId, data)
  VALUES (?, ?)
  ON CONFLICT(userId)
  DO UPDATE SET data = excluded.data;`

	selectPlayerDataSQL = `SELECT userId AS "userId", data FROM %s WHERE userId = ?;`
)

type SQLStore struct {
	Conn   *sqlx.DB
	Logger logger.Logger
}

func (s *SQLStore) SetupConnection(driver, dbname string) error {
	dsn := dbname
	if isSqlite(driver) {
		dsn = sqliteFile(dbname)
	}
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		s.Logger.Error("Database setup failed", err, "driver", driver)
		return err
	}
	if isSqlite(driver) {
		// sqlite allows one writer at a time.
		db.SetMaxOpenConns(1)
	}
	s.Conn = db
	s.Logger.Info(fmt.Sprintf("Database %s setup successfully", dsn), "driver", driver)
	return nil
}

func (s *SQLStore) CloseConnection() {
	s.Logger.Info("Closing database connection")
	if err := s.Conn.Close(); err != nil {
		s.Logger.Error("Failed to tear down database connection", err)
		return
	}
	s.Logger.Info("Database connection closed successfully")
}

// EnsureGameTable creates the table backing gameName if it is absent.
func (s *SQLStore) EnsureGameTable(ctx context.Context, gameName string) error {
	query := fmt.Sprintf(createGameTableSQL, quoteIdentifier(gameName))
	if _, err := s.Conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating table for game %s: %w", gameName, err)
	}
	s.Logger.Debug("Game table ready", "game", gameName)
	return nil
}

// SavePlayerData inserts the user's row or overwrites its data wholesale.
func (s *SQLStore) SavePlayerData(ctx context.Context, gameName, userId string, data []byte) error {
	query := upsertPlayerDataQuery(s.bindType(), gameName)
	if _, err := s.Conn.ExecContext(ctx, query, userId, string(data)); err != nil {
		return fmt.Errorf("saving data for user %s in game %s: %w", userId, gameName, err)
	}
	s.Logger.Debug("Player data saved", "game", gameName, "user", userId)
	return nil
}

// GetPlayerData returns ErrNotFound when the user has no row or an empty one.
func (s *SQLStore) GetPlayerData(ctx context.Context, gameName, userId string) ([]byte, error) {
	query := selectPlayerDataQuery(s.bindType(), gameName)
	record := &PlayerRecord{}
	err := s.Conn.GetContext(ctx, record, query, userId)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching data for user %s in game %s: %w", userId, gameName, err)
	}
	if !record.Data.Valid || record.Data.String == "" {
		return nil, ErrNotFound
	}
	return []byte(record.Data.String), nil
}

func (s *SQLStore) bindType() int {
	return sqlx.BindType(s.Conn.DriverName())
}

func upsertPlayerDataQuery(bindType int, gameName string) string {
	return fmt.Sprintf(sqlx.Rebind(bindType, upsertPlayerDataSQL), quoteIdentifier(gameName))
}

// selectPlayerDataQuery aliases the key column back to "userId", since
// postgres folds the unquoted column name to lower case. Placeholders are
// rebound before the game name goes in, so a '?' in the name stays literal.
func selectPlayerDataQuery(bindType int, gameName string) string {
	return fmt.Sprintf(sqlx.Rebind(bindType, selectPlayerDataSQL), quoteIdentifier(gameName))
}

// quoteIdentifier renders name as a double-quoted SQL identifier. Embedded
// quotes are doubled so the name cannot terminate the identifier early.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func isSqlite(driver string) bool {
	return driver == "sqlite3" || driver == "sqlite"
}

func sqliteFile(dbname string) string {
	if dbname == ":memory:" || strings.HasPrefix(dbname, "file:") || strings.HasSuffix(dbname, ".db") {
		return dbname
	}
	return dbname + ".db"
}
